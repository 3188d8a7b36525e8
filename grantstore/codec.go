package grantstore

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

type Marshaler interface {
	Marshal(v any) (data []byte, err error)
}

type Unmarshaler interface {
	Unmarshal(data []byte, v any) error
}

// MarshalUnmarshaler encodes row payloads and table metadata. Msgpack is the
// default; JSON and gob are available for interoperability and debugging.
type MarshalUnmarshaler interface {
	Marshaler
	Unmarshaler
}

var (
	JsonMaUn    = jsonMarshalUnmarshaler{}
	GobMaUn     = gobMarshalUnmarshaler{}
	MsgpackMaUn = msgpackMarshalUnmarshaler{}
)

type jsonMarshalUnmarshaler struct{}

func (jsonMarshalUnmarshaler) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonMarshalUnmarshaler) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type gobMarshalUnmarshaler struct{}

func (gobMarshalUnmarshaler) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	err := encoder.Encode(v)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobMarshalUnmarshaler) Unmarshal(data []byte, v any) error {
	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	return decoder.Decode(v)
}

type msgpackMarshalUnmarshaler struct{}

func (msgpackMarshalUnmarshaler) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackMarshalUnmarshaler) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
