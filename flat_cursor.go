package patentsource

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
)

// FlatColumn describes one column of a delimited-text table. Field is the
// zero-based input field the column reads; Convert, when set, turns the raw
// field text into the column's value.
type FlatColumn struct {
	Name    string
	Field   int
	Convert func(field string) any
}

// FlatTable describes a table backed by a single delimited text file. The
// file's first line is a header and is discarded. Column ordinal 0 is the
// synthetic id column and resolves to the row id regardless of its Field.
// The zero Delimiter means comma.
type FlatTable struct {
	Name      string
	Delimiter rune
	Columns   []FlatColumn
}

// ColumnNames returns the table's column names in ordinal order.
func (t *FlatTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// FlatCursor reads a delimited text file as rows. The whole file is the only
// partition, so every constraint kind scans it start to finish; row ids count
// records from zero. No caching is involved: each query reads the file once.
type FlatCursor struct {
	table  *FlatTable
	path   string
	file   *os.File
	reader *csv.Reader
	record []string
	rowID  int64
	atEnd  bool
}

// NewFlatCursor returns a cursor over the delimited file at path.
func NewFlatCursor(path string, table *FlatTable) *FlatCursor {
	return &FlatCursor{table: table, path: path, rowID: -1}
}

// Position opens the file, discards the header record, and lands on the
// first data record.
func (c *FlatCursor) Position(_ Constraint) error {
	if c.file != nil {
		c.file.Close()
	}
	file, err := os.Open(c.path)
	if err != nil {
		return err
	}
	c.file = file
	c.reader = csv.NewReader(file)
	if c.table.Delimiter != 0 {
		c.reader.Comma = c.table.Delimiter
	}
	c.reader.FieldsPerRecord = -1
	c.rowID = -1
	c.atEnd = false
	if _, err := c.reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			c.atEnd = true
			return nil
		}
		return err
	}
	return c.Advance()
}

func (c *FlatCursor) Advance() error {
	if c.reader == nil {
		return ErrCursorUnpositioned
	}
	if c.atEnd {
		return ErrCursorExhausted
	}
	record, err := c.reader.Read()
	if errors.Is(err, io.EOF) {
		c.atEnd = true
		c.record = nil
		return nil
	}
	if err != nil {
		return err
	}
	c.record = record
	c.rowID++
	return nil
}

func (c *FlatCursor) AtEnd() bool {
	return c.atEnd
}

func (c *FlatCursor) RowID() int64 {
	return c.rowID
}

func (c *FlatCursor) Column(ordinal int) (any, error) {
	if ordinal < 0 || ordinal >= len(c.table.Columns) {
		return nil, ErrColumnOutOfRange(c.table.Name, ordinal)
	}
	if c.record == nil {
		return nil, ErrNoCurrentRow
	}
	if ordinal == 0 {
		return c.rowID, nil
	}
	col := c.table.Columns[ordinal]
	if col.Field < 0 || col.Field >= len(c.record) {
		return nil, nil
	}
	field := c.record[col.Field]
	if col.Convert != nil {
		return col.Convert(field), nil
	}
	return field, nil
}

func (c *FlatCursor) Close() error {
	c.record = nil
	c.reader = nil
	c.atEnd = true
	if c.file == nil {
		return nil
	}
	err := c.file.Close()
	c.file = nil
	return err
}
