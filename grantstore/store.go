// Package grantstore persists the rows a patentsource cursor chain produces
// into an on-disk boltdb database, one bucket per table, and reads them back
// in row-id order. It is the population target driving the cursors; it is
// not a query engine.
package grantstore

import (
	"iter"
	"log/slog"
	"os"

	"github.com/openkvlab/boltdb"
	"rsc.io/ordered"
)

// Bucket layout: one top-level bucket per table, holding a "columns" key
// (codec-encoded []string) and a nested "rows" bucket whose keys are
// ordered-encoded row ids and whose values are codec-encoded column maps.
var (
	rowsBucketKey  = []byte("rows")
	columnsMetaKey = []byte("columns")
)

type Store struct {
	db     *boltdb.DB
	codec  MarshalUnmarshaler
	logger *slog.Logger
}

type Options = boltdb.Options

// Open opens (creating if needed) the store at path using the given codec
// for row payloads.
func Open(codec MarshalUnmarshaler, path string, mode os.FileMode, options *Options) (*Store, error) {
	db, err := boltdb.Open(path, mode, options)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, codec: codec, logger: slog.Default()}, nil
}

// SetLogger replaces the logger used for population progress.
func (s *Store) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Row is one persisted table row.
type Row struct {
	ID     int64
	Values map[string]any
}

// Columns returns the column names recorded for the named table.
func (s *Store) Columns(table string) ([]string, error) {
	var columns []string
	err := s.db.View(func(tx *boltdb.Tx) error {
		bucket := tx.Bucket([]byte(table))
		if bucket == nil {
			return ErrTableBucketNotFound(table)
		}
		return s.codec.Unmarshal(bucket.Get(columnsMetaKey), &columns)
	})
	if err != nil {
		return nil, err
	}
	return columns, nil
}

// Count returns the number of rows persisted for the named table.
func (s *Store) Count(table string) (int, error) {
	count := 0
	err := s.db.View(func(tx *boltdb.Tx) error {
		rows, err := rowsBucket(tx, table)
		if err != nil {
			return err
		}
		c := rows.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Rows iterates the named table's rows in row-id order.
func (s *Store) Rows(table string) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		err := s.db.View(func(tx *boltdb.Tx) error {
			rows, err := rowsBucket(tx, table)
			if err != nil {
				return err
			}
			c := rows.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				var row Row
				if err := ordered.Decode(k, &row.ID); err != nil {
					if !yield(Row{}, err) {
						return nil
					}
					continue
				}
				if err := s.codec.Unmarshal(v, &row.Values); err != nil {
					if !yield(Row{}, err) {
						return nil
					}
					continue
				}
				if !yield(row, nil) {
					return nil
				}
			}
			return nil
		})
		if err != nil {
			yield(Row{}, err)
		}
	}
}

func rowsBucket(tx *boltdb.Tx, table string) (*boltdb.Bucket, error) {
	bucket := tx.Bucket([]byte(table))
	if bucket == nil {
		return nil, ErrTableBucketNotFound(table)
	}
	rows := bucket.Bucket(rowsBucketKey)
	if rows == nil {
		return nil, ErrTableBucketNotFound(table)
	}
	return rows, nil
}
