package grantstore

import (
	"errors"

	"github.com/openkvlab/boltdb"
	boltdb_errors "github.com/openkvlab/boltdb/errors"
	"rsc.io/ordered"

	"github.com/bulkbib/patentsource"
)

// Populate writes every row of the named tables of src into the store. With
// no table names, all of the source's tables are populated.
//
// Tables are filled container by container, all tables within one container
// before moving to the next, so the source's single-slot document cache
// parses each container exactly once for the whole population. The work runs
// in one write transaction: either every named table is produced complete or
// the database is left untouched.
func (s *Store) Populate(src *patentsource.DataSource, tables ...string) error {
	if len(tables) == 0 {
		tables = src.Tables()
	}
	return s.db.Update(func(tx *boltdb.Tx) error {
		rowBuckets := make(map[string]*boltdb.Bucket, len(tables))
		metas := make(map[string]*patentsource.TableMeta, len(tables))
		for _, name := range tables {
			table, err := src.Table(name)
			if err != nil {
				return err
			}
			rows, err := resetTable(tx, name, table.ColumnNames(), s.codec)
			if err != nil {
				return err
			}
			rowBuckets[name] = rows
			metas[name] = table
		}
		for index := 0; index < src.Containers(); index++ {
			name, err := src.ContainerName(index)
			if err != nil {
				return err
			}
			s.logger.Debug("populating container", "container", index, "name", name)
			for _, tableName := range tables {
				err := s.copyRows(rowBuckets[tableName], src, metas[tableName], index)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// PopulateCursor drives an arbitrary cursor through a full scan and persists
// its rows under the given table name. Used for flat (delimited text)
// sources, which have no containers to partition by.
func (s *Store) PopulateCursor(name string, columns []string, cursor patentsource.Cursor) error {
	return s.db.Update(func(tx *boltdb.Tx) error {
		rows, err := resetTable(tx, name, columns, s.codec)
		if err != nil {
			return err
		}
		if err := cursor.Position(patentsource.ScanAll); err != nil {
			return err
		}
		defer cursor.Close()
		for !cursor.AtEnd() {
			if err := putRow(rows, cursor, columns, s.codec); err != nil {
				return err
			}
			if err := cursor.Advance(); err != nil {
				return err
			}
		}
		return nil
	})
}

// copyRows persists the table's rows for a single container, pinning the
// cursor chain to that container.
func (s *Store) copyRows(rows *boltdb.Bucket, src *patentsource.DataSource, table *patentsource.TableMeta, container int) error {
	cursor, err := src.Cursor(table.Name)
	if err != nil {
		return err
	}
	defer cursor.Close()
	if err := cursor.Position(patentsource.PinContainer(container)); err != nil {
		return err
	}
	columns := table.ColumnNames()
	for !cursor.AtEnd() {
		if err := putRow(rows, cursor, columns, s.codec); err != nil {
			return err
		}
		if err := cursor.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func putRow(rows *boltdb.Bucket, cursor patentsource.Cursor, columns []string, codec MarshalUnmarshaler) error {
	values := make(map[string]any, len(columns))
	for ordinal, column := range columns {
		value, err := cursor.Column(ordinal)
		if err != nil {
			return err
		}
		values[column] = value
	}
	payload, err := codec.Marshal(values)
	if err != nil {
		return err
	}
	return rows.Put(ordered.Encode(cursor.RowID()), payload)
}

// resetTable drops any previous contents of the named table and recreates
// its bucket with the column metadata recorded.
func resetTable(tx *boltdb.Tx, name string, columns []string, codec MarshalUnmarshaler) (*boltdb.Bucket, error) {
	err := tx.DeleteBucket([]byte(name))
	if err != nil && !errors.Is(err, boltdb_errors.ErrBucketNotFound) {
		return nil, err
	}
	bucket, err := tx.CreateBucket([]byte(name))
	if err != nil {
		return nil, err
	}
	columnsBytes, err := codec.Marshal(columns)
	if err != nil {
		return nil, err
	}
	if err := bucket.Put(columnsMetaKey, columnsBytes); err != nil {
		return nil, err
	}
	return bucket.CreateBucket(rowsBucketKey)
}
