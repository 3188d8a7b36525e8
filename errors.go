package patentsource

import (
	"errors"
	"fmt"
)

var (
	// Discovery errors
	ErrXMLMemberCount = func(path string, count int) error {
		return fmt.Errorf("archive %s must contain exactly one XML member, found %d", path, count)
	}
	ErrContainerName = func(path string, fragment int) error {
		return fmt.Errorf("archive %s: fragment %d has no file=\"...\" attribute in its prefix", path, fragment)
	}
	ErrReadArchive = func(path string, err error) error {
		return fmt.Errorf("reading archive %s: %w", path, err)
	}

	// Parse errors
	ErrParseContainer = func(id int, err error) error {
		return fmt.Errorf("parsing container %d: %w", id, err)
	}

	// Cursor errors
	ErrCursorUnpositioned  = errors.New("cursor advanced before being positioned")
	ErrCursorExhausted     = errors.New("cursor advanced past the end of its rows")
	ErrContainerOutOfRange = func(index, count int) error {
		return fmt.Errorf("container index %d out of range [0, %d)", index, count)
	}
	ErrColumnOutOfRange = func(table string, col int) error {
		return fmt.Errorf("table %s has no column with ordinal %d", table, col)
	}
	ErrNoExtractor = func(table, column string) error {
		return fmt.Errorf("table %s column %s has no value extractor", table, column)
	}
	ErrChildCapacity = func(table string, parentRowID int64) error {
		return fmt.Errorf("table %s: parent row %d exceeds %d child elements", table, parentRowID, maxChildElements)
	}
	ErrNoCurrentRow = errors.New("cursor has no current row")

	// Schema errors
	ErrTableNotFound  = func(name string) error { return fmt.Errorf("unknown table %s", name) }
	ErrParentNotFound = func(table, parent string) error {
		return fmt.Errorf("table %s references unknown parent table %s", table, parent)
	}
	ErrForeignKeyNotFound = func(table, column string) error {
		return fmt.Errorf("table %s has no foreign key column %s", table, column)
	}
	ErrNoElementsExtractor = func(table string) error {
		return fmt.Errorf("child table %s has no elements extractor", table)
	}
)
