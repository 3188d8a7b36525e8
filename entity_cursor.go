package patentsource

import "github.com/beevik/etree"

// entityCursor is the package-internal contract between nested cursors:
// besides the engine-facing protocol, a parent exposes its current element
// for child extraction and the identity of the container it is reading.
type entityCursor interface {
	Cursor
	currentElement() *etree.Element
	containerIndex() int
	containerName() string
}

// rootCursor emits exactly one row per container. Its row id is the
// container ordinal, so columns 0 (id) and 1 (container_id) coincide.
type rootCursor struct {
	table      *TableMeta
	containers *containerCursor
}

func (r *rootCursor) Position(c Constraint) error {
	return r.containers.position(c)
}

func (r *rootCursor) Advance() error {
	return r.containers.advance()
}

func (r *rootCursor) AtEnd() bool {
	return r.containers.eof()
}

func (r *rootCursor) RowID() int64 {
	return int64(r.containers.rowIndex())
}

func (r *rootCursor) Column(ordinal int) (any, error) {
	if ordinal < 0 || ordinal >= len(r.table.Columns) {
		return nil, ErrColumnOutOfRange(r.table.Name, ordinal)
	}
	if r.AtEnd() || r.containers.document() == nil {
		return nil, ErrNoCurrentRow
	}
	if ordinal == 0 || ordinal == containerIDColumn {
		return r.RowID(), nil
	}
	extract := r.table.Columns[ordinal].Extractor
	if extract == nil {
		return nil, ErrNoExtractor(r.table.Name, r.table.Columns[ordinal].Name)
	}
	return extract(r.currentElement()), nil
}

func (r *rootCursor) currentElement() *etree.Element {
	return r.containers.document().Root()
}

func (r *rootCursor) containerIndex() int {
	return r.containers.rowIndex()
}

func (r *rootCursor) containerName() string {
	return r.containers.name()
}

func (r *rootCursor) Close() error {
	r.containers.close()
	return nil
}

// childCursor iterates the sub-elements its table extracts from each parent
// row. Parents yielding no elements contribute no rows and are skipped; the
// cursor never exposes an empty element list as a current row. Nesting is by
// composition: the parent may itself be a childCursor.
type childCursor struct {
	table     *TableMeta
	parent    entityCursor
	fkOrdinal int

	elements     []*etree.Element
	elementIndex int
	haveElements bool
	atEnd        bool
}

func (c *childCursor) Position(con Constraint) error {
	if err := c.parent.Position(con); err != nil {
		return err
	}
	c.elements = nil
	c.haveElements = false
	c.elementIndex = -1
	c.atEnd = false
	return c.Advance()
}

func (c *childCursor) Advance() error {
	for {
		if c.parent.AtEnd() {
			c.atEnd = true
			return nil
		}
		if !c.haveElements {
			c.elements = c.table.Elements(c.parent.currentElement())
			c.haveElements = true
			c.elementIndex = -1
		}
		if len(c.elements) == 0 {
			if err := c.parent.Advance(); err != nil {
				return err
			}
			c.haveElements = false
			continue
		}
		if c.elementIndex+1 < len(c.elements) {
			c.elementIndex++
			if c.elementIndex >= maxChildElements {
				return ErrChildCapacity(c.table.Name, c.parent.RowID())
			}
			c.atEnd = false
			return nil
		}
		if err := c.parent.Advance(); err != nil {
			return err
		}
		c.haveElements = false
	}
}

func (c *childCursor) AtEnd() bool {
	return c.atEnd
}

// RowID packs the parent's row id in the high bits and the element ordinal
// in the low childIndexBits, making child row ids unique and the parent's
// identity recoverable by shifting.
func (c *childCursor) RowID() int64 {
	return c.parent.RowID()<<childIndexBits | int64(c.elementIndex)
}

func (c *childCursor) Column(ordinal int) (any, error) {
	if ordinal < 0 || ordinal >= len(c.table.Columns) {
		return nil, ErrColumnOutOfRange(c.table.Name, ordinal)
	}
	if c.atEnd || c.elementIndex < 0 {
		return nil, ErrNoCurrentRow
	}
	switch ordinal {
	case 0:
		return c.RowID(), nil
	case containerIDColumn:
		return int64(c.parent.containerIndex()), nil
	case c.fkOrdinal:
		return c.parent.containerName(), nil
	}
	extract := c.table.Columns[ordinal].Extractor
	if extract == nil {
		return nil, ErrNoExtractor(c.table.Name, c.table.Columns[ordinal].Name)
	}
	return extract(c.currentElement()), nil
}

func (c *childCursor) currentElement() *etree.Element {
	return c.elements[c.elementIndex]
}

func (c *childCursor) containerIndex() int {
	return c.parent.containerIndex()
}

func (c *childCursor) containerName() string {
	return c.parent.containerName()
}

func (c *childCursor) Close() error {
	c.elements = nil
	return c.parent.Close()
}
