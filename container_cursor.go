package patentsource

import "github.com/beevik/etree"

// containerCursor advances through a source's containers one at a time,
// parsing each through the document cache as it lands on it. Internal to the
// package; entity cursors wrap it, tables never see it directly.
//
// In full-scan mode it visits every container in discovery order. When a
// constraint pins a single container it yields exactly that container and
// then exhausts, regardless of how many containers exist.
type containerCursor struct {
	source *DataSource
	index  int
	doc    *etree.Document

	single bool
	served bool

	positioned bool
	atEnd      bool
}

// position initializes iteration and lands on the first container, if any.
func (c *containerCursor) position(con Constraint) error {
	switch con.Kind {
	case SingleContainer:
		c.single = true
		c.index = con.Container - 1
	case ByRowID:
		// Root row ids are container ordinals, so a row id constraint
		// pins the corresponding container.
		c.single = true
		c.index = int(con.RowID) - 1
	default:
		c.single = false
		c.index = -1
	}
	c.served = false
	c.atEnd = false
	c.positioned = true
	return c.advance()
}

// advance moves to the next container and fetches its parsed document.
// Containers are assumed non-empty by construction, so running past the end
// of a pinned container list is an internal-consistency fault.
func (c *containerCursor) advance() error {
	if !c.positioned {
		return ErrCursorUnpositioned
	}
	if c.atEnd {
		return ErrCursorExhausted
	}
	if c.single && c.served {
		c.atEnd = true
		return nil
	}
	next := c.index + 1
	if next < 0 || next >= len(c.source.containers) {
		if c.single {
			return ErrContainerOutOfRange(next, len(c.source.containers))
		}
		c.atEnd = true
		return nil
	}
	c.index = next
	container := c.source.containers[next]
	doc, err := c.source.cache.fetch(container.Index, container.Data)
	if err != nil {
		return err
	}
	c.doc = doc
	c.served = true
	return nil
}

func (c *containerCursor) eof() bool {
	return c.atEnd
}

// rowIndex is the current container's ordinal; it doubles as the root row id.
func (c *containerCursor) rowIndex() int {
	return c.index
}

// document returns the parsed document of the current container.
func (c *containerCursor) document() *etree.Document {
	return c.doc
}

func (c *containerCursor) name() string {
	return c.source.containers[c.index].Name
}

func (c *containerCursor) close() {
	c.doc = nil
	c.positioned = false
}
