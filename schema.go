package patentsource

import "github.com/beevik/etree"

// containerIDColumn is the conventional ordinal of the container_id column
// present in every XML-backed table.
const containerIDColumn = 1

// ValueExtractor produces one column value from the current document element.
type ValueExtractor func(el *etree.Element) any

// ElementsExtractor produces the sub-elements a child table iterates over,
// given the parent table's current element. A nil or empty result means the
// parent row contributes no child rows.
type ElementsExtractor func(el *etree.Element) []*etree.Element

// ColumnMeta describes one table column. Ordinal 0 is the synthetic id
// column and ordinal 1 the container id; neither needs an extractor.
type ColumnMeta struct {
	Name        string
	Description string
	Extractor   ValueExtractor
}

// TableMeta describes one relational table projected over the parsed
// documents. A table with a ParentName is a child table: its rows are the
// elements the Elements extractor pulls from each parent row, and its
// ForeignKey column carries the parent container's display name for joins
// back to the root entity.
type TableMeta struct {
	Name       string
	ParentName string
	ForeignKey string
	Elements   ElementsExtractor
	Columns    []ColumnMeta
}

// ColumnNames returns the table's column names in ordinal order.
func (t *TableMeta) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// ordinalOf returns the ordinal of the named column, or -1.
func (t *TableMeta) ordinalOf(name string) int {
	if name == "" {
		return -1
	}
	for i, col := range t.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// Text extracts the text content of the first element matched by path,
// or nil when the path matches nothing.
func Text(path string) ValueExtractor {
	return func(el *etree.Element) any {
		found := el.FindElement(path)
		if found == nil {
			return nil
		}
		return found.Text()
	}
}

// Attr extracts the named attribute of the first element matched by path.
// An empty path addresses the current element itself.
func Attr(path, name string) ValueExtractor {
	return func(el *etree.Element) any {
		target := el
		if path != "" {
			target = el.FindElement(path)
			if target == nil {
				return nil
			}
		}
		attr := target.SelectAttr(name)
		if attr == nil {
			return nil
		}
		return attr.Value
	}
}

// OwnText extracts the current element's own text content.
func OwnText() ValueExtractor {
	return func(el *etree.Element) any {
		return el.Text()
	}
}

// Flag extracts 1 when path matches an element, 0 otherwise.
func Flag(path string) ValueExtractor {
	return func(el *etree.Element) any {
		if el.FindElement(path) == nil {
			return int64(0)
		}
		return int64(1)
	}
}

// Elements matches all elements reached by path from the current element.
func Elements(path string) ElementsExtractor {
	return func(el *etree.Element) []*etree.Element {
		return el.FindElements(path)
	}
}
