package patentsource

// ConstraintKind selects how a cursor is positioned.
type ConstraintKind int

const (
	// FullScan visits every container in discovery order.
	FullScan ConstraintKind = iota
	// SingleContainer yields the rows of exactly one container.
	SingleContainer
	// ByRowID yields the rows of the container holding the given row id.
	ByRowID
)

// Constraint is the positioning hint an embedding query engine passes to
// Position. The zero value requests a full scan.
type Constraint struct {
	Kind      ConstraintKind
	Container int
	RowID     int64
}

// ScanAll requests an unconstrained scan.
var ScanAll = Constraint{Kind: FullScan}

// PinContainer restricts a cursor to the container with the given ordinal.
func PinContainer(index int) Constraint {
	return Constraint{Kind: SingleContainer, Container: index}
}

// PinRowID restricts a cursor to the container holding the given row id.
func PinRowID(id int64) Constraint {
	return Constraint{Kind: ByRowID, RowID: id}
}

// Cursor is the pull-based row protocol consumed by an embedding query
// engine. Position is always called first and lands the cursor on its first
// row, or at the end if there are no rows. Column ordinal 0 is the synthetic
// id column and always returns RowID.
type Cursor interface {
	Position(c Constraint) error
	Advance() error
	AtEnd() bool
	RowID() int64
	Column(ordinal int) (any, error)
	Close() error
}

// childIndexBits is the width reserved in a child row id for the element
// ordinal within its parent. The parent's row id occupies the high bits.
const childIndexBits = 14

const maxChildElements = 1 << childIndexBits

// ParentRowID recovers the parent's row id from a child row id.
func ParentRowID(childRowID int64) int64 {
	return childRowID >> childIndexBits
}

// ChildIndex recovers the zero-based element ordinal from a child row id.
func ChildIndex(childRowID int64) int64 {
	return childRowID & (maxChildElements - 1)
}
