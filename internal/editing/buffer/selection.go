package buffer

import "github.com/dshills/textwin/internal/editing/cursor"

// Shape describes selection geometry, which determines the column span a
// selection highlights on each covered row.
type Shape uint8

const (
	// ShapeCharWise selects a contiguous character stream.
	ShapeCharWise Shape = iota
	// ShapeLineWise selects whole lines.
	ShapeLineWise
	// ShapeBlockWise selects a rectangular block of columns.
	ShapeBlockWise
)

// String returns the string representation of a shape.
func (s Shape) String() string {
	switch s {
	case ShapeCharWise:
		return "charwise"
	case ShapeLineWise:
		return "linewise"
	case ShapeBlockWise:
		return "blockwise"
	default:
		return "charwise"
	}
}

// Selection is a selected span with a geometry shape.
type Selection struct {
	Start cursor.Cursor
	End   cursor.Cursor
	Shape Shape
}

// Normalize returns a selection whose Start does not come after End.
func (s Selection) Normalize() Selection {
	if s.Start.After(s.End) {
		s.Start, s.End = s.End, s.Start
	}
	return s
}
