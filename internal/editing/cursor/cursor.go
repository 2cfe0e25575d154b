// Package cursor provides document positions for the text widget.
//
// A Cursor addresses a point in a buffer by line and column. Positions are
// zero-based and never negative; all movement saturates at zero and at the
// largest representable value, so position arithmetic cannot underflow or
// overflow.
package cursor

import (
	"fmt"
	"math"
)

// Cursor is a position in a document. Cursor is an immutable value type;
// movement methods return a new cursor.
type Cursor struct {
	Line   int
	Column int
}

// New creates a cursor at the given line and column.
// Negative coordinates are clamped to zero.
func New(line, col int) Cursor {
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return Cursor{Line: line, Column: col}
}

// WithLine returns a cursor on the given line, keeping the column.
func (c Cursor) WithLine(line int) Cursor {
	return New(line, c.Column)
}

// WithColumn returns a cursor at the given column, keeping the line.
func (c Cursor) WithColumn(col int) Cursor {
	return New(c.Line, col)
}

// Up returns a cursor moved n lines up, saturating at the first line.
func (c Cursor) Up(n int) Cursor {
	return Cursor{Line: satSub(c.Line, n), Column: c.Column}
}

// Down returns a cursor moved n lines down.
func (c Cursor) Down(n int) Cursor {
	return Cursor{Line: SatAdd(c.Line, n), Column: c.Column}
}

// Left returns a cursor moved n columns left, saturating at column zero.
func (c Cursor) Left(n int) Cursor {
	return Cursor{Line: c.Line, Column: satSub(c.Column, n)}
}

// Right returns a cursor moved n columns right.
func (c Cursor) Right(n int) Cursor {
	return Cursor{Line: c.Line, Column: SatAdd(c.Column, n)}
}

// Compare orders cursors first by line, then by column.
// Returns -1 if c < other, 0 if equal, 1 if c > other.
func (c Cursor) Compare(other Cursor) int {
	if c.Line != other.Line {
		if c.Line < other.Line {
			return -1
		}
		return 1
	}
	if c.Column != other.Column {
		if c.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if c comes before other in document order.
func (c Cursor) Before(other Cursor) bool {
	return c.Compare(other) < 0
}

// After returns true if c comes after other in document order.
func (c Cursor) After(other Cursor) bool {
	return c.Compare(other) > 0
}

// Equals returns true if both cursors address the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.Line == other.Line && c.Column == other.Column
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Line, c.Column)
}

// SatAdd adds two non-negative values, saturating at the largest int.
func SatAdd(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

// SatMul multiplies two non-negative values, saturating at the largest int.
func SatMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// satSub subtracts b from a, saturating at zero.
func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
