package textbox

import "github.com/dshills/textwin/internal/editing/cursor"

// ViewportContext tracks the visible window over a buffer: the document
// position rendered at the top-left cell, the window dimensions, and
// whether long lines wrap.
type ViewportContext struct {
	// Corner is the document position at the viewport's top-left cell.
	Corner cursor.Cursor

	// Width and Height are the viewport dimensions in cells.
	Width  int
	Height int

	// Wrap selects wrapped rendering. Wrapped lines always restart at
	// column zero; there is no horizontal scroll in wrap mode.
	Wrap bool
}

// ShiftCorner moves the corner the minimum distance needed to bring the
// given cursor back inside the viewport.
func (vc *ViewportContext) ShiftCorner(cur cursor.Cursor) {
	if vc.Wrap {
		shiftCornerWrap(cur, &vc.Corner, vc.Height)
	} else {
		shiftCornerNowrap(cur, &vc.Corner, vc.Width, vc.Height)
	}
}

// PullCursor clamps a cursor into the window [corner, corner+dimensions),
// used after the corner has been moved by an explicit scroll and the
// cursor must follow back onscreen.
func (vc *ViewportContext) PullCursor(cur cursor.Cursor) cursor.Cursor {
	cur.Line = pullAxis(cur.Line, vc.Corner.Line, vc.Height)
	cur.Column = pullAxis(cur.Column, vc.Corner.Column, vc.Width)
	return cur
}

// pullAxis clamps a coordinate into [corner, corner+extent). A degenerate
// extent collapses the window to the corner itself, so the result is never
// negative.
func pullAxis(v, corner, extent int) int {
	if extent <= 0 || v < corner {
		return corner
	}
	if last := cursor.SatAdd(corner, extent) - 1; v > last {
		return last
	}
	return v
}

// shiftCornerNowrap adjusts the corner independently on each axis so the
// cursor lies within [corner, corner+extent).
func shiftCornerNowrap(cur cursor.Cursor, corner *cursor.Cursor, width, height int) {
	if cur.Line < corner.Line {
		corner.Line = cur.Line
	} else if cur.Line >= cursor.SatAdd(corner.Line, height) {
		corner.Line = cur.Line - height + 1
	}

	if cur.Column < corner.Column {
		corner.Column = cur.Column
	} else if cur.Column >= cursor.SatAdd(corner.Column, width) {
		corner.Column = cur.Column - width + 1
	}
}

// shiftCornerWrap adjusts the corner vertically like the no-wrap variant,
// but resets the corner column to zero whenever the vertical adjustment
// fires or the cursor sits left of the corner on the corner's own line.
// Wrapped rendering always restarts a line at column zero.
func shiftCornerWrap(cur cursor.Cursor, corner *cursor.Cursor, height int) {
	if cur.Line < corner.Line {
		corner.Line = cur.Line
		corner.Column = 0
	} else if cur.Line >= cursor.SatAdd(corner.Line, height) {
		corner.Line = cur.Line - height + 1
		corner.Column = 0
	} else if cur.Line == corner.Line && cur.Column < corner.Column {
		corner.Column = 0
	}
}
