// Package widget defines the capability surfaces a terminal widget exposes
// to the host compositor: drawing into a screen region, scrolling, terminal
// cursor placement, and window lifecycle.
package widget

import (
	"github.com/dshills/textwin/internal/editing/editctx"
	"github.com/dshills/textwin/internal/renderer/core"
)

// Surface is the cell grid a widget draws into.
type Surface interface {
	// SetCell sets a single cell at the given screen position.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given screen position.
	GetCell(x, y int) core.Cell
}

// Drawable is a widget that can render itself into a screen region.
type Drawable interface {
	// Draw renders the widget into the given area of the surface.
	Draw(area core.ScreenRect, surface Surface)
}

// TerminalCursor reports where the terminal cursor should be placed.
type TerminalCursor interface {
	// TermCursor returns the screen coordinate computed by the last Draw.
	TermCursor() core.ScreenPos
}

// Scrollable is a widget whose viewport can be moved.
type Scrollable interface {
	// Scroll applies a scroll request. Counts inside the request are
	// resolved through ctx.
	Scroll(style ScrollStyle, ctx editctx.Context) error
}

// Direction is a two-dimensional scroll direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ScrollSize is the magnitude unit of a directional scroll.
type ScrollSize int

const (
	// SizeCell scrolls by single cells.
	SizeCell ScrollSize = iota
	// SizeHalfPage scrolls by half the viewport extent.
	SizeHalfPage
	// SizePage scrolls by the full viewport extent.
	SizePage
)

// MovePosition names a position within the viewport along one axis.
type MovePosition int

const (
	// PosBeginning is the first cell of the viewport along the axis.
	PosBeginning MovePosition = iota
	// PosMiddle is the center of the viewport along the axis.
	PosMiddle
	// PosEnd is the last cell of the viewport along the axis.
	PosEnd
)

// Axis is a scroll axis.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// ScrollStyle describes a scroll request. Implementations are
// ScrollDirection2D, ScrollCursorPos, and ScrollLinePos.
type ScrollStyle interface {
	isScrollStyle()
}

// ScrollDirection2D scrolls the viewport in a direction by a sized amount.
type ScrollDirection2D struct {
	Dir   Direction
	Size  ScrollSize
	Count editctx.Count
}

func (ScrollDirection2D) isScrollStyle() {}

// ScrollCursorPos re-anchors the viewport so the current cursor appears at
// the given position along the given axis. The cursor does not move.
type ScrollCursorPos struct {
	Pos  MovePosition
	Axis Axis
}

func (ScrollCursorPos) isScrollStyle() {}

// ScrollLinePos jumps the cursor to a line (1-based count, clamped to the
// last line) and anchors the viewport so the cursor appears at the given
// vertical position.
type ScrollLinePos struct {
	Pos   MovePosition
	Count editctx.Count
}

func (ScrollLinePos) isScrollStyle() {}

// CloseFlags modify window close behavior.
type CloseFlags int

const (
	CloseNone CloseFlags = 0
	// CloseForce discards the window even if the host would normally
	// object.
	CloseForce CloseFlags = 1 << iota
)

// Window is a composable view the host compositor manages.
type Window interface {
	Drawable
	TerminalCursor

	// Dup creates an independent view of the same underlying content.
	Dup() Window

	// Close releases the window's resources. Returns true if the window
	// agreed to close.
	Close(flags CloseFlags) bool
}
