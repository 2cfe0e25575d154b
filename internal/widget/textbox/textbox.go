// Package textbox implements a scrollable, multi-cursor text widget over a
// shared buffer. The widget owns viewport state only; text, cursors, and
// selections live in the buffer and are referenced through a cursor group.
package textbox

import (
	"github.com/google/uuid"

	"github.com/dshills/textwin/internal/editing/buffer"
	"github.com/dshills/textwin/internal/editing/cursor"
	"github.com/dshills/textwin/internal/renderer/core"
	"github.com/dshills/textwin/internal/widget"
)

// TextBox is one view of a shared buffer. Duplicated views share text but
// keep independent cursor groups and viewports.
type TextBox struct {
	id    uuid.UUID
	buf   *buffer.Buffer
	group buffer.GroupID

	viewctx ViewportContext

	// Outputs of the previous render, read by the host compositor.
	termArea   core.ScreenRect
	termCursor core.ScreenPos
}

var _ widget.Window = (*TextBox)(nil)
var _ widget.Scrollable = (*TextBox)(nil)

// New creates a text box viewing the given buffer. The view gets a fresh
// cursor group with its leader at the origin. Wrapping is on by default.
func New(buf *buffer.Buffer) *TextBox {
	return &TextBox{
		id:      uuid.New(),
		buf:     buf,
		group:   buf.CreateGroup(),
		viewctx: ViewportContext{Wrap: true},
	}
}

// ID returns the view's unique identifier.
func (t *TextBox) ID() uuid.UUID {
	return t.id
}

// Buffer returns the shared buffer this view renders.
func (t *TextBox) Buffer() *buffer.Buffer {
	return t.buf
}

// Group returns the view's cursor group identifier.
func (t *TextBox) Group() buffer.GroupID {
	return t.group
}

// Text returns the full buffer content.
func (t *TextBox) Text() string {
	return t.buf.Text()
}

// SetText replaces the buffer content.
func (t *TextBox) SetText(s string) {
	t.buf.SetText(s)
}

// ResetText clears the buffer and returns the prior content. The leader
// cursor moves back to the origin.
func (t *TextBox) ResetText() string {
	return t.buf.ResetText()
}

// SetWrap enables or disables line wrapping.
func (t *TextBox) SetWrap(wrap bool) {
	t.viewctx.Wrap = wrap
}

// Wrap reports whether line wrapping is enabled.
func (t *TextBox) Wrap() bool {
	return t.viewctx.Wrap
}

// SetArea records the terminal drawing area and updates the viewport
// dimensions to match.
func (t *TextBox) SetArea(area core.ScreenRect) {
	t.viewctx.Width = area.Width()
	t.viewctx.Height = area.Height()
	t.termArea = area
}

// Area returns the last recorded terminal drawing area.
func (t *TextBox) Area() core.ScreenRect {
	return t.termArea
}

// Dimensions returns the viewport dimensions in cells.
func (t *TextBox) Dimensions() (width, height int) {
	return t.viewctx.Width, t.viewctx.Height
}

// Corner returns the current viewport corner.
func (t *TextBox) Corner() cursor.Cursor {
	return t.viewctx.Corner
}

// Cursor returns the view's leader cursor.
func (t *TextBox) Cursor() cursor.Cursor {
	return t.buf.Leader(t.group)
}

// LineCount returns the number of lines in the buffer.
func (t *TextBox) LineCount() int {
	return t.buf.LineCount()
}

// HasLines returns how many screen rows the content would occupy, counting
// wrapped segments, capped at max. Used by hosts sizing a box to content.
func (t *TextBox) HasLines(max int) int {
	if !t.viewctx.Wrap {
		n := t.buf.LineCount()
		if n > max {
			return max
		}
		return n
	}

	width := t.viewctx.Width
	if width == 0 {
		return 0
	}

	// Every line fills at least one row, so max lines suffice to reach
	// the cap.
	count := 0
	for _, line := range t.buf.LinesRange(0, max) {
		count++
		if len(line) > 0 {
			count += (len(line) - 1) / width
		}
		if count >= max {
			return max
		}
	}
	return count
}

// TermCursor returns the terminal cursor position computed by the last
// render.
func (t *TextBox) TermCursor() core.ScreenPos {
	return t.termCursor
}

// Draw renders the view into the given area of the surface.
func (t *TextBox) Draw(area core.ScreenRect, surface widget.Surface) {
	NewRenderer().Render(area, surface, t)
}

// Dup creates a new view of the same buffer with a fresh cursor group and
// reset terminal state. The viewport configuration is copied.
func (t *TextBox) Dup() widget.Window {
	return &TextBox{
		id:      uuid.New(),
		buf:     t.buf,
		group:   t.buf.CreateGroup(),
		viewctx: t.viewctx,
	}
}

// Close releases the view. Text boxes hold no unsaved state of their own,
// so closing always succeeds.
func (t *TextBox) Close(widget.CloseFlags) bool {
	return true
}
