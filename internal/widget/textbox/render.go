package textbox

import (
	"github.com/dshills/textwin/internal/editing/buffer"
	"github.com/dshills/textwin/internal/editing/cursor"
	"github.com/dshills/textwin/internal/renderer/core"
	"github.com/dshills/textwin/internal/widget"
)

// Renderer draws a TextBox into a screen surface. A renderer is cheap and
// usually built fresh per frame; an optional prompt paints a fixed-width
// gutter left of the text.
type Renderer struct {
	prompt string
}

// NewRenderer creates a renderer with no prompt gutter.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Prompt sets the gutter prompt and returns the renderer.
func (r *Renderer) Prompt(prompt string) *Renderer {
	r.prompt = prompt
	return r
}

// Render draws the text box state into the given area. The prompt gutter
// is painted first and excluded from the text layout area; a zero-width or
// zero-height text area is a defined no-op with no state mutated.
func (r *Renderer) Render(area core.ScreenRect, surface widget.Surface, t *TextBox) {
	plen := core.StringWidth(r.prompt)

	textArea := core.ScreenRect{
		Top:    area.Top,
		Left:   area.Left + plen,
		Bottom: area.Bottom,
		Right:  area.Right,
	}
	if textArea.IsEmpty() {
		return
	}

	writeString(surface, area.Left, area.Top, r.prompt, plen)

	t.SetArea(textArea)

	hinfo := buildHighlights(t.buf.Selections(t.group))
	finfo := buildFollowers(t.buf.Followers(t.group))

	if t.viewctx.Wrap {
		r.renderWrap(textArea, surface, hinfo, finfo, t)
	} else {
		r.renderNowrap(textArea, surface, hinfo, finfo, t)
	}
}

// renderWrap draws wrapped rows. The corner is revalidated against the
// cursor before layout; layout may move it again so the cursor's own
// wrapped segment stays among the rendered rows.
func (r *Renderer) renderWrap(area core.ScreenRect, surface widget.Surface, hinfo HighlightInfo, finfo FollowersInfo, t *TextBox) {
	width := area.Width()
	height := area.Height()

	cur := t.Cursor()
	shiftCornerWrap(cur, &t.viewctx.Corner, height)

	// The corner shift leaves the cursor within height lines of the
	// corner, and every line fills at least one row, so height lines
	// are enough for the layout regardless of document size.
	lines := t.buf.LinesRange(t.viewctx.Corner.Line, height)
	rows, corner := layoutWrap(lines, t.viewctx.Corner, width, height, cur)
	t.viewctx.Corner = corner

	r.drawRows(area, surface, rows, cur, hinfo, finfo, t)
}

// renderNowrap draws one row per logical line starting at the corner.
func (r *Renderer) renderNowrap(area core.ScreenRect, surface widget.Surface, hinfo HighlightInfo, finfo FollowersInfo, t *TextBox) {
	width := area.Width()
	height := area.Height()

	cur := t.Cursor()
	shiftCornerNowrap(cur, &t.viewctx.Corner, width, height)

	lines := t.buf.LinesRange(t.viewctx.Corner.Line, height)
	rows := layoutNowrap(lines, t.viewctx.Corner, height, cur)

	r.drawRows(area, surface, rows, cur, hinfo, finfo, t)
}

// drawRows writes row text, applies highlight and follower styling, and
// records the terminal cursor position for the cursor's row.
func (r *Renderer) drawRows(area core.ScreenRect, surface widget.Surface, rows []Row, cur cursor.Cursor, hinfo HighlightInfo, finfo FollowersInfo, t *TextBox) {
	width := area.Width()
	x := area.Left
	y := area.Top

	for _, row := range rows {
		if y >= area.Bottom {
			break
		}

		writeString(surface, x, y, row.Text, width)

		if row.CursorRow {
			t.termCursor = core.ScreenPos{Row: y, Col: x + cur.Column - row.Start}
		}

		r.highlightFollowers(surface, row, x, y, width, finfo)
		r.highlightRow(surface, row, x, y, width, hinfo)

		y++
	}
}

// highlightFollowers reverse-styles one cell per follower cursor that
// falls within the row's rendered span.
func (r *Renderer) highlightFollowers(surface widget.Surface, row Row, x, y, width int, finfo FollowersInfo) {
	for _, f := range finfo.Query(row.Line, row.Start, row.End) {
		off := f.Column - row.Start
		if off >= width {
			continue
		}
		reverseCells(surface, x+off, y, 1)
	}
}

// highlightRow reverse-styles the column spans of every selection covering
// the row, per the selection's shape.
func (r *Renderer) highlightRow(surface widget.Surface, row Row, x, y, width int, hinfo HighlightInfo) {
	start := row.Start
	end := row.End
	maxcol := satSub(end, 1)

	for _, sel := range hinfo.Query(row.Line) {
		var x1, x2 int

		switch sel.Shape {
		case buffer.ShapeLineWise:
			// Whole rendered span, regardless of selection columns.
			reverseCells(surface, x, y, clipSpan(end-start, width))
			continue

		case buffer.ShapeBlockWise:
			// The same column band on every covered row.
			lx, rx := sel.Start.Column, sel.End.Column
			if rx < lx {
				lx, rx = rx, lx
			}
			x1 = max(lx, start)
			x2 = min(rx, maxcol)

		default: // charwise
			x1 = start
			if row.Line == sel.Start.Line {
				x1 = max(sel.Start.Column, start)
			}
			x2 = maxcol
			if row.Line == sel.End.Line {
				x2 = min(sel.End.Column, maxcol)
			}
		}

		if x1 < start || x1 >= end || x2 < start || x2 >= end {
			continue
		}
		reverseCells(surface, x+(x1-start), y, clipSpan(x2-x1+1, width-(x1-start)))
	}
}

// writeString writes up to max cells of s starting at (x, y). Wide runes
// take two cells, the second a continuation cell.
func writeString(surface widget.Surface, x, y int, s string, max int) {
	col := 0
	for _, cell := range core.CellsFromString(s, core.DefaultStyle()) {
		if col >= max {
			break
		}
		surface.SetCell(x+col, y, cell)
		col++
	}
}

// reverseCells applies reverse video to n cells starting at (x, y).
func reverseCells(surface widget.Surface, x, y, n int) {
	for i := 0; i < n; i++ {
		cell := surface.GetCell(x+i, y)
		surface.SetCell(x+i, y, cell.WithStyle(cell.Style.Reverse()))
	}
}

// clipSpan limits a span length to the available width, flooring at zero.
func clipSpan(n, limit int) int {
	return max(min(n, limit), 0)
}
