package textbox

import (
	"github.com/dshills/textwin/internal/editing/cursor"
	"github.com/dshills/textwin/internal/editing/editctx"
	"github.com/dshills/textwin/internal/widget"
)

// Scroll applies a scroll request to the viewport. Scrolling cannot fail
// from its own inputs; the only errors come from the buffer collaborator
// and are propagated unchanged.
func (t *TextBox) Scroll(style widget.ScrollStyle, ctx editctx.Context) error {
	switch req := style.(type) {
	case widget.ScrollDirection2D:
		return t.dirScroll(req.Dir, req.Size, req.Count, ctx)
	case widget.ScrollCursorPos:
		return t.cursorPos(req.Pos, req.Axis)
	case widget.ScrollLinePos:
		return t.linePos(req.Pos, req.Count, ctx)
	default:
		return nil
	}
}

// dirScroll moves the corner in a direction, then pulls the cursor back
// onscreen. The cursor is legalized against real content before the corner
// is re-shifted, so the persisted (cursor, corner) pair is always jointly
// legal even when content is shorter than the requested scroll.
func (t *TextBox) dirScroll(dir widget.Direction, size widget.ScrollSize, count editctx.Count, ctx editctx.Context) error {
	n := ctx.ResolveCount(count)

	width := t.viewctx.Width
	height := t.viewctx.Height

	var rows, cols int
	switch size {
	case widget.SizeHalfPage:
		rows = cursor.SatMul(n, height) / 2
		cols = cursor.SatMul(n, width) / 2
	case widget.SizePage:
		rows = cursor.SatMul(n, height)
		cols = cursor.SatMul(n, width)
	default:
		rows = n
		cols = n
	}

	switch {
	case dir == widget.DirUp:
		t.viewctx.Corner = t.viewctx.Corner.Up(rows)
	case dir == widget.DirDown:
		t.viewctx.Corner = t.viewctx.Corner.Down(rows)
	case dir == widget.DirLeft && !t.viewctx.Wrap:
		t.viewctx.Corner = t.viewctx.Corner.Left(cols)
	case dir == widget.DirRight && !t.viewctx.Wrap:
		t.viewctx.Corner = t.viewctx.Corner.Right(cols)
	default:
		// Horizontal scrolling is meaningless with wrapped lines.
	}

	// Moving the viewport drags the cursor so it stays visible. The
	// cursor must not pass the last line or column, so it is clamped
	// after the pull; since the cursor can never be offscreen, that
	// clamp also bounds how far the viewport can actually move.
	cur := t.viewctx.PullCursor(t.Cursor())
	cur = t.buf.Clamp(cur)
	t.viewctx.ShiftCorner(cur)
	return t.buf.SetLeader(t.group, cur)
}

// cursorPos re-anchors the corner so the current cursor appears at the
// requested screen position along the requested axis. The cursor itself
// does not move; the result depends only on the cursor and dimensions.
func (t *TextBox) cursorPos(pos widget.MovePosition, axis widget.Axis) error {
	if axis == widget.AxisHorizontal && t.viewctx.Wrap {
		return nil
	}

	width := t.viewctx.Width
	height := t.viewctx.Height
	cur := t.Cursor()
	t.viewctx.ShiftCorner(cur)

	switch {
	case axis == widget.AxisHorizontal && pos == widget.PosBeginning:
		t.viewctx.Corner.Column = cur.Column
	case axis == widget.AxisHorizontal && pos == widget.PosMiddle:
		t.viewctx.Corner.Column = satSub(cursor.SatAdd(cur.Column, 1), width/2)
	case axis == widget.AxisHorizontal && pos == widget.PosEnd:
		t.viewctx.Corner.Column = satSub(cursor.SatAdd(cur.Column, 1), width)
	case axis == widget.AxisVertical && pos == widget.PosBeginning:
		t.viewctx.Corner.Line = cur.Line
	case axis == widget.AxisVertical && pos == widget.PosMiddle:
		t.viewctx.Corner.Line = satSub(cursor.SatAdd(cur.Line, 1), height/2)
	case axis == widget.AxisVertical && pos == widget.PosEnd:
		t.viewctx.Corner.Line = satSub(cursor.SatAdd(cur.Line, 1), height)
	}

	return nil
}

// linePos jumps the leader to the start of a line (1-based count, clamped
// to the last line) and anchors the corner so the cursor lands at the
// requested vertical position.
func (t *TextBox) linePos(pos widget.MovePosition, count editctx.Count, ctx editctx.Context) error {
	line := ctx.ResolveCount(count)
	if max := t.buf.LineCount(); line > max {
		line = max
	}
	line = satSub(line, 1)

	height := t.viewctx.Height

	if err := t.buf.SetLeader(t.group, cursor.New(line, 0)); err != nil {
		return err
	}

	switch pos {
	case widget.PosBeginning:
		t.viewctx.Corner.Line = line
	case widget.PosMiddle:
		t.viewctx.Corner.Line = satSub(cursor.SatAdd(line, 1), height/2)
	case widget.PosEnd:
		t.viewctx.Corner.Line = satSub(cursor.SatAdd(line, 1), height)
	}

	return nil
}

// satSub subtracts b from a, saturating at zero.
func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
