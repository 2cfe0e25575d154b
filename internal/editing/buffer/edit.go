package buffer

import (
	"strings"

	"github.com/dshills/textwin/internal/editing/cursor"
)

// Edit operations mutate text at a group's leader cursor. Full modal
// editing semantics (motions, registers, history) live with the host
// editing layer; the buffer offers the primitive mutations that layer
// dispatches. After every edit, all cursors are legalized against the new
// content.

// InsertRune inserts a single character at the leader cursor and advances
// the leader past it. A newline splits the current line.
func (b *Buffer) InsertRune(id GroupID, r rune) error {
	return b.InsertText(id, string(r))
}

// InsertText inserts text at the leader cursor. Embedded newlines split
// lines. The leader ends up just after the inserted text.
func (b *Buffer) InsertText(id GroupID, s string) error {
	defer b.lock()()
	g, ok := b.groups[id]
	if !ok {
		return ErrNoSuchGroup
	}

	at := b.clamp(g.leader)
	line := b.lines[at.Line]
	col := at.Column
	if col > len(line) {
		col = len(line)
	}
	head, tail := line[:col], line[col:]

	parts := splitLines(s)
	if strings.HasSuffix(s, "\n") {
		parts = append(parts, "")
	}

	if len(parts) == 1 {
		b.lines[at.Line] = head + parts[0] + tail
		g.leader = cursor.New(at.Line, col+len(parts[0]))
	} else {
		inserted := make([]string, len(parts))
		copy(inserted, parts)
		inserted[0] = head + parts[0]
		last := len(inserted) - 1
		endCol := len(inserted[last])
		inserted[last] += tail

		out := make([]string, 0, len(b.lines)+len(inserted)-1)
		out = append(out, b.lines[:at.Line]...)
		out = append(out, inserted...)
		out = append(out, b.lines[at.Line+1:]...)
		b.lines = out
		g.leader = cursor.New(at.Line+last, endCol)
	}

	b.clampGroups()
	return nil
}

// OpenLine inserts an empty line below (or above) the leader's line and
// moves the leader to its start.
func (b *Buffer) OpenLine(id GroupID, below bool) error {
	defer b.lock()()
	g, ok := b.groups[id]
	if !ok {
		return ErrNoSuchGroup
	}

	at := b.clamp(g.leader)
	insert := at.Line
	if below {
		insert++
	}

	out := make([]string, 0, len(b.lines)+1)
	out = append(out, b.lines[:insert]...)
	out = append(out, "")
	out = append(out, b.lines[insert:]...)
	b.lines = out
	g.leader = cursor.New(insert, 0)

	b.clampGroups()
	return nil
}

// DeleteLine removes the leader's line and returns its text. Deleting the
// only line leaves a single empty line.
func (b *Buffer) DeleteLine(id GroupID) (string, error) {
	defer b.lock()()
	g, ok := b.groups[id]
	if !ok {
		return "", ErrNoSuchGroup
	}

	at := b.clamp(g.leader)
	removed := b.lines[at.Line]
	if len(b.lines) == 1 {
		b.lines[0] = ""
	} else {
		b.lines = append(b.lines[:at.Line], b.lines[at.Line+1:]...)
	}

	b.clampGroups()
	return removed, nil
}
