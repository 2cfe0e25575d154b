package buffer

import (
	"errors"
	"strings"
	"sync"

	"github.com/dshills/textwin/internal/editing/cursor"
)

// Errors returned by buffer operations.
var (
	ErrNoSuchGroup = errors.New("no such cursor group")
	ErrLineRange   = errors.New("line out of range")
)

// Buffer is a line-oriented text store shared by one or more views.
// A buffer always contains at least one line; resetting it leaves a single
// empty line.
type Buffer struct {
	mu     sync.RWMutex
	lines  []string
	groups map[GroupID]*group
	nextID GroupID
}

// New creates an empty buffer containing a single empty line.
func New() *Buffer {
	return &Buffer{
		lines:  []string{""},
		groups: make(map[GroupID]*group),
	}
}

// FromString creates a buffer with the given initial content.
func FromString(s string) *Buffer {
	b := New()
	b.lines = splitLines(s)
	return b
}

// lock acquires the write lock, panicking on reentrant acquisition.
func (b *Buffer) lock() func() {
	if !b.mu.TryLock() {
		panic("buffer: write lock acquired reentrantly")
	}
	return b.mu.Unlock
}

// rlock acquires the read lock, panicking on reentrant acquisition.
func (b *Buffer) rlock() func() {
	if !b.mu.TryRLock() {
		panic("buffer: read lock acquired reentrantly")
	}
	return b.mu.RUnlock
}

// Text returns the full buffer content. The result always carries a
// trailing newline; an empty buffer yields "\n".
func (b *Buffer) Text() string {
	defer b.rlock()()
	return strings.Join(b.lines, "\n") + "\n"
}

// SetText replaces the buffer content. Line endings are normalized to LF.
// Cursors of every group are legalized against the new content.
func (b *Buffer) SetText(s string) {
	defer b.lock()()
	b.lines = splitLines(s)
	b.clampGroups()
}

// ResetText clears the buffer to a single empty line and returns the prior
// content. Every group's leader moves to (0,0); followers and selections
// are dropped.
func (b *Buffer) ResetText() string {
	defer b.lock()()
	old := strings.Join(b.lines, "\n") + "\n"
	b.lines = []string{""}
	for _, g := range b.groups {
		g.leader = cursor.Cursor{}
		g.followers = nil
		g.selections = nil
	}
	return old
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	defer b.rlock()()
	return len(b.lines)
}

// Line returns the text of the given line. Out-of-range lines yield an
// empty string and ErrLineRange.
func (b *Buffer) Line(n int) (string, error) {
	defer b.rlock()()
	if n < 0 || n >= len(b.lines) {
		return "", ErrLineRange
	}
	return b.lines[n], nil
}

// LinesRange returns a copy of up to max lines starting at the given line.
// A start past the end or a non-positive max yields nil. Callers retrieving
// lines for display should pass the viewport height so the cost tracks the
// window size rather than the document size.
func (b *Buffer) LinesRange(start, max int) []string {
	defer b.rlock()()
	if start < 0 || start >= len(b.lines) || max <= 0 {
		return nil
	}
	end := start + max
	if end > len(b.lines) {
		end = len(b.lines)
	}
	out := make([]string, end-start)
	copy(out, b.lines[start:end])
	return out
}

// Clamp legalizes a candidate cursor against the buffer content: the line
// is limited to the last line, the column to the last character of that
// line (column 0 on an empty line).
func (b *Buffer) Clamp(c cursor.Cursor) cursor.Cursor {
	defer b.rlock()()
	return b.clamp(c)
}

// clamp is the lock-free clamp used internally.
func (b *Buffer) clamp(c cursor.Cursor) cursor.Cursor {
	if c.Line >= len(b.lines) {
		c.Line = len(b.lines) - 1
	}
	if c.Line < 0 {
		c.Line = 0
	}
	maxCol := len(b.lines[c.Line]) - 1
	if maxCol < 0 {
		maxCol = 0
	}
	if c.Column > maxCol {
		c.Column = maxCol
	}
	if c.Column < 0 {
		c.Column = 0
	}
	return c
}

// clampGroups legalizes every cursor of every group. Caller holds the
// write lock.
func (b *Buffer) clampGroups() {
	for _, g := range b.groups {
		g.leader = b.clamp(g.leader)
		for i, f := range g.followers {
			g.followers[i] = b.clamp(f)
		}
	}
}

// splitLines breaks text into lines, normalizing CRLF and CR endings to LF
// and dropping a single trailing newline. Empty input yields one empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
