package textbox

import (
	"sort"

	"github.com/dshills/textwin/internal/editing/buffer"
	"github.com/dshills/textwin/internal/editing/cursor"
)

// HighlightInfo is a transient index over the cursor group's selections,
// rebuilt every render. It answers point-containment queries: which
// selections cover a given document line.
type HighlightInfo struct {
	// sels is sorted by start line; ranges are inclusive of the end line.
	sels []buffer.Selection
}

// buildHighlights indexes the group's selections for per-row queries.
// Selections are normalized so Start never comes after End.
func buildHighlights(sels []buffer.Selection) HighlightInfo {
	out := make([]buffer.Selection, len(sels))
	for i, s := range sels {
		out[i] = s.Normalize()
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return HighlightInfo{sels: out}
}

// Query returns the selections whose line range covers the given line.
func (h HighlightInfo) Query(line int) []buffer.Selection {
	// Selections starting past the line cannot cover it.
	end := sort.Search(len(h.sels), func(i int) bool {
		return h.sels[i].Start.Line > line
	})

	var out []buffer.Selection
	for _, s := range h.sels[:end] {
		if s.End.Line >= line {
			out = append(out, s)
		}
	}
	return out
}

// FollowersInfo is a transient index over the cursor group's follower
// cursors, rebuilt every render. It answers range-overlap queries: which
// followers fall within a row's rendered column span.
type FollowersInfo struct {
	// followers is sorted by (line, column).
	followers []cursor.Cursor
}

// buildFollowers indexes the group's follower cursors for per-row queries.
func buildFollowers(followers []cursor.Cursor) FollowersInfo {
	out := make([]cursor.Cursor, len(followers))
	copy(out, followers)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return FollowersInfo{followers: out}
}

// Query returns the followers on the given line with columns in
// [start, end).
func (f FollowersInfo) Query(line, start, end int) []cursor.Cursor {
	from := sort.Search(len(f.followers), func(i int) bool {
		c := f.followers[i]
		return c.Line > line || (c.Line == line && c.Column >= start)
	})

	var out []cursor.Cursor
	for _, c := range f.followers[from:] {
		if c.Line != line || c.Column >= end {
			break
		}
		out = append(out, c)
	}
	return out
}
