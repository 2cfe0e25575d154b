package buffer

import "github.com/dshills/textwin/internal/editing/cursor"

// GroupID identifies a cursor group within a buffer. Views hold the
// identifier only; the buffer owns the group's cursors.
type GroupID int

// group is one view's cursors: a leader that drives the viewport plus any
// follower cursors and active selections.
type group struct {
	leader     cursor.Cursor
	followers  []cursor.Cursor
	selections []Selection
}

// CreateGroup registers a new cursor group and returns its identifier.
// The group starts with its leader at (0,0) and no followers.
func (b *Buffer) CreateGroup() GroupID {
	defer b.lock()()
	id := b.nextID
	b.nextID++
	b.groups[id] = &group{}
	return id
}

// Leader returns the group's leader cursor. An unknown group yields the
// zero cursor.
func (b *Buffer) Leader(id GroupID) cursor.Cursor {
	defer b.rlock()()
	g, ok := b.groups[id]
	if !ok {
		return cursor.Cursor{}
	}
	return g.leader
}

// SetLeader moves the group's leader cursor.
func (b *Buffer) SetLeader(id GroupID, c cursor.Cursor) error {
	defer b.lock()()
	g, ok := b.groups[id]
	if !ok {
		return ErrNoSuchGroup
	}
	g.leader = c
	return nil
}

// Followers returns a copy of the group's follower cursors.
func (b *Buffer) Followers(id GroupID) []cursor.Cursor {
	defer b.rlock()()
	g, ok := b.groups[id]
	if !ok || len(g.followers) == 0 {
		return nil
	}
	out := make([]cursor.Cursor, len(g.followers))
	copy(out, g.followers)
	return out
}

// AddFollower adds a follower cursor to the group. The position is
// legalized against the buffer content first. Duplicate positions are
// ignored.
func (b *Buffer) AddFollower(id GroupID, c cursor.Cursor) error {
	defer b.lock()()
	g, ok := b.groups[id]
	if !ok {
		return ErrNoSuchGroup
	}
	c = b.clamp(c)
	for _, f := range g.followers {
		if f.Equals(c) {
			return nil
		}
	}
	g.followers = append(g.followers, c)
	return nil
}

// ClearFollowers removes all follower cursors from the group.
func (b *Buffer) ClearFollowers(id GroupID) error {
	defer b.lock()()
	g, ok := b.groups[id]
	if !ok {
		return ErrNoSuchGroup
	}
	g.followers = nil
	return nil
}

// Selections returns a copy of the group's active selections.
func (b *Buffer) Selections(id GroupID) []Selection {
	defer b.rlock()()
	g, ok := b.groups[id]
	if !ok || len(g.selections) == 0 {
		return nil
	}
	out := make([]Selection, len(g.selections))
	copy(out, g.selections)
	return out
}

// SetSelections replaces the group's selections.
func (b *Buffer) SetSelections(id GroupID, sels []Selection) error {
	defer b.lock()()
	g, ok := b.groups[id]
	if !ok {
		return ErrNoSuchGroup
	}
	g.selections = make([]Selection, len(sels))
	copy(g.selections, sels)
	return nil
}
