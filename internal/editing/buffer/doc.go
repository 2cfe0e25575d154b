// Package buffer implements the shared text store behind widget views.
//
// A Buffer holds line-oriented text plus the cursor groups of every view
// attached to it. Each group has one leader cursor, which drives scrolling,
// and zero or more follower cursors for multi-cursor editing. Views hold a
// shared *Buffer and a GroupID; the buffer owns all cursor storage.
//
// Access is mediated by a read/write lock: queries take the read lock,
// mutations the write lock. Both are acquired non-blocking. The design
// assumes single-threaded reentrant usage, so a failed acquisition means a
// call path already holds the lock; that is a programming-invariant
// violation and panics rather than proceeding on stale state.
package buffer
