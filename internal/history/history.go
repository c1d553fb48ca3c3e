// Package history keeps a linear undo/redo stack of whole-profile snapshots.
// Every discrete edit is one entry; snapshots rather than diffs keep the
// bookkeeping trivially correct for documents of at most a few hundred keys.
package history

import (
	"github.com/skyfreq/gridpad/internal/profile"
)

// History is the snapshot stack plus a cursor. The snapshot at the cursor is
// the current document. The stack is unbounded.
type History struct {
	snaps  []profile.Profile
	cursor int
}

// New starts a history with a single snapshot.
func New(initial profile.Profile) *History {
	return &History{snaps: []profile.Profile{initial}}
}

// Current returns the snapshot at the cursor.
func (h *History) Current() profile.Profile {
	return h.snaps[h.cursor]
}

// Mutate computes the next document from the current one, discards any redo
// tail, and appends the result as the new current snapshot. An updater that
// returns the document unchanged still produces an entry; callers decide
// whether an operation is worth recording.
func (h *History) Mutate(updater func(profile.Profile) profile.Profile) {
	next := updater(h.Current())
	h.snaps = append(h.snaps[:h.cursor+1], next)
	h.cursor++
}

// Undo steps the cursor back one snapshot. It reports whether anything
// changed; at the oldest snapshot it is a no-op.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo steps the cursor forward one snapshot, no-op at the newest.
func (h *History) Redo() bool {
	if h.cursor >= len(h.snaps)-1 {
		return false
	}
	h.cursor++
	return true
}

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool { return h.cursor < len(h.snaps)-1 }

// Replace resets the history to a single snapshot. Loading a file or starting
// a new profile is not undoable relative to the prior document.
func (h *History) Replace(p profile.Profile) {
	h.snaps = []profile.Profile{p}
	h.cursor = 0
}

// Len returns the number of snapshots retained.
func (h *History) Len() int { return len(h.snaps) }
