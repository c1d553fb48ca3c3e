package clipboard

import (
	"github.com/skyfreq/gridpad/internal/profile"
)

// Clipboard holds deep copies of keys captured by Copy or Cut. A cut-sourced
// clipboard is move semantics: it is consumed by its first paste.
type Clipboard struct {
	keys []profile.Key
	cut  bool
}

// Empty reports whether there is nothing to paste.
func (c Clipboard) Empty() bool { return len(c.keys) == 0 }

// Len returns the number of keys held.
func (c Clipboard) Len() int { return len(c.keys) }

// IsCut reports whether the content came from a Cut.
func (c Clipboard) IsCut() bool { return c.cut }

// Copy snapshots the selected keys, ascending by index, into a clipboard.
// An empty selection yields an empty clipboard.
func Copy(keys []profile.Key, sel Selection) Clipboard {
	picked := make([]profile.Key, 0, sel.Len())
	for _, i := range sel.Indices() {
		if i >= 0 && i < len(keys) {
			picked = append(picked, keys[i].Clone())
		}
	}
	return Clipboard{keys: picked}
}

// Cut snapshots the selected keys like Copy and returns the key list with
// them removed. Removal is computed against the original indices, so no entry
// is skipped by the list shrinking underneath the iteration.
func Cut(keys []profile.Key, sel Selection) ([]profile.Key, Clipboard) {
	clip := Copy(keys, sel)
	clip.cut = true
	if clip.Empty() {
		return keys, Clipboard{}
	}
	remaining := make([]profile.Key, 0, len(keys)-clip.Len())
	for i, k := range keys {
		if !sel.Contains(i) {
			remaining = append(remaining, k)
		}
	}
	return remaining, clip
}

// Paste inserts the clipboard keys as one contiguous block immediately after
// the highest selected index, or at the end of the list when nothing is
// selected. It returns the new key list, a selection covering the inserted
// block, and the clipboard to keep: cut-sourced content is consumed, copied
// content stays reusable. ok is false when the clipboard was empty.
func Paste(keys []profile.Key, sel Selection, clip Clipboard) ([]profile.Key, Selection, Clipboard, bool) {
	if clip.Empty() {
		return keys, sel, clip, false
	}
	at := len(keys)
	if !sel.Empty() && sel.Max() < len(keys) {
		at = sel.Max() + 1
	}

	out := make([]profile.Key, 0, len(keys)+clip.Len())
	out = append(out, keys[:at]...)
	out = append(out, profile.CloneKeys(clip.keys)...)
	out = append(out, keys[at:]...)

	var pasted Selection
	block := make([]int, clip.Len())
	for i := range block {
		block[i] = at + i
	}
	pasted.SetAll(block)

	next := clip
	if clip.cut {
		next = Clipboard{}
	}
	return out, pasted, next, true
}
