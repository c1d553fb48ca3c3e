package clipboard

import (
	"github.com/skyfreq/gridpad/internal/profile"
)

// MoveVertical shifts every selected key by delta (+1 down, -1 up) in list
// order using adjacent pairwise swaps, so a contiguous multi-selection moves
// as a block without reordering relative to itself. The move is refused
// outright when any selected index would leave the list. It returns the new
// key list and the shifted selection.
func MoveVertical(keys []profile.Key, sel Selection, delta int) ([]profile.Key, Selection, bool) {
	if sel.Empty() || (delta != 1 && delta != -1) {
		return keys, sel, false
	}
	if sel.Min() < 0 || sel.Max() >= len(keys) {
		return keys, sel, false
	}
	if sel.Min()+delta < 0 || sel.Max()+delta >= len(keys) {
		return keys, sel, false
	}

	out := make([]profile.Key, len(keys))
	copy(out, keys)
	idx := sel.Indices()
	if delta > 0 {
		for i := len(idx) - 1; i >= 0; i-- {
			out[idx[i]], out[idx[i]+1] = out[idx[i]+1], out[idx[i]]
		}
	} else {
		for _, i := range idx {
			out[i-1], out[i] = out[i], out[i-1]
		}
	}

	moved := sel
	moved.indices = append([]int(nil), sel.indices...)
	moved.Shift(delta)
	return out, moved, true
}

// MoveHorizontal jumps every selected key one grid column left (dir -1) or
// right (dir +1), i.e. by rows positions, as pairwise swaps between each
// selected index and its destination. Refused when any destination is out of
// bounds.
func MoveHorizontal(keys []profile.Key, sel Selection, rows, dir int) ([]profile.Key, Selection, bool) {
	if sel.Empty() || rows < 1 || (dir != 1 && dir != -1) {
		return keys, sel, false
	}
	if sel.Min() < 0 || sel.Max() >= len(keys) {
		return keys, sel, false
	}
	delta := dir * rows
	if sel.Min()+delta < 0 || sel.Max()+delta >= len(keys) {
		return keys, sel, false
	}

	out := make([]profile.Key, len(keys))
	copy(out, keys)
	idx := sel.Indices()
	if delta > 0 {
		for i := len(idx) - 1; i >= 0; i-- {
			out[idx[i]], out[idx[i]+delta] = out[idx[i]+delta], out[idx[i]]
		}
	} else {
		for _, i := range idx {
			out[i+delta], out[i] = out[i], out[i+delta]
		}
	}

	moved := sel
	moved.indices = append([]int(nil), sel.indices...)
	moved.Shift(delta)
	return out, moved, true
}

// SwapPair exchanges the two selected keys. Any other selection size is a
// no-op.
func SwapPair(keys []profile.Key, sel Selection) ([]profile.Key, bool) {
	if sel.Len() != 2 {
		return keys, false
	}
	a, b := sel.Min(), sel.Max()
	if a < 0 || b >= len(keys) {
		return keys, false
	}
	out := make([]profile.Key, len(keys))
	copy(out, keys)
	out[a], out[b] = out[b], out[a]
	return out, true
}
