// Package clipboard implements multi-select, copy/cut/paste, and positional
// move semantics over the ordered key list of a single page. Selection and
// clipboard state are ephemeral UI state: they live outside the undo history
// and are clamped back into bounds whenever the document changes shape.
package clipboard

import (
	"sort"
)

// Selection is a set of selected key indices kept sorted ascending.
type Selection struct {
	indices []int
}

// Click replaces the selection with the single index.
func (s *Selection) Click(i int) {
	s.indices = []int{i}
}

// Toggle flips membership of the index, keeping order.
func (s *Selection) Toggle(i int) {
	pos := sort.SearchInts(s.indices, i)
	if pos < len(s.indices) && s.indices[pos] == i {
		s.indices = append(s.indices[:pos], s.indices[pos+1:]...)
		return
	}
	s.indices = append(s.indices, 0)
	copy(s.indices[pos+1:], s.indices[pos:])
	s.indices[pos] = i
}

// Range replaces the selection with the contiguous span between the anchor
// (the first currently selected index) and i, inclusive. With nothing
// selected it behaves like Click.
func (s *Selection) Range(i int) {
	if len(s.indices) == 0 {
		s.Click(i)
		return
	}
	anchor := s.indices[0]
	lo, hi := anchor, i
	if lo > hi {
		lo, hi = hi, lo
	}
	s.indices = make([]int, 0, hi-lo+1)
	for j := lo; j <= hi; j++ {
		s.indices = append(s.indices, j)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.indices = nil
}

// SetAll replaces the selection with the given indices, deduplicated and
// sorted.
func (s *Selection) SetAll(indices []int) {
	seen := make(map[int]bool, len(indices))
	s.indices = s.indices[:0]
	for _, i := range indices {
		if !seen[i] {
			seen[i] = true
			s.indices = append(s.indices, i)
		}
	}
	sort.Ints(s.indices)
}

// ClampTo drops every index outside [0, n). Called after any document change
// that can shrink the key list.
func (s *Selection) ClampTo(n int) {
	kept := s.indices[:0]
	for _, i := range s.indices {
		if i >= 0 && i < n {
			kept = append(kept, i)
		}
	}
	s.indices = kept
}

// Shift moves every selected index by delta.
func (s *Selection) Shift(delta int) {
	for i := range s.indices {
		s.indices[i] += delta
	}
}

// Indices returns the selected indices ascending. The slice is a copy.
func (s Selection) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// Contains reports whether i is selected.
func (s Selection) Contains(i int) bool {
	pos := sort.SearchInts(s.indices, i)
	return pos < len(s.indices) && s.indices[pos] == i
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool { return len(s.indices) == 0 }

// Len returns the number of selected indices.
func (s Selection) Len() int { return len(s.indices) }

// Max returns the highest selected index, or -1 when empty.
func (s Selection) Max() int {
	if len(s.indices) == 0 {
		return -1
	}
	return s.indices[len(s.indices)-1]
}

// Min returns the lowest selected index, or -1 when empty.
func (s Selection) Min() int {
	if len(s.indices) == 0 {
		return -1
	}
	return s.indices[0]
}
