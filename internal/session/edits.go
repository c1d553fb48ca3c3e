package session

import (
	"github.com/skyfreq/gridpad/internal/clipboard"
	"github.com/skyfreq/gridpad/internal/mutate"
	"github.com/skyfreq/gridpad/internal/profile"
)

// SetTab switches the view to another tab, leaving any subpage and clearing
// the selection.
func (s *Session) SetTab(i int) {
	if i < 0 || i >= len(s.Profile().Tabs) || i == s.tab {
		return
	}
	s.tab = i
	s.path = nil
	s.sel.Clear()
}

// EnterSubpage descends into the subpage of the key at idx on the current
// page. Keys without a subpage are a no-op.
func (s *Session) EnterSubpage(idx int) bool {
	pg, ok := s.Page()
	if !ok || pg.IsClientPage() || idx < 0 || idx >= len(pg.Keys) || pg.Keys[idx].Page == nil {
		return false
	}
	s.path = append(s.path.Clone(), idx)
	s.sel.Clear()
	return true
}

// LeaveSubpage pops one level back toward the tab's root page.
func (s *Session) LeaveSubpage() bool {
	if len(s.path) == 0 {
		return false
	}
	s.path = s.path[:len(s.path)-1].Clone()
	s.sel.Clear()
	return true
}

// Select applies one click on key idx. add toggles membership, rng extends
// from the anchor; a plain click replaces the selection.
func (s *Session) Select(idx int, add, rng bool) {
	pg, ok := s.Page()
	if !ok || pg.IsClientPage() || idx < 0 || idx >= len(pg.Keys) {
		return
	}
	switch {
	case rng:
		s.sel.Range(idx)
	case add:
		s.sel.Toggle(idx)
	default:
		s.sel.Click(idx)
	}
	s.sel.ClampTo(len(pg.Keys))
}

// SelectNone clears the selection.
func (s *Session) SelectNone() { s.sel.Clear() }

// AddKey appends an empty key to the current page and selects it.
func (s *Session) AddKey() {
	if !s.Editable() {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.AddKey(p, s.tab, s.path)
	})
	pg, _ := s.Page()
	s.sel.Click(len(pg.Keys) - 1)
}

// RemoveSelected deletes every selected key.
func (s *Session) RemoveSelected() {
	if !s.Editable() || s.sel.Empty() {
		return
	}
	indices := s.sel.Indices()
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.RemoveKeys(p, s.tab, s.path, indices)
	})
	s.sel.Clear()
}

// ClearSelected resets every selected key to an empty cell.
func (s *Session) ClearSelected() {
	if !s.Editable() || s.sel.Empty() {
		return
	}
	indices := s.sel.Indices()
	s.apply(func(p profile.Profile) profile.Profile {
		for _, i := range indices {
			p = mutate.ClearKey(p, s.tab, s.path, i)
		}
		return p
	})
}

// SetRows changes the current page's row count.
func (s *Session) SetRows(rows int) {
	pg, ok := s.Page()
	if !ok || pg.IsClientPage() || rows < 1 || rows == pg.Rows {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.SetRows(p, s.tab, s.path, rows)
	})
}

// SetKeyLabel rewrites the label lines of one key on the current page.
func (s *Session) SetKeyLabel(idx int, lines []string) {
	if !s.Editable() {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.SetKeyLabel(p, s.tab, s.path, idx, lines)
	})
}

// SetStationID binds or clears the station of one key on the current page.
func (s *Session) SetStationID(idx int, id string) {
	if !s.Editable() {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.SetStationID(p, s.tab, s.path, idx, id)
	})
}

// AttachSubpage gives the key at idx a fresh subpage with the given rows.
func (s *Session) AttachSubpage(idx, rows int) {
	if !s.Editable() {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.AttachSubpage(p, s.tab, s.path, idx, rows)
	})
}

// DetachSubpage removes the subpage (and its subtree) of the key at idx.
func (s *Session) DetachSubpage(idx int) {
	if !s.Editable() {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.DetachSubpage(p, s.tab, s.path, idx)
	})
}

// SetID renames the profile.
func (s *Session) SetID(id string) {
	if id == s.Profile().ID {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.SetID(p, id)
	})
}

// AddTab appends a tab with the given rows and switches to it.
func (s *Session) AddTab(rows int) {
	var idx int
	s.apply(func(p profile.Profile) profile.Profile {
		p, idx = mutate.AddTab(p, rows)
		return p
	})
	s.tab = idx
	s.path = nil
	s.sel.Clear()
}

// RemoveTab deletes the active tab unless it is the last one.
func (s *Session) RemoveTab() {
	if len(s.Profile().Tabs) <= 1 {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.RemoveTab(p, s.tab)
	})
	s.path = nil
	s.sel.Clear()
	s.revalidate()
}

// RenameTab relabels the active tab.
func (s *Session) RenameTab(lines []string) {
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.RenameTab(p, s.tab, lines)
	})
}

// MoveTab shifts the active tab by delta positions and follows it.
func (s *Session) MoveTab(delta int) {
	to := s.tab + delta
	if to < 0 || to >= len(s.Profile().Tabs) || delta == 0 {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return mutate.MoveTab(p, s.tab, delta)
	})
	s.tab = to
}

// Copy snapshots the selected keys into the clipboard.
func (s *Session) Copy() {
	pg, ok := s.Page()
	if !ok || pg.IsClientPage() || s.sel.Empty() {
		return
	}
	s.clip = clipboard.Copy(pg.Keys, s.sel)
}

// Cut copies the selected keys and removes them from the page.
func (s *Session) Cut() {
	pg, ok := s.Page()
	if !ok || pg.IsClientPage() || s.sel.Empty() {
		return
	}
	remaining, clip := clipboard.Cut(pg.Keys, s.sel)
	s.clip = clip
	s.apply(func(p profile.Profile) profile.Profile {
		return replaceKeys(p, s.tab, s.path, remaining)
	})
	s.sel.Clear()
}

// Paste inserts the clipboard block after the highest selected index and
// selects it. Cut-sourced clipboards are consumed.
func (s *Session) Paste() {
	pg, ok := s.Page()
	if !ok || pg.IsClientPage() || s.clip.Empty() {
		return
	}
	out, pasted, next, ok := clipboard.Paste(pg.Keys, s.sel, s.clip)
	if !ok {
		return
	}
	s.clip = next
	s.apply(func(p profile.Profile) profile.Profile {
		return replaceKeys(p, s.tab, s.path, out)
	})
	s.sel = pasted
	s.sel.ClampTo(len(out))
}

// MoveSelected shifts the selection one slot up/down (dy ±1) or one grid
// column left/right (dx ±1). Refused moves change nothing.
func (s *Session) MoveSelected(dx, dy int) {
	pg, ok := s.Page()
	if !ok || pg.IsClientPage() || s.sel.Empty() {
		return
	}
	var (
		out   []profile.Key
		moved clipboard.Selection
	)
	switch {
	case dy != 0:
		out, moved, ok = clipboard.MoveVertical(pg.Keys, s.sel, dy)
	case dx != 0:
		out, moved, ok = clipboard.MoveHorizontal(pg.Keys, s.sel, pg.Rows, dx)
	default:
		return
	}
	if !ok {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return replaceKeys(p, s.tab, s.path, out)
	})
	s.sel = moved
}

// SwapSelected exchanges the two selected keys.
func (s *Session) SwapSelected() {
	pg, ok := s.Page()
	if !ok || pg.IsClientPage() {
		return
	}
	out, ok := clipboard.SwapPair(pg.Keys, s.sel)
	if !ok {
		return
	}
	s.apply(func(p profile.Profile) profile.Profile {
		return replaceKeys(p, s.tab, s.path, out)
	})
}

func replaceKeys(p profile.Profile, tab int, path mutate.Path, keys []profile.Key) profile.Profile {
	return mutate.MutatePageAt(p, tab, path, func(pg profile.Page) profile.Page {
		pg.Keys = keys
		return pg
	})
}
