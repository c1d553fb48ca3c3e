// Package mutate applies pure, copy-on-write edits to a profile document. A
// page anywhere in the subpage tree is addressed by a tab index plus a path of
// key indices; every structural edit funnels through MutatePageAt so the
// spine-rebuilding logic lives in one place. Paths that no longer resolve
// (stale selections, deleted keys) make the operation a silent no-op, never an
// error.
package mutate

import (
	"github.com/skyfreq/gridpad/internal/profile"
)

// Path is the descent from a tab's root page through successive subpages. The
// empty path addresses the tab's own page.
type Path []int

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// ResolvePage follows path from the tab's root page and returns the page it
// lands on. ok is false when the tab index or any path element is out of
// range, or a traversed key has no subpage; callers treat that as "nothing to
// do".
func ResolvePage(p profile.Profile, tab int, path Path) (profile.Page, bool) {
	if tab < 0 || tab >= len(p.Tabs) {
		return profile.Page{}, false
	}
	pg := p.Tabs[tab].Page
	for _, idx := range path {
		if pg.IsClientPage() || idx < 0 || idx >= len(pg.Keys) || pg.Keys[idx].Page == nil {
			return profile.Page{}, false
		}
		pg = *pg.Keys[idx].Page
	}
	return pg, true
}

// MutatePageAt returns a new profile with the page at path replaced by
// transform(page). The spine from the root to the target is rebuilt;
// everything off it is shared with the input. Client pages are never handed
// to transform. An unresolvable path returns the input unchanged.
func MutatePageAt(p profile.Profile, tab int, path Path, transform func(profile.Page) profile.Page) profile.Profile {
	if tab < 0 || tab >= len(p.Tabs) {
		return p
	}
	next, ok := mutatePage(p.Tabs[tab].Page, path, transform)
	if !ok {
		return p
	}
	out := p
	out.Tabs = make([]profile.Tab, len(p.Tabs))
	copy(out.Tabs, p.Tabs)
	out.Tabs[tab].Page = next
	return out
}

func mutatePage(pg profile.Page, path Path, transform func(profile.Page) profile.Page) (profile.Page, bool) {
	if pg.IsClientPage() {
		return pg, false
	}
	if len(path) == 0 {
		return transform(pg), true
	}
	idx := path[0]
	if idx < 0 || idx >= len(pg.Keys) || pg.Keys[idx].Page == nil {
		return pg, false
	}
	sub, ok := mutatePage(*pg.Keys[idx].Page, path[1:], transform)
	if !ok {
		return pg, false
	}
	keys := make([]profile.Key, len(pg.Keys))
	copy(keys, pg.Keys)
	keys[idx].Page = &sub
	pg.Keys = keys
	return pg, true
}

// UpdateKeyAt returns a new profile with one key of the page at path rewritten
// by updater. Out-of-range key indices are silent no-ops.
func UpdateKeyAt(p profile.Profile, tab int, path Path, keyIdx int, updater func(profile.Key) profile.Key) profile.Profile {
	return MutatePageAt(p, tab, path, func(pg profile.Page) profile.Page {
		if keyIdx < 0 || keyIdx >= len(pg.Keys) {
			return pg
		}
		keys := make([]profile.Key, len(pg.Keys))
		copy(keys, pg.Keys)
		keys[keyIdx] = updater(keys[keyIdx])
		pg.Keys = keys
		return pg
	})
}

// AddKey appends an empty key to the page at path.
func AddKey(p profile.Profile, tab int, path Path) profile.Profile {
	return MutatePageAt(p, tab, path, func(pg profile.Page) profile.Page {
		keys := make([]profile.Key, len(pg.Keys), len(pg.Keys)+1)
		copy(keys, pg.Keys)
		pg.Keys = append(keys, profile.Key{Label: []string{}})
		return pg
	})
}

// InsertKeys inserts keys as a contiguous block at index at, clamped into
// [0, len(keys)].
func InsertKeys(p profile.Profile, tab int, path Path, at int, ins []profile.Key) profile.Profile {
	if len(ins) == 0 {
		return p
	}
	return MutatePageAt(p, tab, path, func(pg profile.Page) profile.Page {
		if at < 0 {
			at = 0
		}
		if at > len(pg.Keys) {
			at = len(pg.Keys)
		}
		keys := make([]profile.Key, 0, len(pg.Keys)+len(ins))
		keys = append(keys, pg.Keys[:at]...)
		keys = append(keys, ins...)
		keys = append(keys, pg.Keys[at:]...)
		pg.Keys = keys
		return pg
	})
}

// RemoveKeys deletes the keys at the given original indices. Indices are
// interpreted against the page as it was before any removal, so sparse sets
// delete exactly the keys they name.
func RemoveKeys(p profile.Profile, tab int, path Path, indices []int) profile.Profile {
	if len(indices) == 0 {
		return p
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	return MutatePageAt(p, tab, path, func(pg profile.Page) profile.Page {
		keys := make([]profile.Key, 0, len(pg.Keys))
		for i, k := range pg.Keys {
			if !drop[i] {
				keys = append(keys, k)
			}
		}
		pg.Keys = keys
		return pg
	})
}

// ClearKey resets a key to an empty label with no station and no subpage.
func ClearKey(p profile.Profile, tab int, path Path, keyIdx int) profile.Profile {
	return UpdateKeyAt(p, tab, path, keyIdx, func(profile.Key) profile.Key {
		return profile.Key{Label: []string{}}
	})
}

// SetRows changes the row count of the page at path, clamped to >= 1.
func SetRows(p profile.Profile, tab int, path Path, rows int) profile.Profile {
	if rows < 1 {
		rows = 1
	}
	return MutatePageAt(p, tab, path, func(pg profile.Page) profile.Page {
		pg.Rows = rows
		return pg
	})
}

// SetKeyLabel replaces a key's label lines, normalized to the storage form.
func SetKeyLabel(p profile.Profile, tab int, path Path, keyIdx int, lines []string) profile.Profile {
	return UpdateKeyAt(p, tab, path, keyIdx, func(k profile.Key) profile.Key {
		k.Label = lines
		return profile.NormalizeKey(k)
	})
}

// SetStationID binds or clears a key's station. Whitespace-only ids clear.
func SetStationID(p profile.Profile, tab int, path Path, keyIdx int, id string) profile.Profile {
	return UpdateKeyAt(p, tab, path, keyIdx, func(k profile.Key) profile.Key {
		k.StationID = id
		return profile.NormalizeKey(k)
	})
}

// AttachSubpage gives a key a fresh empty subpage with the given row count.
// Keys that already have a subpage keep it.
func AttachSubpage(p profile.Profile, tab int, path Path, keyIdx, rows int) profile.Profile {
	if rows < 1 {
		rows = 1
	}
	return UpdateKeyAt(p, tab, path, keyIdx, func(k profile.Key) profile.Key {
		if k.Page != nil {
			return k
		}
		k.Page = &profile.Page{Rows: rows, Keys: []profile.Key{}}
		return k
	})
}

// DetachSubpage removes a key's subpage and everything below it.
func DetachSubpage(p profile.Profile, tab int, path Path, keyIdx int) profile.Profile {
	return UpdateKeyAt(p, tab, path, keyIdx, func(k profile.Key) profile.Key {
		k.Page = nil
		return k
	})
}
