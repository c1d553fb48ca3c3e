package mutate

import (
	"fmt"
	"strings"

	"github.com/skyfreq/gridpad/internal/profile"
)

// AddTab appends a new tab with an empty page of the given row count and
// returns the new profile plus the index of the added tab.
func AddTab(p profile.Profile, rows int) (profile.Profile, int) {
	if rows < 1 {
		rows = 1
	}
	out := p
	out.Tabs = make([]profile.Tab, len(p.Tabs), len(p.Tabs)+1)
	copy(out.Tabs, p.Tabs)
	out.Tabs = append(out.Tabs, profile.Tab{
		Label: []string{fmt.Sprintf("Tab %d", len(p.Tabs)+1)},
		Page:  profile.Page{Rows: rows, Keys: []profile.Key{}},
	})
	return out, len(out.Tabs) - 1
}

// RemoveTab deletes the tab at index. The last remaining tab is never
// removed; the profile must always keep at least one.
func RemoveTab(p profile.Profile, tab int) profile.Profile {
	if tab < 0 || tab >= len(p.Tabs) || len(p.Tabs) <= 1 {
		return p
	}
	out := p
	out.Tabs = make([]profile.Tab, 0, len(p.Tabs)-1)
	out.Tabs = append(out.Tabs, p.Tabs[:tab]...)
	out.Tabs = append(out.Tabs, p.Tabs[tab+1:]...)
	return out
}

// RenameTab replaces a tab's label lines, normalized to the storage form.
func RenameTab(p profile.Profile, tab int, lines []string) profile.Profile {
	if tab < 0 || tab >= len(p.Tabs) {
		return p
	}
	out := p
	out.Tabs = make([]profile.Tab, len(p.Tabs))
	copy(out.Tabs, p.Tabs)
	out.Tabs[tab].Label = profile.NormalizeLines(lines)
	return out
}

// MoveTab shifts the tab at index by delta positions, clamped to the tab bar.
func MoveTab(p profile.Profile, tab, delta int) profile.Profile {
	to := tab + delta
	if tab < 0 || tab >= len(p.Tabs) || to < 0 || to >= len(p.Tabs) || delta == 0 {
		return p
	}
	out := p
	out.Tabs = make([]profile.Tab, len(p.Tabs))
	copy(out.Tabs, p.Tabs)
	moved := out.Tabs[tab]
	if to > tab {
		copy(out.Tabs[tab:], out.Tabs[tab+1:to+1])
	} else {
		copy(out.Tabs[to+1:], out.Tabs[to:tab])
	}
	out.Tabs[to] = moved
	return out
}

// SetID renames the profile, trimming surrounding whitespace.
func SetID(p profile.Profile, id string) profile.Profile {
	out := p
	out.ID = strings.TrimSpace(id)
	return out
}
