// Package profile defines the Tabbed keypad profile document: a profile holds
// ordered tabs, each tab a page, each page a column-major grid of keys. A key
// may nest a subpage, so pages form a tree addressed by key indices. The
// package also owns loading (parse → validate → normalize) and the canonical
// serialization of the document.
package profile

import (
	"fmt"
	"strings"

	"github.com/skyfreq/gridpad/internal/canonjson"
)

// TypeTabbed is the only supported value of the top-level "type" discriminant.
const TypeTabbed = "Tabbed"

// MaxLabelLines is the number of display lines a tab or key label may carry.
const MaxLabelLines = 3

// Profile is the root document for one keypad layout.
type Profile struct {
	ID   string
	Type string
	Tabs []Tab
}

// Tab is one top-level page of keys, reachable from the client's tab bar.
type Tab struct {
	Label []string
	Page  Page
}

// Page is a grid of keys, or a dynamic client page the editor must not touch.
// ClientPage holds the opaque configuration as a canonjson value tree; when it
// is non-nil the page is read-only and Keys is nil.
type Page struct {
	Rows       int
	Keys       []Key
	ClientPage any
}

// Key is one grid cell: up to three label lines, an optional station binding,
// and an optional nested subpage.
type Key struct {
	Label     []string
	StationID string
	Page      *Page
}

// Default returns the profile a fresh editor session starts from: one tab
// labeled "Tab 1" with an empty four-row page.
func Default() Profile {
	return Profile{
		ID:   "new-profile",
		Type: TypeTabbed,
		Tabs: []Tab{{
			Label: []string{"Tab 1"},
			Page:  Page{Rows: 4, Keys: []Key{}},
		}},
	}
}

// IsClientPage reports whether the page is an opaque client page.
func (pg Page) IsClientPage() bool {
	return pg.ClientPage != nil
}

// Columns returns the number of grid columns: ceil(len(keys)/rows), filled
// column-major.
func (pg Page) Columns() int {
	if pg.Rows < 1 || len(pg.Keys) == 0 {
		return 0
	}
	return (len(pg.Keys) + pg.Rows - 1) / pg.Rows
}

// Filename returns the default export filename for the profile.
func (p Profile) Filename() string {
	name := strings.TrimSpace(p.ID)
	if name == "" {
		name = "profile"
	}
	return name + ".json"
}

// Clone returns a deep copy of the profile. Client page trees are copied too,
// so no clone shares structure with the original.
func (p Profile) Clone() Profile {
	out := p
	out.Tabs = make([]Tab, len(p.Tabs))
	for i, t := range p.Tabs {
		out.Tabs[i] = t.clone()
	}
	return out
}

func (t Tab) clone() Tab {
	out := t
	out.Label = cloneStrings(t.Label)
	out.Page = t.Page.Clone()
	return out
}

// Clone returns a deep copy of the page.
func (pg Page) Clone() Page {
	out := pg
	if pg.ClientPage != nil {
		out.ClientPage = canonjson.Clone(pg.ClientPage)
		out.Keys = nil
		return out
	}
	out.Keys = CloneKeys(pg.Keys)
	return out
}

// Clone returns a deep copy of the key, including any subpage tree.
func (k Key) Clone() Key {
	out := k
	out.Label = cloneStrings(k.Label)
	if k.Page != nil {
		sub := k.Page.Clone()
		out.Page = &sub
	}
	return out
}

// CloneKeys deep-copies a key slice. The result is never nil.
func CloneKeys(keys []Key) []Key {
	out := make([]Key, len(keys))
	for i, k := range keys {
		out[i] = k.Clone()
	}
	return out
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Load parses raw JSON bytes into a normalized Profile. Parse failures and
// validation failures abort the load; the error from a validation failure is a
// *ValidationError carrying one issue per violated rule.
func Load(data []byte) (Profile, error) {
	raw, err := canonjson.DecodeOrdered(data)
	if err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	if issues := Validate(raw); len(issues) > 0 {
		return Profile{}, &ValidationError{Issues: issues}
	}
	return FromRaw(raw), nil
}
