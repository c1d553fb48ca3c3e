package profile

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/skyfreq/gridpad/internal/canonjson"
)

// FromRaw converts a validated JSON value into the canonical in-memory
// Profile. It is deliberately permissive below the levels Validate checks:
// malformed subpage data degrades to empty or defaulted values rather than
// failing. The result is already normalized; Normalize(FromRaw(x)) equals
// FromRaw(x).
func FromRaw(raw any) Profile {
	root, ok := raw.(canonjson.Object)
	if !ok {
		return Default()
	}

	p := Profile{Type: TypeTabbed}

	if id, _ := root.Get("id"); id != nil {
		p.ID = strings.TrimSpace(stringify(id))
	}

	tabsRaw, _ := root.Get("tabs")
	tabs, _ := tabsRaw.([]any)
	for _, tabRaw := range tabs {
		tab, ok := tabRaw.(canonjson.Object)
		if !ok {
			continue
		}
		label, _ := tab.Get("label")
		pageRaw, _ := tab.Get("page")
		p.Tabs = append(p.Tabs, Tab{
			Label: normalizeLabel(label),
			Page:  pageFromRaw(pageRaw),
		})
	}

	if len(p.Tabs) == 0 {
		p.Tabs = Default().Tabs
	}
	return p
}

func pageFromRaw(raw any) Page {
	obj, ok := raw.(canonjson.Object)
	if !ok {
		return Page{Rows: 1, Keys: []Key{}}
	}

	rowsRaw, _ := obj.Get("rows")
	pg := Page{Rows: clampRows(rowsRaw)}

	// client_page wins over keys and passes through untouched.
	if cp, _ := obj.Get("client_page"); cp != nil {
		pg.ClientPage = cp
		return pg
	}

	keysRaw, _ := obj.Get("keys")
	keys, _ := keysRaw.([]any)
	pg.Keys = make([]Key, 0, len(keys))
	for _, keyRaw := range keys {
		pg.Keys = append(pg.Keys, keyFromRaw(keyRaw))
	}
	return pg
}

func keyFromRaw(raw any) Key {
	obj, ok := raw.(canonjson.Object)
	if !ok {
		return Key{Label: []string{}}
	}

	label, _ := obj.Get("label")
	k := Key{Label: normalizeLabel(label)}

	if sid, _ := obj.Get("station_id"); sid != nil {
		s := stringify(sid)
		if strings.TrimSpace(s) != "" {
			k.StationID = s
		}
	}

	if sub, _ := obj.Get("page"); sub != nil {
		if _, ok := sub.(canonjson.Object); ok {
			pg := pageFromRaw(sub)
			k.Page = &pg
		}
	}

	return k
}

// Normalize re-establishes every model invariant on a typed Profile: trimmed
// id and labels, labels truncated to three lines with trailing empty lines
// dropped, rows clamped to >= 1, empty station ids removed, keys cleared on
// client pages. It is idempotent and recurses into every subpage.
func Normalize(p Profile) Profile {
	out := p
	out.ID = strings.TrimSpace(p.ID)
	out.Type = TypeTabbed
	out.Tabs = make([]Tab, len(p.Tabs))
	for i, t := range p.Tabs {
		out.Tabs[i] = Tab{
			Label: NormalizeLines(t.Label),
			Page:  NormalizePage(t.Page),
		}
	}
	if len(out.Tabs) == 0 {
		out.Tabs = Default().Tabs
	}
	return out
}

// NormalizePage applies the page-level invariants, recursing into subpages.
func NormalizePage(pg Page) Page {
	out := pg
	if out.Rows < 1 {
		out.Rows = 1
	}
	if pg.ClientPage != nil {
		out.Keys = nil
		return out
	}
	out.Keys = make([]Key, len(pg.Keys))
	for i, k := range pg.Keys {
		out.Keys[i] = NormalizeKey(k)
	}
	return out
}

// NormalizeKey applies the key-level invariants, recursing into any subpage.
func NormalizeKey(k Key) Key {
	out := k
	out.Label = NormalizeLines(k.Label)
	if strings.TrimSpace(out.StationID) == "" {
		out.StationID = ""
	}
	if k.Page != nil {
		sub := NormalizePage(*k.Page)
		out.Page = &sub
	}
	return out
}

// normalizeLabel coerces a raw label value into canonical lines. A legacy
// single-string label becomes a one-element array.
func normalizeLabel(raw any) []string {
	switch l := raw.(type) {
	case string:
		return NormalizeLines([]string{l})
	case []any:
		lines := make([]string, 0, len(l))
		for _, e := range l {
			lines = append(lines, stringify(e))
		}
		return NormalizeLines(lines)
	default:
		return []string{}
	}
}

// NormalizeLines trims each line, truncates to MaxLabelLines, and drops
// trailing empty lines. Empty lines in the middle are kept; only the tail is
// stripped so storage never carries right-padding.
func NormalizeLines(lines []string) []string {
	if len(lines) > MaxLabelLines {
		lines = lines[:MaxLabelLines]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// clampRows coerces a raw rows value to max(1, floor(rows)). Anything
// non-numeric yields 1.
func clampRows(raw any) int {
	n, ok := numberValue(raw)
	if !ok {
		return 1
	}
	rows := int(math.Floor(n))
	if rows < 1 {
		return 1
	}
	return rows
}

// numberValue extracts a float from any numeric representation a decoded
// document can carry.
func numberValue(raw any) (float64, bool) {
	switch n := raw.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// stringify renders a raw JSON scalar as its display string. Composite values
// and nulls become empty strings.
func stringify(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
