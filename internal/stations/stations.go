// Package stations loads the read-only station identifier dataset and answers
// lookups for the editor: exact matches for the advisory "unknown station"
// warning, and prefix/token suggestions for autocomplete. Nothing here ever
// touches the profile document.
package stations

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Station is one entry of the dataset.
type Station struct {
	ID           string `json:"id"`
	FIR          string `json:"fir"`
	ParentID     string `json:"parent_id,omitempty"`
	ControlledBy string `json:"controlled_by,omitempty"`
}

// Index answers lookups over a loaded dataset.
type Index struct {
	byID  map[string]Station
	order []string // ids sorted for stable suggestion output
}

// Load reads a JSON dataset file: an array of station objects.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stations dataset: %w", err)
	}
	return Parse(data)
}

// Parse builds an index from raw dataset bytes.
func Parse(data []byte) (*Index, error) {
	var list []Station
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing stations dataset: %w", err)
	}
	return NewIndex(list), nil
}

// NewIndex builds an index from already-decoded stations. Entries without an
// id are dropped; duplicate ids keep the last entry.
func NewIndex(list []Station) *Index {
	idx := &Index{byID: make(map[string]Station, len(list))}
	for _, st := range list {
		id := strings.TrimSpace(st.ID)
		if id == "" {
			continue
		}
		st.ID = id
		if _, seen := idx.byID[id]; !seen {
			idx.order = append(idx.order, id)
		}
		idx.byID[id] = st
	}
	sort.Strings(idx.order)
	return idx
}

// Len returns the number of stations indexed.
func (x *Index) Len() int { return len(x.byID) }

// Lookup returns the station with exactly the given id.
func (x *Index) Lookup(id string) (Station, bool) {
	st, ok := x.byID[strings.TrimSpace(id)]
	return st, ok
}

// Known reports whether id matches a dataset entry exactly. The mismatch
// advisory in the editor is driven by this and nothing fuzzier: a key either
// names a real station or it is flagged.
func (x *Index) Known(id string) bool {
	_, ok := x.Lookup(id)
	return ok
}

// Suggest returns up to limit station ids for an autocomplete query. A
// station matches when its id, or any underscore-separated token of it,
// starts with the query (case-insensitive). Results come back in id order.
func (x *Index) Suggest(query string, limit int) []string {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}
	var out []string
	for _, id := range x.order {
		if matchesQuery(id, q) {
			out = append(out, id)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func matchesQuery(id, q string) bool {
	upper := strings.ToUpper(id)
	if strings.HasPrefix(upper, q) {
		return true
	}
	for _, tok := range strings.Split(upper, "_") {
		if strings.HasPrefix(tok, q) {
			return true
		}
	}
	return false
}
