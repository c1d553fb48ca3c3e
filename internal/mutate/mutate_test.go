package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfreq/gridpad/internal/profile"
)

// nested builds a profile with one tab whose first key carries a subpage, and
// that subpage's first key carries another.
func nested() profile.Profile {
	inner := profile.Page{Rows: 1, Keys: []profile.Key{{Label: []string{"DEEP"}}}}
	mid := profile.Page{Rows: 2, Keys: []profile.Key{
		{Label: []string{"MID"}, Page: &inner},
		{Label: []string{"SIB"}},
	}}
	return profile.Profile{
		ID:   "LOWW",
		Type: profile.TypeTabbed,
		Tabs: []profile.Tab{{
			Label: []string{"APP"},
			Page: profile.Page{Rows: 4, Keys: []profile.Key{
				{Label: []string{"ROOT"}, Page: &mid},
				{Label: []string{"ROOT2"}},
			}},
		}},
	}
}

func TestResolvePageEmptyPathIsTabPage(t *testing.T) {
	p := nested()
	pg, ok := ResolvePage(p, 0, nil)
	require.True(t, ok)
	assert.Equal(t, 4, pg.Rows)
}

func TestResolvePageFollowsSubpages(t *testing.T) {
	p := nested()
	pg, ok := ResolvePage(p, 0, Path{0, 0})
	require.True(t, ok)
	assert.Equal(t, []string{"DEEP"}, pg.Keys[0].Label)
}

func TestResolvePageAbsentOutcomes(t *testing.T) {
	p := nested()

	_, ok := ResolvePage(p, 3, nil)
	assert.False(t, ok, "tab out of range")

	_, ok = ResolvePage(p, 0, Path{9})
	assert.False(t, ok, "key index out of range")

	_, ok = ResolvePage(p, 0, Path{1})
	assert.False(t, ok, "key without subpage")
}

func TestMutatePageAtRewritesTarget(t *testing.T) {
	p := nested()
	out := MutatePageAt(p, 0, Path{0, 0}, func(pg profile.Page) profile.Page {
		pg.Rows = 7
		return pg
	})

	pg, ok := ResolvePage(out, 0, Path{0, 0})
	require.True(t, ok)
	assert.Equal(t, 7, pg.Rows)

	// The input document is untouched.
	orig, _ := ResolvePage(p, 0, Path{0, 0})
	assert.Equal(t, 1, orig.Rows)
}

func TestMutatePageAtSharesUntouchedSiblings(t *testing.T) {
	p := nested()
	out := MutatePageAt(p, 0, Path{0}, func(pg profile.Page) profile.Page {
		pg.Rows = 9
		return pg
	})

	// The sibling key off the rebuilt spine is reused, not copied.
	assert.Same(t, p.Tabs[0].Page.Keys[0].Page.Keys[0].Page, out.Tabs[0].Page.Keys[0].Page.Keys[0].Page)
}

func TestMutatePageAtUnresolvablePathIsNoop(t *testing.T) {
	p := nested()
	called := false
	out := MutatePageAt(p, 0, Path{5, 5}, func(pg profile.Page) profile.Page {
		called = true
		return pg
	})
	assert.False(t, called)
	assert.Equal(t, p, out)
}

func TestMutatePageAtRefusesClientPages(t *testing.T) {
	p := profile.Profile{
		ID:   "LOWW",
		Type: profile.TypeTabbed,
		Tabs: []profile.Tab{{Label: []string{"ATIS"}, Page: profile.Page{Rows: 1, ClientPage: map[string]any{"kind": "atis"}}}},
	}
	out := AddKey(p, 0, nil)
	assert.Equal(t, p, out)
}

func TestUpdateKeyAtRewritesOneKey(t *testing.T) {
	p := nested()
	out := UpdateKeyAt(p, 0, Path{0}, 1, func(k profile.Key) profile.Key {
		k.StationID = "LOWW_APP"
		return k
	})

	pg, _ := ResolvePage(out, 0, Path{0})
	assert.Equal(t, "LOWW_APP", pg.Keys[1].StationID)
	assert.Empty(t, pg.Keys[0].StationID)
}

func TestUpdateKeyAtOutOfRangeIsNoop(t *testing.T) {
	p := nested()
	out := UpdateKeyAt(p, 0, nil, 99, func(k profile.Key) profile.Key {
		k.StationID = "X"
		return k
	})
	assert.Equal(t, p, out)
}

func TestAddKeyAppendsEmptyKey(t *testing.T) {
	p := nested()
	out := AddKey(p, 0, nil)

	pg, _ := ResolvePage(out, 0, nil)
	require.Len(t, pg.Keys, 3)
	assert.Empty(t, pg.Keys[2].Label)
	assert.Nil(t, pg.Keys[2].Page)
}

func TestRemoveKeysUsesOriginalIndices(t *testing.T) {
	p := profile.Profile{
		ID:   "x",
		Type: profile.TypeTabbed,
		Tabs: []profile.Tab{{Label: []string{"T"}, Page: profile.Page{Rows: 1, Keys: []profile.Key{
			{Label: []string{"a"}}, {Label: []string{"b"}}, {Label: []string{"c"}}, {Label: []string{"d"}}, {Label: []string{"e"}},
		}}}},
	}
	out := RemoveKeys(p, 0, nil, []int{1, 3})

	pg, _ := ResolvePage(out, 0, nil)
	labels := make([]string, len(pg.Keys))
	for i, k := range pg.Keys {
		labels[i] = k.Label[0]
	}
	assert.Equal(t, []string{"a", "c", "e"}, labels)
}

func TestClearKeyResetsEverything(t *testing.T) {
	p := nested()
	out := ClearKey(p, 0, nil, 0)

	pg, _ := ResolvePage(out, 0, nil)
	assert.Empty(t, pg.Keys[0].Label)
	assert.Empty(t, pg.Keys[0].StationID)
	assert.Nil(t, pg.Keys[0].Page)
}

func TestSetRowsClamps(t *testing.T) {
	p := nested()
	out := SetRows(p, 0, nil, -2)
	pg, _ := ResolvePage(out, 0, nil)
	assert.Equal(t, 1, pg.Rows)
}

func TestSetKeyLabelNormalizesLines(t *testing.T) {
	p := nested()
	out := SetKeyLabel(p, 0, nil, 1, []string{" LOWW ", "APP", "", ""})

	pg, _ := ResolvePage(out, 0, nil)
	assert.Equal(t, []string{"LOWW", "APP"}, pg.Keys[1].Label)
}

func TestSetStationIDClearsOnWhitespace(t *testing.T) {
	p := nested()
	out := SetStationID(p, 0, nil, 0, "LOWW_APP")
	pg, _ := ResolvePage(out, 0, nil)
	assert.Equal(t, "LOWW_APP", pg.Keys[0].StationID)

	out = SetStationID(out, 0, nil, 0, "   ")
	pg, _ = ResolvePage(out, 0, nil)
	assert.Empty(t, pg.Keys[0].StationID)
}

func TestAttachSubpageOnlyWhenAbsent(t *testing.T) {
	p := nested()

	out := AttachSubpage(p, 0, nil, 1, 3)
	pg, _ := ResolvePage(out, 0, Path{1})
	assert.Equal(t, 3, pg.Rows)
	assert.Empty(t, pg.Keys)

	// Key 0 already has a subpage; it is kept.
	out = AttachSubpage(p, 0, nil, 0, 9)
	pg, _ = ResolvePage(out, 0, Path{0})
	assert.Equal(t, 2, pg.Rows)
}

func TestDetachSubpageDropsSubtree(t *testing.T) {
	p := nested()
	out := DetachSubpage(p, 0, nil, 0)

	_, ok := ResolvePage(out, 0, Path{0})
	assert.False(t, ok)
}
