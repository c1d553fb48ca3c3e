package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyfreq/gridpad/internal/profile"
	"github.com/skyfreq/gridpad/internal/stations"
)

func gridPage(rows, keys int) profile.Page {
	pg := profile.Page{Rows: rows, Keys: make([]profile.Key, keys)}
	for i := range pg.Keys {
		pg.Keys[i].Label = []string{}
	}
	return pg
}

func TestCellAtColumnMajor(t *testing.T) {
	pg := gridPage(2, 6)

	// Keys fill column by column: col 0 holds 0,1; col 1 holds 2,3; col 2 holds 4,5.
	assert.Equal(t, 0, CellAt(pg, 0, 0))
	assert.Equal(t, 1, CellAt(pg, 1, 0))
	assert.Equal(t, 2, CellAt(pg, 0, 1))
	assert.Equal(t, 5, CellAt(pg, 1, 2))
}

func TestCellAtOutOfRange(t *testing.T) {
	pg := gridPage(2, 5)

	assert.Equal(t, -1, CellAt(pg, 1, 2)) // slot 5 is past the last key
	assert.Equal(t, -1, CellAt(pg, 2, 0)) // row beyond the grid
	assert.Equal(t, -1, CellAt(pg, -1, 0))
}

func TestPositionOfRoundTrips(t *testing.T) {
	pg := gridPage(3, 8)

	for i := range pg.Keys {
		row, col := PositionOf(pg, i)
		assert.Equal(t, i, CellAt(pg, row, col))
	}
}

func TestGridViewClientPage(t *testing.T) {
	g := NewGrid(stations.NewIndex(nil))
	pg := profile.Page{Rows: 2, ClientPage: map[string]any{"kind": "metar"}}

	out := g.View(pg, 0, func(int) bool { return false })
	assert.Contains(t, out, "client page")
}

func TestGridViewShowsLabels(t *testing.T) {
	g := NewGrid(stations.NewIndex(nil))
	pg := profile.Page{Rows: 1, Keys: []profile.Key{
		{Label: []string{"GND", "121.9"}},
	}}

	out := g.View(pg, 0, func(int) bool { return false })
	assert.Contains(t, out, "GND")
	assert.Contains(t, out, "121.9")
}

func TestGridViewSubpageMarker(t *testing.T) {
	g := NewGrid(stations.NewIndex(nil))
	pg := profile.Page{Rows: 1, Keys: []profile.Key{
		{Label: []string{"APP"}, Page: &profile.Page{Rows: 1, Keys: []profile.Key{}}},
	}}

	out := g.View(pg, 0, func(int) bool { return false })
	assert.True(t, strings.Contains(out, "▸"))
}
