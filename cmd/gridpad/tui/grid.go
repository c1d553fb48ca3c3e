package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skyfreq/gridpad/internal/profile"
	"github.com/skyfreq/gridpad/internal/stations"
)

// Grid renders the key cells of one page, column-major: index = col*rows +
// row, so a page with 6 keys and 2 rows fills three columns of two.
type Grid struct {
	stations *stations.Index
	width    int
}

// NewGrid creates a grid renderer backed by the station dataset (used only
// for the unknown-station advisory coloring).
func NewGrid(idx *stations.Index) Grid {
	return Grid{stations: idx}
}

// SetWidth sets the available horizontal space.
func (g *Grid) SetWidth(w int) {
	g.width = w
}

// CellAt maps a grid position to a key index, or -1 for an empty slot.
func CellAt(pg profile.Page, row, col int) int {
	idx := col*pg.Rows + row
	if row < 0 || row >= pg.Rows || idx >= len(pg.Keys) {
		return -1
	}
	return idx
}

// PositionOf maps a key index to its grid position.
func PositionOf(pg profile.Page, idx int) (row, col int) {
	if pg.Rows < 1 {
		return 0, 0
	}
	return idx % pg.Rows, idx / pg.Rows
}

// View renders the page. cursor is the focused key index; selected reports
// which indices are in the selection.
func (g Grid) View(pg profile.Page, cursor int, selected func(int) bool) string {
	if pg.IsClientPage() {
		return ClientPageStyle.Render("client page — managed by the client, read-only here")
	}
	if len(pg.Keys) == 0 {
		return ClientPageStyle.Render("empty page — press a to add a key")
	}

	cols := pg.Columns()
	lines := make([]string, 0, pg.Rows)
	for r := 0; r < pg.Rows; r++ {
		cells := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			idx := CellAt(pg, r, c)
			if idx < 0 {
				cells = append(cells, strings.Repeat(" ", CellWidth+2))
				continue
			}
			cells = append(cells, g.cell(pg.Keys[idx], idx == cursor, selected(idx)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if g.width > 0 && lipgloss.Width(out) > g.width {
		out = lipgloss.NewStyle().MaxWidth(g.width).Render(out)
	}
	return out
}

func (g Grid) cell(k profile.Key, cursor, selected bool) string {
	lines := make([]string, 0, CellHeight)
	for i := 0; i < profile.MaxLabelLines; i++ {
		if i < len(k.Label) {
			lines = append(lines, k.Label[i])
		} else {
			lines = append(lines, "")
		}
	}

	body := strings.Join(lines[:2], "\n") + "\n" + g.bottomLine(k, lines[2])

	style := CellStyle
	switch {
	case cursor:
		style = CursorCellStyle
	case selected:
		style = SelectedCellStyle
	}
	return style.Render(body)
}

// bottomLine shows the third label line, decorated with the station advisory
// and a subpage marker.
func (g Grid) bottomLine(k profile.Key, third string) string {
	line := third
	if k.StationID != "" {
		style := StationUnknownStyle
		if g.stations != nil && g.stations.Known(k.StationID) {
			style = StationKnownStyle
		}
		line = style.Render("•") + line
	}
	if k.Page != nil {
		line += SubpageMarkerStyle.Render("▸")
	}
	return line
}
