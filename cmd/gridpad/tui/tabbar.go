package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skyfreq/gridpad/internal/mutate"
	"github.com/skyfreq/gridpad/internal/profile"
)

// TabBar renders the profile's tabs along the top of the editor, plus a
// breadcrumb when the view is inside a subpage.
type TabBar struct {
	width int
}

// SetWidth sets the available horizontal space.
func (t *TabBar) SetWidth(w int) {
	t.width = w
}

// tabTitle flattens a tab label to the single line shown in the bar.
func tabTitle(tab profile.Tab, index int) string {
	parts := make([]string, 0, len(tab.Label))
	for _, l := range tab.Label {
		if l != "" {
			parts = append(parts, l)
		}
	}
	if len(parts) == 0 {
		return "Tab " + strconv.Itoa(index+1)
	}
	return strings.Join(parts, " ")
}

// View renders the bar for the given profile, active tab, and subpage path.
func (t TabBar) View(p profile.Profile, active int, path mutate.Path) string {
	parts := make([]string, 0, len(p.Tabs)+1)
	for i, tab := range p.Tabs {
		title := tabTitle(tab, i)
		if i == active {
			parts = append(parts, ActiveTabStyle.Render(title))
		} else {
			parts = append(parts, InactiveTabStyle.Render(title))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	if len(path) > 0 {
		crumb := "▸ subpage"
		if len(path) > 1 {
			crumb = "▸ subpage ×" + strconv.Itoa(len(path))
		}
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, SubpageCrumbStyle.Render(crumb))
	}

	if t.width > 0 && lipgloss.Width(bar) > t.width {
		bar = lipgloss.NewStyle().MaxWidth(t.width).Render(bar)
	}
	return bar
}
