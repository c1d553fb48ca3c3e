package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with document state and keyboard shortcuts.
type StatusBar struct {
	summary StatusSummary
	width   int
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar from the current view state.
func (s *StatusBar) Update(summary StatusSummary) {
	s.summary = summary
}

// View renders the status bar.
func (s StatusBar) View() string {
	sum := s.summary

	parts := []string{
		fmt.Sprintf("tab %d/%d", sum.TabIndex+1, sum.TabCount),
		fmt.Sprintf("%d keys", sum.KeyCount),
	}
	if sum.Selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", sum.Selected))
	}
	if sum.Clipboard > 0 {
		parts = append(parts, fmt.Sprintf("clipboard %d", sum.Clipboard))
	}
	if !sum.Editable {
		parts = append(parts, "read-only")
	}
	leftPart := strings.Join(parts, " · ")
	if sum.Dirty {
		leftPart = DirtyMarkerStyle.Render("●") + " " + leftPart
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("Ctrl+S") + ": save",
		StatusBarKeyStyle.Render("u") + ": undo",
		StatusBarKeyStyle.Render("?") + ": help",
	}
	rightPart := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(leftPart)
	rightWidth := ansi.StringWidth(rightPart)
	gap := s.width - leftWidth - rightWidth - 2
	if gap < 1 {
		gap = 1
	}

	content := " " + leftPart + strings.Repeat(" ", gap) + rightPart
	return StatusBarStyle.Width(s.width).Render(content)
}
