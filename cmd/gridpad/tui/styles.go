package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Tab bar styles.
var (
	// ActiveTabStyle marks the tab being edited.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1).
			Bold(true)

	// InactiveTabStyle is used for the other tabs.
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0).
				Padding(0, 1)

	// SubpageCrumbStyle renders the subpage breadcrumb next to the tabs.
	SubpageCrumbStyle = lipgloss.NewStyle().
				Foreground(colorMauve).
				Padding(0, 1)
)

// Grid cell styles.
var (
	// CellWidth and CellHeight are the inner dimensions of one key cell.
	CellWidth  = 12
	CellHeight = 3

	CellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface1).
			Foreground(colorText).
			Width(CellWidth).
			Height(CellHeight).
			Align(lipgloss.Center)

	CursorCellStyle = CellStyle.
			BorderForeground(colorBlue).
			Bold(true)

	SelectedCellStyle = CellStyle.
				Background(colorSurface1).
				BorderForeground(colorMauve)

	// StationKnownStyle and StationUnknownStyle color the station line of a
	// cell by the advisory dataset check.
	StationKnownStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	StationUnknownStyle = lipgloss.NewStyle().Foreground(colorYellow)

	SubpageMarkerStyle = lipgloss.NewStyle().Foreground(colorMauve)

	ClientPageStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true).
			Padding(1, 2)
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	DirtyMarkerStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)
)

// Overlay styles.
var (
	OverlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1, 2)

	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	OverlayHintStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)
