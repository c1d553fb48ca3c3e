package tui

import (
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skyfreq/gridpad/internal/config"
	"github.com/skyfreq/gridpad/internal/profile"
	"github.com/skyfreq/gridpad/internal/session"
	"github.com/skyfreq/gridpad/internal/stations"
)

// Model is the root bubbletea model for the profile editor.
type Model struct {
	sess     *session.Session
	stations *stations.Index
	cfg      config.Config
	file     string // file the session was opened on, "" for a fresh profile

	tabBar    TabBar
	grid      Grid
	statusBar StatusBar
	overlay   Overlay

	overlayCtx overlayContext
	editIdx    int // key index the active key overlay edits

	cursor        int
	width, height int
	ready         bool
	quitting      bool
	saveErr       string

	// SavedTo is the path of the last successful save, read by the edit
	// command after the program exits.
	SavedTo string
}

// NewModel creates the root editor model.
func NewModel(sess *session.Session, idx *stations.Index, cfg config.Config, file string) Model {
	return Model{
		sess:     sess,
		stations: idx,
		cfg:      cfg,
		file:     file,
		grid:     NewGrid(idx),
	}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.tabBar.SetWidth(msg.Width)
		m.grid.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		return m, nil
	}

	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pg, _ := m.sess.Page()

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "q":
		return m.requestQuit()

	case "esc":
		if len(m.sess.Selection()) > 0 {
			m.sess.SelectNone()
			return m, nil
		}
		return m.requestQuit()

	case "?":
		m.overlay = NewHelpOverlay()
		m.overlayCtx = overlayHelp
		return m, nil

	case "ctrl+s":
		return m.requestSave()

	// Cursor movement follows the grid: a column holds pg.Rows keys.
	case "up", "k":
		if m.cursor%maxInt(pg.Rows, 1) > 0 {
			m.cursor--
		}
	case "down", "j":
		rows := maxInt(pg.Rows, 1)
		if m.cursor%rows < rows-1 && m.cursor+1 < len(pg.Keys) {
			m.cursor++
		}
	case "left", "h":
		if m.cursor-pg.Rows >= 0 {
			m.cursor -= pg.Rows
		}
	case "right", "l":
		if m.cursor+pg.Rows < len(pg.Keys) {
			m.cursor += pg.Rows
		}

	case "v", " ":
		m.sess.Select(m.cursor, true, false)
	case "V":
		m.sess.Select(m.cursor, false, true)

	case "enter", "e":
		if m.sess.Editable() && m.cursor < len(pg.Keys) {
			m.openKeyOverlay(pg.Keys[m.cursor])
		}
	case "a":
		m.sess.AddKey()
		m.clampCursor()
		if pg, ok := m.sess.Page(); ok && len(pg.Keys) > 0 {
			m.cursor = len(pg.Keys) - 1
		}
	case "d":
		m.ensureSelection()
		m.sess.RemoveSelected()
		m.clampCursor()
	case "c":
		m.ensureSelection()
		m.sess.ClearSelected()

	case "y":
		m.ensureSelection()
		m.sess.Copy()
	case "x":
		m.ensureSelection()
		m.sess.Cut()
		m.clampCursor()
	case "p":
		m.sess.Paste()
		m.clampCursor()

	case "u":
		m.sess.Undo()
		m.clampCursor()
	case "ctrl+r":
		m.sess.Redo()
		m.clampCursor()

	case "K":
		m.ensureSelection()
		m.sess.MoveSelected(0, -1)
	case "J":
		m.ensureSelection()
		m.sess.MoveSelected(0, 1)
	case "H":
		m.ensureSelection()
		m.sess.MoveSelected(-1, 0)
	case "L":
		m.ensureSelection()
		m.sess.MoveSelected(1, 0)
	case "s":
		m.sess.SwapSelected()

	case "]":
		if m.sess.EnterSubpage(m.cursor) {
			m.cursor = 0
		}
	case "[":
		if m.sess.LeaveSubpage() {
			m.cursor = 0
			m.clampCursor()
		}
	case "S":
		m.sess.AttachSubpage(m.cursor, m.cfg.DefaultRows)
	case "D":
		m.sess.DetachSubpage(m.cursor)

	case "tab":
		m.switchTab(1)
	case "shift+tab":
		m.switchTab(-1)
	case "t":
		m.sess.AddTab(m.cfg.DefaultRows)
		m.cursor = 0
	case "ctrl+t":
		if len(m.sess.Profile().Tabs) > 1 {
			m.overlay = NewConfirmOverlay("Remove tab", "Remove the current tab and everything on it?")
			m.overlayCtx = overlayTabConfirm
		}
	case "n":
		m.openTabLabelOverlay()
	case "<":
		m.sess.MoveTab(-1)
	case ">":
		m.sess.MoveTab(1)

	case "R":
		m.overlay = NewInputOverlay("Rows", []InputField{
			{Label: "Row count", Initial: strconv.Itoa(pg.Rows)},
		})
		m.overlayCtx = overlayRows
	case "i":
		m.overlay = NewInputOverlay("Profile id", []InputField{
			{Label: "Id", Initial: m.sess.Profile().ID},
		})
		m.overlayCtx = overlayProfileID
	}

	return m, nil
}

// ensureSelection treats a bare cursor as a one-key selection so single-key
// edits work without an explicit select step.
func (m *Model) ensureSelection() {
	if len(m.sess.Selection()) == 0 {
		m.sess.Select(m.cursor, false, false)
	}
}

func (m *Model) clampCursor() {
	pg, ok := m.sess.Page()
	if !ok || len(pg.Keys) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(pg.Keys) {
		m.cursor = len(pg.Keys) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) switchTab(delta int) {
	n := len(m.sess.Profile().Tabs)
	m.sess.SetTab(((m.sess.TabIndex()+delta)%n + n) % n)
	m.cursor = 0
	m.clampCursor()
}

func (m *Model) openKeyOverlay(k profile.Key) {
	line := func(i int) string {
		if i < len(k.Label) {
			return k.Label[i]
		}
		return ""
	}
	m.editIdx = m.cursor
	m.overlay = NewInputOverlay("Edit key", []InputField{
		{Label: "Line 1", Initial: line(0)},
		{Label: "Line 2", Initial: line(1)},
		{Label: "Line 3", Initial: line(2)},
		{Label: "Station", Placeholder: "e.g. EDDF_TWR", Initial: k.StationID},
	}).WithStationSuggestions(3, m.stations)
	m.overlayCtx = overlayKeyEdit
}

func (m *Model) openTabLabelOverlay() {
	tab := m.sess.Profile().Tabs[m.sess.TabIndex()]
	line := func(i int) string {
		if i < len(tab.Label) {
			return tab.Label[i]
		}
		return ""
	}
	m.overlay = NewInputOverlay("Rename tab", []InputField{
		{Label: "Line 1", Initial: line(0)},
		{Label: "Line 2", Initial: line(1)},
		{Label: "Line 3", Initial: line(2)},
	})
	m.overlayCtx = overlayTabLabel
}

func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.sess.Dirty() && m.cfg.ConfirmOnQuit {
		m.overlay = NewConfirmOverlay("Quit", "Discard unsaved changes and exit?")
		m.overlayCtx = overlayQuitConfirm
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) requestSave() (tea.Model, tea.Cmd) {
	if m.file == "" {
		m.overlay = NewInputOverlay("Save as", []InputField{
			{Label: "Filename", Initial: m.sess.ExportFilename("")},
		})
		m.overlayCtx = overlaySaveAs
		return m, nil
	}
	m.save(m.file)
	return m, nil
}

func (m *Model) save(path string) {
	m.saveErr = ""
	if err := os.WriteFile(path, m.sess.Save(), 0644); err != nil {
		m.saveErr = err.Error()
		return
	}
	m.file = path
	m.SavedTo = path
}

// --- Overlay routing ---

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasActive := m.overlay.Active()
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)

	if wasActive && !m.overlay.Active() && cmd != nil {
		if closeMsg, ok := cmd().(OverlayCloseMsg); ok {
			return m.handleOverlayClose(closeMsg)
		}
	}
	return m, cmd
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	ctx := m.overlayCtx
	m.overlayCtx = overlayNone

	if !msg.Confirmed {
		return m, nil
	}

	switch ctx {
	case overlayKeyEdit:
		m.sess.SetKeyLabel(m.editIdx, msg.Values[:3])
		m.sess.SetStationID(m.editIdx, msg.Values[3])

	case overlayRows:
		if rows, err := strconv.Atoi(strings.TrimSpace(msg.Values[0])); err == nil {
			m.sess.SetRows(rows)
			m.clampCursor()
		}

	case overlayTabLabel:
		m.sess.RenameTab(msg.Values)

	case overlayProfileID:
		m.sess.SetID(msg.Values[0])

	case overlaySaveAs:
		m.save(m.sess.ExportFilename(msg.Values[0]))

	case overlayTabConfirm:
		m.sess.RemoveTab()
		m.cursor = 0
		m.clampCursor()

	case overlayQuitConfirm:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// --- View ---

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	pg, _ := m.sess.Page()
	sel := m.sess.Selection()
	selected := func(i int) bool {
		for _, s := range sel {
			if s == i {
				return true
			}
		}
		return false
	}

	m.statusBar.Update(StatusSummary{
		TabIndex:  m.sess.TabIndex(),
		TabCount:  len(m.sess.Profile().Tabs),
		KeyCount:  len(pg.Keys),
		Selected:  len(sel),
		Clipboard: m.sess.ClipboardLen(),
		Dirty:     m.sess.Dirty(),
		Editable:  m.sess.Editable(),
	})

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar.View(m.sess.Profile(), m.sess.TabIndex(), m.sess.Path()),
		"",
		m.grid.View(pg, m.cursor, selected),
	)
	if m.saveErr != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			DirtyMarkerStyle.Render("save failed: "+m.saveErr))
	}

	bodyHeight := m.height - 1
	body = clampHeight(body, bodyHeight)
	frame := body + strings.Repeat("\n", maxInt(bodyHeight-lipgloss.Height(body)+1, 1)) + m.statusBar.View()

	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}

// clampHeight truncates s to at most maxLines lines, preventing layout
// overflow.
func clampHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", maxLines+1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var _ tea.Model = Model{}
