package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/skyfreq/gridpad/internal/stations"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayConfirm OverlayType = iota // Yes/No confirmation
	OverlayInput                      // one or more labeled text inputs
	OverlayHelp                       // static key reference
)

// InputField describes one text input in an input overlay.
type InputField struct {
	Label       string
	Placeholder string
	Initial     string
}

// Overlay renders a centered modal box on top of the editor.
type Overlay struct {
	overlayType OverlayType
	title       string
	message     string
	labels      []string
	inputs      []textinput.Model
	focus       int
	cursor      int // button index for Confirm: 0=Cancel, 1=OK

	// Station autocomplete: when stationField >= 0, edits to that input
	// refresh the suggestion list from the dataset.
	stationField int
	stations     *stations.Index
	suggestions  []string

	width  int
	active bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		overlayType:  OverlayConfirm,
		title:        title,
		message:      message,
		cursor:       1,
		stationField: -1,
		active:       true,
	}
}

// NewInputOverlay creates a dialog of labeled text inputs. The first field
// starts focused.
func NewInputOverlay(title string, fields []InputField) Overlay {
	o := Overlay{
		overlayType:  OverlayInput,
		title:        title,
		stationField: -1,
		active:       true,
	}
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.SetValue(f.Initial)
		ti.CharLimit = 64
		ti.Width = 24
		if i == 0 {
			ti.Focus()
		}
		o.labels = append(o.labels, f.Label)
		o.inputs = append(o.inputs, ti)
	}
	return o
}

// NewHelpOverlay creates the key reference modal.
func NewHelpOverlay() Overlay {
	return Overlay{
		overlayType:  OverlayHelp,
		title:        "Keys",
		message:      helpText,
		stationField: -1,
		active:       true,
	}
}

// WithStationSuggestions enables dataset autocomplete on one input field.
func (o Overlay) WithStationSuggestions(field int, idx *stations.Index) Overlay {
	o.stationField = field
	o.stations = idx
	o.refreshSuggestions()
	return o
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	switch o.overlayType {
	case OverlayConfirm:
		return o.updateConfirm(msg)
	case OverlayInput:
		return o.updateInput(msg)
	case OverlayHelp:
		return o.updateHelp(msg)
	}
	return o, nil
}

func (o Overlay) updateConfirm(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			o.active = false
			return o, closeCmd(OverlayCloseMsg{Confirmed: false})
		case "tab", "left", "right", "h", "l":
			o.cursor = 1 - o.cursor
		case "enter":
			o.active = false
			return o, closeCmd(OverlayCloseMsg{Confirmed: o.cursor == 1})
		}
	}
	return o, nil
}

func (o Overlay) updateInput(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			o.active = false
			return o, closeCmd(OverlayCloseMsg{Confirmed: false})
		case "tab", "down":
			o.setFocus((o.focus + 1) % len(o.inputs))
			return o, nil
		case "shift+tab", "up":
			o.setFocus((o.focus + len(o.inputs) - 1) % len(o.inputs))
			return o, nil
		case "enter":
			values := make([]string, len(o.inputs))
			for i, in := range o.inputs {
				values[i] = in.Value()
			}
			o.active = false
			return o, closeCmd(OverlayCloseMsg{Values: values, Confirmed: true})
		}
	}

	var cmd tea.Cmd
	o.inputs[o.focus], cmd = o.inputs[o.focus].Update(msg)
	if o.focus == o.stationField {
		o.refreshSuggestions()
	}
	return o, cmd
}

func (o Overlay) updateHelp(msg tea.Msg) (Overlay, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "q", "?":
			o.active = false
			return o, closeCmd(OverlayCloseMsg{Confirmed: false})
		}
	}
	return o, nil
}

func (o *Overlay) setFocus(i int) {
	o.inputs[o.focus].Blur()
	o.focus = i
	o.inputs[o.focus].Focus()
}

func (o *Overlay) refreshSuggestions() {
	o.suggestions = nil
	if o.stations == nil || o.stationField < 0 {
		return
	}
	q := o.inputs[o.stationField].Value()
	if q == "" {
		return
	}
	o.suggestions = o.stations.Suggest(q, 5)
}

func closeCmd(msg OverlayCloseMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the overlay box. Compositing over the background is the
// caller's responsibility via Composite.
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")

	switch o.overlayType {
	case OverlayConfirm:
		b.WriteString(o.message)
		b.WriteString("\n\n")
		b.WriteString(o.renderButtons("Cancel", "OK"))
	case OverlayInput:
		for i, in := range o.inputs {
			if o.labels[i] != "" {
				b.WriteString(OverlayHintStyle.Render(o.labels[i]))
				b.WriteString("\n")
			}
			b.WriteString(in.View())
			b.WriteString("\n")
		}
		if len(o.suggestions) > 0 {
			b.WriteString("\n")
			b.WriteString(SuggestionStyle.Render(strings.Join(o.suggestions, "  ")))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(OverlayHintStyle.Render("Enter: submit  Tab: next field  Esc: cancel"))
	case OverlayHelp:
		b.WriteString(o.message)
	}

	return OverlayBoxStyle.Render(b.String())
}

// renderButtons draws two side-by-side buttons with the cursor on one.
func (o Overlay) renderButtons(cancel, ok string) string {
	if o.cursor == 0 {
		return ActiveTabStyle.Render(cancel) + "  " + InactiveTabStyle.Render(ok)
	}
	return InactiveTabStyle.Render(cancel) + "  " + ActiveTabStyle.Render(ok)
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (totalHeight - len(overlayLines)) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (totalWidth - overlayWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}

		bgRunes := []rune(bgLines[row])
		leftPad := ""
		if startCol > 0 {
			if startCol <= len(bgRunes) {
				leftPad = string(bgRunes[:startCol])
			} else {
				leftPad = string(bgRunes) + strings.Repeat(" ", startCol-len(bgRunes))
			}
		}

		overlayEnd := startCol + ansi.StringWidth(overlayLine)
		rightPad := ""
		if overlayEnd < len(bgRunes) {
			rightPad = string(bgRunes[overlayEnd:])
		}

		bgLines[row] = leftPad + overlayLine + rightPad
	}

	return strings.Join(bgLines[:totalHeight], "\n")
}

const helpText = `arrows / hjkl   move cursor
v / space       select key          V   extend selection
enter / e       edit key            a   add key
d               delete selected     c   clear selected
y / x / p       copy / cut / paste
u / ctrl+r      undo / redo
H J K L         move selected       s   swap two selected
] / [           enter / leave subpage
S / D           attach / detach subpage
tab / shift+tab switch tab          t   add tab
n               rename tab          ctrl+t  remove tab
R               set rows            i   edit profile id
ctrl+s          save                q   quit`
