package tui

// overlayContext tracks what the currently-active overlay was opened for.
type overlayContext int

const (
	overlayNone       overlayContext = iota
	overlayKeyEdit                   // label lines + station for one key
	overlayRows                      // row count for the current page
	overlayTabLabel                  // rename the active tab
	overlayProfileID                 // edit the profile id
	overlaySaveAs                    // filename prompt when no file was given
	overlayQuitConfirm               // quit with unsaved changes
	overlayTabConfirm                // remove the active tab
	overlayHelp                      // key reference
)

// OverlayCloseMsg is emitted when any overlay is dismissed.
type OverlayCloseMsg struct {
	Values    []string // one entry per input field, in field order
	Confirmed bool     // true = submit, false = cancel/Esc
}

// StatusSummary carries the view state the status bar renders from.
type StatusSummary struct {
	TabIndex  int
	TabCount  int
	KeyCount  int
	Selected  int
	Clipboard int
	Dirty     bool
	Editable  bool
}
