// Package session owns one open profile document and everything around it:
// the undo/redo history, the active tab, the subpage path being viewed, the
// key selection, and the clipboard. Presentation code calls the methods here
// and re-renders from the getters; it never touches the document directly.
//
// Selection, clipboard, and the viewing path are ephemeral: they sit outside
// the history, so undo/redo does not restore them, and they are re-validated
// against the document after every change.
package session

import (
	"reflect"
	"strings"

	"github.com/skyfreq/gridpad/internal/clipboard"
	"github.com/skyfreq/gridpad/internal/history"
	"github.com/skyfreq/gridpad/internal/mutate"
	"github.com/skyfreq/gridpad/internal/profile"
)

// Session is the single editing context for one document.
type Session struct {
	hist  *history.History
	tab   int
	path  mutate.Path
	sel   clipboard.Selection
	clip  clipboard.Clipboard
	saved profile.Profile // document as of the last Load/Reset/Save
}

// New starts a session on the default profile.
func New() *Session {
	p := profile.Default()
	return &Session{hist: history.New(p), saved: p}
}

// Open starts a session on an already-loaded profile.
func Open(p profile.Profile) *Session {
	return &Session{hist: history.New(p), saved: p}
}

// Load parses, validates, and normalizes raw JSON and replaces the whole
// session with it. On error the current document is left exactly as it was.
func (s *Session) Load(data []byte) error {
	p, err := profile.Load(data)
	if err != nil {
		return err
	}
	s.hist.Replace(p)
	s.tab = 0
	s.path = nil
	s.sel.Clear()
	s.clip = clipboard.Clipboard{}
	s.saved = p
	return nil
}

// Reset replaces the session with a fresh default profile.
func (s *Session) Reset() {
	p := profile.Default()
	s.hist.Replace(p)
	s.tab = 0
	s.path = nil
	s.sel.Clear()
	s.clip = clipboard.Clipboard{}
	s.saved = p
}

// Profile returns the current document snapshot.
func (s *Session) Profile() profile.Profile {
	return s.hist.Current()
}

// Save renders the current document in canonical form and marks it as the
// saved state.
func (s *Session) Save() []byte {
	s.saved = s.Profile()
	return profile.Marshal(s.Profile())
}

// Dirty reports whether the document differs from the last Load/Reset/Save.
// Undoing back to the saved snapshot makes the session clean again.
func (s *Session) Dirty() bool {
	return !reflect.DeepEqual(s.saved, s.Profile())
}

// ExportFilename returns the filename to save under: the requested name with
// a ".json" suffix appended when absent, or "<id>.json" when no name is
// given.
func (s *Session) ExportFilename(requested string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return s.Profile().Filename()
	}
	if !strings.HasSuffix(requested, ".json") {
		requested += ".json"
	}
	return requested
}

// TabIndex returns the active tab.
func (s *Session) TabIndex() int { return s.tab }

// Path returns a copy of the subpage path currently being viewed.
func (s *Session) Path() mutate.Path { return s.path.Clone() }

// Page returns the page the session is looking at. ok is false only if the
// path went stale and could not be repaired.
func (s *Session) Page() (profile.Page, bool) {
	return mutate.ResolvePage(s.Profile(), s.tab, s.path)
}

// Editable reports whether the current page accepts key edits: it must
// resolve and must not be a client page.
func (s *Session) Editable() bool {
	pg, ok := s.Page()
	return ok && !pg.IsClientPage()
}

// Selection returns the selected key indices, ascending.
func (s *Session) Selection() []int { return s.sel.Indices() }

// ClipboardLen returns how many keys the clipboard holds.
func (s *Session) ClipboardLen() int { return s.clip.Len() }

// CanUndo and CanRedo mirror the history cursor.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// apply records one edit in the history and revalidates the view state. The
// updater must be pure; edits that leave the document identical should be
// filtered by the caller before reaching apply.
func (s *Session) apply(updater func(profile.Profile) profile.Profile) {
	s.hist.Mutate(updater)
	s.revalidate()
}

// revalidate repairs the view after the document changed shape: a path that
// no longer resolves collapses to the tab's root page, and the selection is
// clamped into the current key list.
func (s *Session) revalidate() {
	if s.tab >= len(s.Profile().Tabs) {
		s.tab = len(s.Profile().Tabs) - 1
	}
	if s.tab < 0 {
		s.tab = 0
	}
	pg, ok := mutate.ResolvePage(s.Profile(), s.tab, s.path)
	if !ok {
		s.path = nil
		pg, _ = mutate.ResolvePage(s.Profile(), s.tab, nil)
	}
	s.sel.ClampTo(len(pg.Keys))
}

// Undo steps back one edit; the selection is clamped, not restored.
func (s *Session) Undo() bool {
	if !s.hist.Undo() {
		return false
	}
	s.revalidate()
	return true
}

// Redo steps forward one edit.
func (s *Session) Redo() bool {
	if !s.hist.Redo() {
		return false
	}
	s.revalidate()
	return true
}
