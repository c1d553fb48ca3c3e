package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfreq/gridpad/internal/profile"
)

const loadedProfile = `{"id":"LOWW","type":"Tabbed","tabs":[{"label":["APP"],"page":{"rows":2,"keys":[{"label":["LOWW","APP"],"station_id":"LOWW_APP"}]}}]}`

func loaded(t *testing.T) *Session {
	t.Helper()
	s := New()
	require.NoError(t, s.Load([]byte(loadedProfile)))
	return s
}

func pageKeys(t *testing.T, s *Session) []profile.Key {
	t.Helper()
	pg, ok := s.Page()
	require.True(t, ok)
	return pg.Keys
}

func TestLoadRejectsBadInputAndKeepsDocument(t *testing.T) {
	s := loaded(t)
	s.AddKey()

	require.Error(t, s.Load([]byte(`not json`)))
	require.Error(t, s.Load([]byte(`{"id":"x","type":"Wrong","tabs":[]}`)))
	assert.Len(t, pageKeys(t, s), 2, "failed loads leave the document untouched")
}

func TestAddRemoveUndoRestoresOriginalKey(t *testing.T) {
	s := loaded(t)

	s.AddKey()
	s.Select(0, false, false)
	s.RemoveSelected()
	require.Len(t, pageKeys(t, s), 1)
	assert.Empty(t, pageKeys(t, s)[0].Label)

	require.True(t, s.Undo())
	keys := pageKeys(t, s)
	require.Len(t, keys, 2)
	assert.Equal(t, profile.Key{Label: []string{"LOWW", "APP"}, StationID: "LOWW_APP"}, keys[0])
}

func TestUndoIsNotAvailableAcrossLoad(t *testing.T) {
	s := New()
	s.AddKey()
	require.NoError(t, s.Load([]byte(loadedProfile)))
	assert.False(t, s.CanUndo())
	assert.False(t, s.Undo())
}

func TestSelectionRangeOverTenKeys(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		s.AddKey()
	}
	s.Select(2, false, false)
	s.Select(6, false, true)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, s.Selection())
}

func TestCutPasteMovesKeysOnce(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.AddKey()
		s.SetKeyLabel(i, []string{string(rune('a' + i))})
	}
	s.Select(1, false, false)
	s.Select(3, true, false)
	s.Cut()
	require.Len(t, pageKeys(t, s), 3)

	s.SelectNone()
	s.Paste()
	keys := pageKeys(t, s)
	require.Len(t, keys, 5)
	assert.Equal(t, []string{"b"}, keys[3].Label)
	assert.Equal(t, []string{"d"}, keys[4].Label)
	assert.Equal(t, []int{3, 4}, s.Selection())

	// Second paste without an intervening copy: the cut clipboard is spent.
	s.Paste()
	assert.Len(t, pageKeys(t, s), 5)
}

func TestSelectionClampedAfterUndo(t *testing.T) {
	s := New()
	s.AddKey()
	s.AddKey()
	s.Select(1, false, false)
	require.True(t, s.Undo()) // back to one key; index 1 is stale
	assert.Empty(t, s.Selection())
}

func TestPathCollapsesWhenSubpageDisappears(t *testing.T) {
	s := loaded(t)
	s.AttachSubpage(0, 2)
	require.True(t, s.EnterSubpage(0))
	s.AddKey()

	require.True(t, s.Undo()) // subpage empty again
	require.True(t, s.Undo()) // subpage gone; path is stale
	pg, ok := s.Page()
	require.True(t, ok)
	assert.Equal(t, 2, pg.Rows, "view fell back to the tab root page")
	assert.Empty(t, s.Path())
}

func TestClientPageRefusesEverything(t *testing.T) {
	src := `{"id":"LOWW","type":"Tabbed","tabs":[{"label":["ATIS"],"page":{"rows":1,"client_page":{"kind":"atis","feed":[1,2,3]}}}]}`
	s := New()
	require.NoError(t, s.Load([]byte(src)))
	assert.False(t, s.Editable())

	before := s.Save()
	s.AddKey()
	s.Select(0, false, false)
	s.RemoveSelected()
	s.Paste()
	s.SetRows(9)
	assert.Equal(t, string(before), string(s.Save()))
}

func TestRemoveTabKeepsLastTab(t *testing.T) {
	s := New()
	s.RemoveTab()
	assert.Len(t, s.Profile().Tabs, 1)

	s.AddTab(4)
	assert.Equal(t, 1, s.TabIndex())
	s.RemoveTab()
	assert.Len(t, s.Profile().Tabs, 1)
	assert.Equal(t, 0, s.TabIndex())
}

func TestExportFilename(t *testing.T) {
	s := loaded(t)
	assert.Equal(t, "LOWW.json", s.ExportFilename(""))
	assert.Equal(t, "custom.json", s.ExportFilename("custom"))
	assert.Equal(t, "custom.json", s.ExportFilename("custom.json"))
}

func TestDirtyTracking(t *testing.T) {
	s := loaded(t)
	assert.False(t, s.Dirty())

	s.AddKey()
	assert.True(t, s.Dirty())

	s.Save()
	assert.False(t, s.Dirty())
}

func TestUndoBackToSavedStateIsClean(t *testing.T) {
	s := loaded(t)

	s.AddKey()
	require.True(t, s.Undo())
	assert.False(t, s.Dirty(), "back at the loaded document")

	require.True(t, s.Redo())
	assert.True(t, s.Dirty())

	s.Save()
	s.AddKey()
	require.True(t, s.Undo())
	assert.False(t, s.Dirty(), "back at the last-saved document")
}

func TestSaveRoundTripsLoadedFile(t *testing.T) {
	s := loaded(t)
	out := s.Save()

	again := New()
	require.NoError(t, again.Load(out))
	assert.Equal(t, s.Profile(), again.Profile())
	assert.Equal(t, string(out), string(again.Save()))
}

func TestMoveSelectedThroughSession(t *testing.T) {
	s := New()
	s.SetRows(2)
	for i := 0; i < 4; i++ {
		s.AddKey()
		s.SetKeyLabel(i, []string{string(rune('a' + i))})
	}

	s.Select(0, false, false)
	s.MoveSelected(1, 0) // one column right with rows=2
	keys := pageKeys(t, s)
	assert.Equal(t, []string{"c"}, keys[0].Label)
	assert.Equal(t, []string{"a"}, keys[2].Label)
	assert.Equal(t, []int{2}, s.Selection())

	s.MoveSelected(0, -1)
	keys = pageKeys(t, s)
	assert.Equal(t, []string{"a"}, keys[1].Label)
	assert.Equal(t, []int{1}, s.Selection())
}

func TestSwapSelectedNeedsExactlyTwo(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.AddKey()
		s.SetKeyLabel(i, []string{string(rune('a' + i))})
	}
	s.Select(0, false, false)
	s.Select(2, true, false)
	s.SwapSelected()

	keys := pageKeys(t, s)
	assert.Equal(t, []string{"c"}, keys[0].Label)
	assert.Equal(t, []string{"a"}, keys[2].Label)
}
