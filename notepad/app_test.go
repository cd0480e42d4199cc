package notepad

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	editor "github.com/ionut-t/gonote/adapter-bubbletea"
	"github.com/ionut-t/gonote/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memClipboard struct{ text string }

func (c *memClipboard) Write(text string) error { c.text = text; return nil }

func (c *memClipboard) Read() (string, error) { return c.text, nil }

func newTestApp(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Clipboard == nil {
		opts.Clipboard = &memClipboard{}
	}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestRegistry_Dispatch(t *testing.T) {
	m := newTestApp(t, Options{})

	r := NewRegistry()
	_, err := r.Dispatch(&m, core.ActionSave)
	assert.ErrorIs(t, err, core.ErrUnknownAction)

	called := false
	r.Register(core.ActionSave, func(*Model) tea.Cmd {
		called = true
		return nil
	})
	_, err = r.Dispatch(&m, core.ActionSave)
	require.NoError(t, err)
	assert.True(t, called)

	defaults := DefaultRegistry()
	for _, action := range core.Actions {
		assert.True(t, defaults.Has(action), action)
	}
}

func TestUndo_EmptyHistoryIsSilent(t *testing.T) {
	m := newTestApp(t, Options{Path: writeFile(t, "keep")})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, "keep", m.editor.GetCurrentContent())
}

func TestUndoRedo_ThroughShortcuts(t *testing.T) {
	m := newTestApp(t, Options{})

	m = typeText(t, m, "x")
	m = typeText(t, m, "y")
	assert.Equal(t, "xy", m.editor.GetCurrentContent())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "", m.editor.GetCurrentContent())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "xy", m.editor.GetCurrentContent())
}

func TestSave_FallsBackToSaveAs(t *testing.T) {
	m := newTestApp(t, Options{})
	m = typeText(t, m, "hello")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, overlayPrompt, m.overlay)
	assert.Equal(t, promptSaveAs, m.prompt.kind)

	target := filepath.Join(t.TempDir(), "greeting")
	m = typeText(t, m, target)
	m, _ = press(t, m, keyEnter)

	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, target+".txt", m.ed().CurrentFile())

	raw, err := os.ReadFile(target + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	// A bound document saves in place without prompting.
	m = typeText(t, m, "!")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, overlayNone, m.overlay)

	raw, err = os.ReadFile(target + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "hello!", string(raw))
}

func TestSaveAs_FailureShowsModal(t *testing.T) {
	m := newTestApp(t, Options{})
	m = typeText(t, m, "data")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = typeText(t, m, filepath.Join(t.TempDir(), "missing", "dir", "x.txt"))
	m, _ = press(t, m, keyEnter)

	require.Equal(t, overlayDialog, m.overlay)
	assert.Equal(t, "Cannot save file", m.dialog.title)
	assert.Equal(t, "data", m.editor.GetCurrentContent())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, "data", m.editor.GetCurrentContent())
}

func TestOpen_MissingFileShowsModal(t *testing.T) {
	m := newTestApp(t, Options{Path: filepath.Join(t.TempDir(), "nope.txt")})

	require.Equal(t, overlayDialog, m.overlay)
	assert.Equal(t, "Cannot open file", m.dialog.title)
	assert.Equal(t, "", m.editor.GetCurrentContent())
	assert.Equal(t, "", m.ed().CurrentFile())
}

func TestQuit_RequiresConfirmation(t *testing.T) {
	m := newTestApp(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.Equal(t, overlayDialog, m.overlay)

	m, cmd := press(t, m, keyEsc)
	assert.Equal(t, overlayNone, m.overlay)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.View())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", m.View())
}

func TestQuit_CancelButtonWithEnter(t *testing.T) {
	m := newTestApp(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlQ})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, keyEnter)

	assert.Equal(t, overlayNone, m.overlay)
	assert.Nil(t, cmd)
}

func TestFind_HighlightsAndCancelClears(t *testing.T) {
	m := newTestApp(t, Options{Path: writeFile(t, "a b a")})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.Equal(t, overlayPrompt, m.overlay)
	m = typeText(t, m, "a")
	m, _ = press(t, m, keyEnter)

	assert.Len(t, m.ed().Highlights(), 2)
	assert.Equal(t, "a b a", m.editor.GetCurrentContent())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	m, _ = press(t, m, keyEsc)
	assert.Equal(t, overlayNone, m.overlay)
	assert.Empty(t, m.ed().Highlights())
}

func TestFontSize_Validation(t *testing.T) {
	m := newTestApp(t, Options{})

	m.dispatch(core.ActionFontSize)
	require.Equal(t, overlayPrompt, m.overlay)
	assert.Equal(t, "12", m.prompt.Value())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "50")
	m, _ = press(t, m, keyEnter)

	require.Equal(t, overlayDialog, m.overlay)
	assert.Equal(t, "Invalid font size", m.dialog.title)
	assert.Equal(t, core.DefaultFontSize, m.ed().Session().FontSize)

	m, _ = press(t, m, keyEnter)
	m.dispatch(core.ActionFontSize)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "20")
	m, _ = press(t, m, keyEnter)

	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, 20, m.ed().Session().FontSize)
}

func TestFontColorAndDarkMode(t *testing.T) {
	m := newTestApp(t, Options{})

	m.dispatch(core.ActionFontColor)
	m = typeText(t, m, "#f80")
	m, _ = press(t, m, keyEnter)
	assert.Equal(t, "#ff8800", m.ed().Session().FontColor)

	m.dispatch(core.ActionFontColor)
	m, _ = press(t, m, keyEnter)
	assert.Equal(t, overlayNone, m.overlay)

	m.dispatch(core.ActionDarkMode)
	assert.True(t, m.ed().Session().DarkMode)
}

func TestMenu_KeyboardNavigation(t *testing.T) {
	m := newTestApp(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF10})
	require.Equal(t, overlayMenu, m.overlay)
	assert.False(t, m.editor.IsFocused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.menu.active)

	for range 5 {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, core.ActionFind, menus[m.menu.active].actions[m.menu.item])

	m, _ = press(t, m, keyEnter)
	assert.Equal(t, overlayPrompt, m.overlay)
	assert.Equal(t, promptFind, m.prompt.kind)

	m, _ = press(t, m, keyEsc)
	assert.True(t, m.editor.IsFocused())
}

func TestMenu_EscapeCloses(t *testing.T) {
	m := newTestApp(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF10})
	m, _ = press(t, m, keyEsc)
	assert.Equal(t, overlayNone, m.overlay)

	m = typeText(t, m, "z")
	assert.Equal(t, "z", m.editor.GetCurrentContent())
}

func TestMenu_MouseOpensTitle(t *testing.T) {
	m := newTestApp(t, Options{})

	next, _ := m.Update(tea.MouseMsg{X: 7, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	require.Equal(t, overlayMenu, m.overlay)
	assert.Equal(t, 1, m.menu.active)

	// First Edit item sits under the dropdown's top border.
	next, _ = m.Update(tea.MouseMsg{X: 8, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	assert.Equal(t, overlayNone, m.overlay)
}

func TestNew_ClearsDocument(t *testing.T) {
	m := newTestApp(t, Options{Path: writeFile(t, "old")})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, "", m.editor.GetCurrentContent())
	assert.Equal(t, "", m.ed().CurrentFile())
}

func TestClipboardShortcuts(t *testing.T) {
	clip := &memClipboard{}
	m := newTestApp(t, Options{Clipboard: clip})
	m = typeText(t, m, "cut me")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	for range 3 {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftRight})
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, "cut", clip.text)
	assert.Equal(t, " me", m.editor.GetCurrentContent())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, " mecut", m.editor.GetCurrentContent())
}

func TestView_ShowsChrome(t *testing.T) {
	m := newTestApp(t, Options{})
	view := m.View()

	assert.Contains(t, view, "File")
	assert.Contains(t, view, "Format")
	assert.Contains(t, view, "Line 1, Column 1")
	assert.Contains(t, view, "menu")
}

func TestPlaceOverlay(t *testing.T) {
	got := placeOverlay("aaaaa\nbbbbb\nccccc", "XY", 1, 1)
	assert.Equal(t, "aaaaa\nbXYbb\nccccc", got)

	got = placeOverlay("ab", "XY", 4, 0)
	assert.Equal(t, "ab  XY", got)
}

func TestMatchSummary(t *testing.T) {
	assert.Equal(t, "Highlights cleared", matchSummary("", 0))
	assert.Equal(t, `1 match for "x"`, matchSummary("x", 1))
	assert.Equal(t, `0 matches for "x"`, matchSummary("x", 0))
}

func TestSaveAs_ConfirmsBeforeReplacing(t *testing.T) {
	existing := writeFile(t, "old")
	m := newTestApp(t, Options{})
	m = typeText(t, m, "new")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = typeText(t, m, existing)
	m, _ = press(t, m, keyEnter)
	require.Equal(t, overlayDialog, m.overlay)
	assert.Equal(t, "Save As", m.dialog.title)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, "", m.ed().CurrentFile())
	raw, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(raw))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = typeText(t, m, existing)
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, existing, m.ed().CurrentFile())
	raw, err = os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "new", string(raw))
}

func TestStatusLine_ReportsEditorSignals(t *testing.T) {
	m := newTestApp(t, Options{})

	next, _ := m.Update(editor.CopyMsg{Content: "abc", Cut: true})
	m = next.(Model)
	assert.Contains(t, m.View(), "cut 3 characters")

	next, _ = m.Update(editor.PasteMsg{Content: "é"})
	m = next.(Model)
	assert.Contains(t, m.View(), "pasted 1 character")

	next, _ = m.Update(editor.SaveMsg{Path: "notes.txt"})
	m = next.(Model)
	assert.Contains(t, m.View(), "changes saved to notes.txt")

	next, _ = m.Update(editor.ErrorMsg{ID: core.ErrSaveFailedId, Error: core.ErrSaveFailed})
	m = next.(Model)
	assert.Contains(t, m.View(), "cannot save file")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestKeyMap_ActionFor(t *testing.T) {
	km := newKeyMap()

	action, ok := km.actionFor(tea.KeyMsg{Type: tea.KeyCtrlQ})
	assert.True(t, ok)
	assert.Equal(t, core.ActionQuit, action)

	action, ok = km.actionFor(tea.KeyMsg{Type: tea.KeyCtrlF})
	assert.True(t, ok)
	assert.Equal(t, core.ActionFind, action)

	_, ok = km.actionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, ok)
	_, ok = km.actionFor(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, ok)
}
