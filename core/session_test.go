package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_FontSizeBounds(t *testing.T) {
	s := DefaultSession()
	assert.Equal(t, DefaultFontSize, s.FontSize)

	require.NoError(t, s.SetFontSize(MinFontSize))
	require.NoError(t, s.SetFontSize(MaxFontSize))
	assert.Equal(t, MaxFontSize, s.FontSize)

	assert.ErrorIs(t, s.SetFontSize(7), ErrFontSizeOutOfRange)
	assert.ErrorIs(t, s.SetFontSize(41), ErrFontSizeOutOfRange)
	assert.Equal(t, MaxFontSize, s.FontSize)
}

func TestSession_FontColor(t *testing.T) {
	var s Session

	require.NoError(t, s.SetFontColor("#F0C"))
	assert.Equal(t, "#ff00cc", s.FontColor)

	require.NoError(t, s.SetFontColor("#336699"))
	assert.Equal(t, "#336699", s.FontColor)

	assert.ErrorIs(t, s.SetFontColor("blue"), ErrInvalidColor)
	assert.Equal(t, "#336699", s.FontColor)

	require.NoError(t, s.SetFontColor(""))
	assert.Equal(t, "", s.FontColor)
}

func TestEditor_SessionToggles(t *testing.T) {
	e := newTestEditor(t, "")

	assert.True(t, e.ToggleDarkMode())
	assert.True(t, e.Session().DarkMode)
	assert.False(t, e.ToggleDarkMode())

	require.NoError(t, e.SetFontSize(20))
	assert.Equal(t, 20, e.Session().FontSize)
	assert.Error(t, e.SetFontSize(100))
	assert.Equal(t, 20, e.Session().FontSize)
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  KeyEvent
		want Action
		ok   bool
	}{
		{KeyEvent{Rune: 'n', Modifiers: ModCtrl}, ActionNew, true},
		{KeyEvent{Rune: 'O', Modifiers: ModCtrl}, ActionOpen, true},
		{KeyEvent{Rune: 'f', Modifiers: ModCtrl}, ActionFind, true},
		{KeyEvent{Rune: 'y', Modifiers: ModCtrl}, ActionRedo, true},
		{KeyEvent{Rune: 'n'}, "", false},
		{KeyEvent{Rune: 'k', Modifiers: ModCtrl}, "", false},
	}
	for _, tt := range tests {
		got, ok := ActionForKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key.String())
		assert.Equal(t, tt.want, got, tt.key.String())
	}
}

func TestAction_LabelAndAccelerator(t *testing.T) {
	assert.Equal(t, "Save As", ActionSaveAs.Label())
	assert.Equal(t, "", ActionSaveAs.Accelerator())
	assert.Equal(t, "Ctrl+S", ActionSave.Accelerator())
	assert.Equal(t, "", ActionDarkMode.Accelerator())
	assert.Len(t, Actions, len(actionLabels))
}
