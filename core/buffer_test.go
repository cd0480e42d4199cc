package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_OffsetsRoundTrip(t *testing.T) {
	b := NewBufferFromBytes([]byte("ab\n\ncdé"))

	positions := []Position{
		{0, 0}, {0, 2}, {1, 0}, {2, 0}, {2, 3},
	}
	offsets := []int{0, 2, 3, 4, 7}

	for i, pos := range positions {
		assert.Equal(t, offsets[i], b.OffsetOf(pos), "OffsetOf(%v)", pos)
		assert.Equal(t, pos, b.PositionOf(offsets[i]), "PositionOf(%d)", offsets[i])
	}
	assert.Equal(t, 7, b.RuneCount())
	assert.Equal(t, Position{Row: 2, Col: 3}, b.PositionOf(100))
}

func TestBuffer_ReplaceRange(t *testing.T) {
	b := NewBufferFromBytes([]byte("one\ntwo\nthree"))

	removed, err := b.ReplaceRange(Position{0, 1}, Position{2, 2}, "X\nY")
	require.NoError(t, err)
	assert.Equal(t, "ne\ntwo\nth", removed)
	assert.Equal(t, "oX\nYree", b.GetCurrentContent())
	assert.Equal(t, 2, b.LineCount())

	// Reversed positions are accepted.
	removed, err = b.ReplaceRange(Position{1, 1}, Position{0, 1}, "")
	require.NoError(t, err)
	assert.Equal(t, "X\nY", removed)
	assert.Equal(t, "oree", b.GetCurrentContent())

	_, err = b.ReplaceRange(Position{5, 0}, Position{5, 0}, "x")
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestBuffer_InsertAndDeleteRunes(t *testing.T) {
	b := NewBuffer()

	require.NoError(t, b.InsertRunesAt(0, 0, []rune("hello\nworld")))
	assert.Equal(t, []string{"hello", "world"}, b.GetLines())

	require.NoError(t, b.DeleteRunesAt(0, 5, 1))
	assert.Equal(t, "helloworld", b.GetCurrentContent())

	assert.ErrorIs(t, b.InsertRunesAt(0, 99, []rune("x")), ErrInvalidPosition)
	assert.ErrorIs(t, b.DeleteRunesAt(3, 0, 1), ErrInvalidPosition)
	assert.NoError(t, b.DeleteRunesAt(0, 0, 0))
}

func TestBuffer_TextRange(t *testing.T) {
	b := NewBufferFromBytes([]byte("ab\ncd\nef"))
	assert.Equal(t, "b\ncd\ne", b.TextRange(Position{0, 1}, Position{2, 1}))
	assert.Equal(t, "c", b.TextRange(Position{1, 1}, Position{1, 0}))
}

func TestBuffer_SetCursorClamps(t *testing.T) {
	b := NewBufferFromBytes([]byte("ab\nc"))

	b.SetCursor(Cursor{Position: Position{Row: 9, Col: 9}})
	assert.Equal(t, Position{Row: 1, Col: 1}, b.GetCursor().Position)

	b.SetCursor(Cursor{Position: Position{Row: -1, Col: -1}})
	assert.Equal(t, Position{}, b.GetCursor().Position)
}

func TestBuffer_ModifiedTracking(t *testing.T) {
	b := NewBufferFromBytes([]byte("x"))
	assert.False(t, b.IsModified())

	require.NoError(t, b.InsertRunesAt(0, 1, []rune("y")))
	assert.True(t, b.IsModified())

	b.SaveContent()
	assert.False(t, b.IsModified())
	assert.Equal(t, "xy", b.GetSavedContent())
}
