package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, content string) Editor {
	t.Helper()
	e := New(&memClipboard{})
	e.SetContent([]byte(content))
	return e
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want [][2]int
	}{
		{"single occurrence", "hello world", "world", [][2]int{{6, 11}}},
		{"absent", "hello world", "moon", nil},
		{"empty term", "hello", "", nil},
		{"overlapping candidates", "aaa", "aa", [][2]int{{0, 2}}},
		{"back to back", "aaaa", "aa", [][2]int{{0, 2}, {2, 4}}},
		{"whole document", "abc", "abc", [][2]int{{0, 3}}},
		{"case sensitive", "Go go GO", "go", [][2]int{{3, 5}}},
		{"rune offsets", "héllo héllo", "llo", [][2]int{{2, 5}, {8, 11}}},
		{"across lines", "ab\ncd", "b\nc", [][2]int{{1, 4}}},
		{"term longer than text", "ab", "abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			for _, s := range FindAll(tt.text, tt.term) {
				got = append(got, [2]int{s.Start, s.End})
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_SingleMatchSpan(t *testing.T) {
	e := newTestEditor(t, "first line\nsecond needle here")

	spans := e.Search("needle")
	require.Len(t, spans, 1)

	assert.Equal(t, 18, spans[0].Start)
	assert.Equal(t, 24, spans[0].End)
	assert.Equal(t, Position{Row: 1, Col: 7}, spans[0].From)
	assert.Equal(t, Position{Row: 1, Col: 13}, spans[0].To)
}

func TestSearch_AbsentTermClearsAndKeepsContent(t *testing.T) {
	content := "alpha beta gamma"
	e := newTestEditor(t, content)

	require.Len(t, e.Search("beta"), 1)

	spans := e.Search("delta")
	assert.Empty(t, spans)
	assert.Empty(t, e.Highlights())
	assert.Equal(t, content, e.GetBuffer().GetCurrentContent())
}

func TestSearch_EmptyTermClearsHighlights(t *testing.T) {
	e := newTestEditor(t, "abc abc")
	require.Len(t, e.Search("abc"), 2)

	assert.Empty(t, e.Search(""))
	assert.Empty(t, e.Highlights())
}

func TestSearch_EditInvalidatesHighlights(t *testing.T) {
	e := newTestEditor(t, "abc")
	require.Len(t, e.Search("b"), 1)

	require.NoError(t, e.InsertText("x"))
	assert.Empty(t, e.Highlights())
}

func TestLineHighlights(t *testing.T) {
	e := newTestEditor(t, "one two\ntwo\nthree")
	e.Search("two")

	assert.Equal(t, []ColRange{{Start: 4, End: 7}}, e.LineHighlights(0))
	assert.Equal(t, []ColRange{{Start: 0, End: 3}}, e.LineHighlights(1))
	assert.Empty(t, e.LineHighlights(2))
}

func TestLineHighlights_SpanCrossingLineBreak(t *testing.T) {
	e := newTestEditor(t, "ab\ncd\nef")
	e.Search("b\ncd\ne")

	assert.Equal(t, []ColRange{{Start: 1, End: 3}}, e.LineHighlights(0))
	assert.Equal(t, []ColRange{{Start: 0, End: 3}}, e.LineHighlights(1))
	assert.Equal(t, []ColRange{{Start: 0, End: 1}}, e.LineHighlights(2))
}

func TestCursorStatus(t *testing.T) {
	assert.Equal(t, "Line 3, Column 1", CursorStatus(Position{Row: 2, Col: 0}))
	assert.Equal(t, "Line 1, Column 1", CursorStatus(Position{}))

	e := newTestEditor(t, "ab\ncd\nef")
	e.SetCursor(Position{Row: 1, Col: 2}, false)
	assert.Equal(t, "Line 2, Column 3", e.CursorStatus())
}
