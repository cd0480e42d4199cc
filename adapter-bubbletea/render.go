package adapter_bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/gonote/adapter-bubbletea/highlighter"
	editor "github.com/ionut-t/gonote/core"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

// cellText is what a rune is drawn as. Tabs expand to spaces and other
// control characters use caret notation so every rune occupies a cell.
func cellText(r rune) string {
	switch {
	case r == '\t':
		return strings.Repeat(" ", tabWidth)
	case r < 0x20:
		return "^" + string(r+'@')
	case r == 0x7f:
		return "^?"
	}
	return string(r)
}

// lineCellText is cellText for runes[i], except that the carriage return of
// a CRLF line ending is drawn as a blank cell.
func lineCellText(runes []rune, i int) string {
	if i == len(runes)-1 && runes[i] == '\r' {
		return " "
	}
	return cellText(runes[i])
}

func lineCellWidth(runes []rune, i int) int {
	return max(uniseg.StringWidth(lineCellText(runes, i)), 1)
}

// spanWidth returns the screen width of runes[from:to].
func spanWidth(runes []rune, from, to int) int {
	from = max(from, 0)
	to = min(to, len(runes))

	width := 0
	for i := from; i < to; i++ {
		width += lineCellWidth(runes, i)
	}
	return width
}

func (m *Model) textStyle(theme Theme) lipgloss.Style {
	if color := m.editor.Session().FontColor; color != "" {
		return theme.TextStyle.Foreground(lipgloss.Color(color))
	}
	return theme.TextStyle
}

// renderVisibleSlice draws the rows of the document that fall inside the
// viewport into it.
func (m *Model) renderVisibleSlice() {
	buffer := m.editor.GetBuffer()
	state := m.editor.GetState()
	theme := m.theme()
	text := m.textStyle(theme)
	h := m.syncHighlighter()

	lines := make([]string, 0, m.viewport.Height)

	for i := range m.viewport.Height {
		row := state.TopLine + i
		if row >= buffer.LineCount() {
			lines = append(lines, text.Render(strings.Repeat(" ", max(m.width, 0))))
			continue
		}
		lines = append(lines, m.renderLine(row, state.LeftCol, theme, text, h))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderLine styles each visible cell of a row. Priority, highest first:
// cursor, search highlight, selection, syntax token, plain text.
func (m *Model) renderLine(row, leftCol int, theme Theme, text lipgloss.Style, h *highlighter.Highlighter) string {
	buffer := m.editor.GetBuffer()
	runes := buffer.GetLineRunes(row)
	cursor := buffer.GetCursor().Position
	ranges := m.editor.LineHighlights(row)

	var tokens []highlighter.TokenPosition
	if h != nil {
		tokens = highlighter.GetTokenPositions(h.GetTokensForLine(row))
	}

	var sb strings.Builder
	used := 0

	for col := leftCol; col <= len(runes); col++ {
		pos := editor.Position{Row: row, Col: col}
		isCursor := m.isFocused && pos == cursor
		highlighted := inRanges(ranges, col)
		selected := m.editor.GetSelectionStatus(pos) != editor.SelectionNone

		var cell string
		if col == len(runes) {
			// The line break only takes a cell when something marks it.
			if !isCursor && !highlighted && !selected {
				break
			}
			cell = " "
		} else {
			cell = lineCellText(runes, col)
		}

		w := max(uniseg.StringWidth(cell), 1)
		if used+w > m.width {
			break
		}

		style := text
		if tokens != nil && col < len(runes) {
			if tok, ok := highlighter.FindTokenAtPosition(tokens, col); ok {
				style = h.GetStyleForToken(tok.Type).Inherit(text)
			}
		}

		switch {
		case isCursor:
			style = theme.CursorStyle
		case highlighted:
			style = theme.HighlightStyle
		case selected:
			style = theme.SelectionStyle
		}

		sb.WriteString(style.Render(cell))
		used += w
	}

	if row == 0 && m.placeholder != "" && buffer.IsEmpty() && used < m.width {
		placeholder := theme.PlaceholderStyle.MaxWidth(m.width - used).Render(m.placeholder)
		sb.WriteString(placeholder)
		used += lipgloss.Width(placeholder)
	}

	if used < m.width {
		sb.WriteString(text.Render(strings.Repeat(" ", m.width-used)))
	}

	return sb.String()
}

func inRanges(ranges []editor.ColRange, col int) bool {
	for _, r := range ranges {
		if col >= r.Start && col < r.End {
			return true
		}
	}
	return false
}

// positionAt maps a screen cell to a document position. Clicks past the end
// of a line land on its end; clicks below the last line land on the
// document's end.
func (m *Model) positionAt(x, y int) (editor.Position, bool) {
	x -= m.offsetX
	y -= m.offsetY
	if x < 0 || y < 0 || x >= m.width || y >= m.viewport.Height {
		return editor.Position{}, false
	}

	buffer := m.editor.GetBuffer()
	state := m.editor.GetState()

	row := state.TopLine + y
	if row >= buffer.LineCount() {
		last := buffer.LineCount() - 1
		return editor.Position{Row: last, Col: buffer.LineRuneCount(last)}, true
	}

	runes := buffer.GetLineRunes(row)
	used := 0
	for col := state.LeftCol; col < len(runes); col++ {
		w := lineCellWidth(runes, col)
		if x < used+w {
			return editor.Position{Row: row, Col: col}, true
		}
		used += w
	}

	return editor.Position{Row: row, Col: len(runes)}, true
}
