package core

import (
	"fmt"
	"strings"
)

// Buffer represents the text content being edited (Using Runes)
type Buffer interface {
	// Content access
	GetLines() []string              // Get lines as strings (for display)
	GetLineRunes(lineNum int) []rune // Get specific line as runes (for editing)
	LineRuneCount(lineNum int) int   // Get rune count for a line
	GetSavedContent() string         // Get saved buffer content as a string
	GetCurrentContent() string       // Get entire buffer content as a string
	LineCount() int                  // Get number of lines
	RuneCount() int                  // Total runes, counting each line break as one

	// Modification
	InsertRunesAt(row, col int, runes []rune) error                // Insert runes (handles newlines)
	DeleteRunesAt(row, col int, count int) error                   // Delete runes (handles newlines)
	ReplaceRange(start, end Position, text string) (string, error) // Replace [start, end), returning the removed text
	TextRange(start, end Position) string                          // Text in [start, end)

	// Offsets
	OffsetOf(pos Position) int      // Rune offset of pos from the document start
	PositionOf(offset int) Position // Inverse of OffsetOf, clamped to the document

	// Cursor
	GetCursor() Cursor
	SetCursor(Cursor)

	IsModified() bool          // Check if buffer has been modified
	SaveContent()              // Mark the current content as saved
	SetContent(content []byte) // Set content (from file or other source)
	IsEmpty() bool             // Check if buffer is empty
}

// textBuffer implementation using runes for better unicode handling
type textBuffer struct {
	lines        [][]rune // Store lines as slices of runes
	cursor       Cursor
	savedContent string
}

// NewBuffer creates a new empty buffer
func NewBuffer() Buffer {
	return &textBuffer{
		lines:  [][]rune{{}}, // Start with one empty line
		cursor: Cursor{Position: Position{0, 0}, Preferred: 0},
	}
}

func NewBufferFromBytes(content []byte) Buffer {
	b := textBuffer{
		lines:  [][]rune{{}},
		cursor: Cursor{Position: Position{0, 0}, Preferred: 0},
	}

	b.SetContent(content)
	b.SaveContent()
	return &b
}

func (b *textBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// SetContent splits content on line feeds only, so a later GetCurrentContent
// returns exactly the same bytes (trailing newline and carriage returns included).
func (b *textBuffer) SetContent(content []byte) {
	b.lines = splitRuneLines(string(content))
	b.SetCursor(b.cursor)
}

func splitRuneLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

func (b *textBuffer) GetLines() []string {
	linesStr := make([]string, len(b.lines))
	for i, r := range b.lines {
		linesStr[i] = string(r)
	}
	return linesStr
}

func (b *textBuffer) GetLineRunes(lineNum int) []rune {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return nil
	}
	return b.lines[lineNum]
}

func (b *textBuffer) LineRuneCount(lineNum int) int {
	if lineNum < 0 || lineNum >= len(b.lines) {
		return 0
	}
	return len(b.lines[lineNum])
}

func (b *textBuffer) IsModified() bool {
	return b.savedContent != b.GetCurrentContent()
}

func (b *textBuffer) SaveContent() {
	b.savedContent = b.GetCurrentContent()
}

// GetCurrentContent returns the entire buffer content as a string
func (b *textBuffer) GetCurrentContent() string {
	return strings.Join(b.GetLines(), "\n")
}

// GetSavedContent returns the saved content as a string
func (b *textBuffer) GetSavedContent() string {
	return b.savedContent
}

func (b *textBuffer) LineCount() int {
	return len(b.lines)
}

func (b *textBuffer) RuneCount() int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		total += len(line)
	}
	return total
}

func (b *textBuffer) GetCursor() Cursor {
	return b.cursor
}

// SetCursor sets the cursor position, validating and clamping it.
func (b *textBuffer) SetCursor(cursor Cursor) {
	cursor.Position = b.clamp(cursor.Position)
	b.cursor = cursor
}

func (b *textBuffer) clamp(pos Position) Position {
	if pos.Row < 0 {
		pos.Row = 0
	} else if pos.Row >= len(b.lines) {
		pos.Row = max(len(b.lines)-1, 0)
	}

	lineLen := b.LineRuneCount(pos.Row)
	if pos.Col < 0 {
		pos.Col = 0
	} else if pos.Col > lineLen {
		// Allow the position one *past* the end of the line
		pos.Col = lineLen
	}
	return pos
}

func (b *textBuffer) valid(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(b.lines) &&
		pos.Col >= 0 && pos.Col <= len(b.lines[pos.Row])
}

// OffsetOf converts pos (clamped) to a rune offset from the document start.
func (b *textBuffer) OffsetOf(pos Position) int {
	pos = b.clamp(pos)
	offset := 0
	for r := 0; r < pos.Row; r++ {
		offset += len(b.lines[r]) + 1
	}
	return offset + pos.Col
}

// PositionOf converts a rune offset back into a position.
func (b *textBuffer) PositionOf(offset int) Position {
	if offset <= 0 {
		return Position{}
	}
	for r, line := range b.lines {
		if offset <= len(line) {
			return Position{Row: r, Col: offset}
		}
		offset -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Position{Row: last, Col: len(b.lines[last])}
}

// --- Buffer Modification ---

// InsertRunesAt inserts runes at the specified position. Handles newlines correctly.
func (b *textBuffer) InsertRunesAt(row, col int, runes []rune) error {
	pos := Position{Row: row, Col: col}
	if !b.valid(pos) {
		return fmt.Errorf("InsertRunesAt: %w: %d:%d", ErrInvalidPosition, row, col)
	}
	_, err := b.ReplaceRange(pos, pos, string(runes))
	return err
}

// DeleteRunesAt deletes count runes starting at the specified position. A line
// break counts as one rune, so deleting past the end of a line merges lines.
func (b *textBuffer) DeleteRunesAt(row, col int, count int) error {
	if count <= 0 {
		return nil
	}

	start := Position{Row: row, Col: col}
	if !b.valid(start) {
		return fmt.Errorf("DeleteRunesAt: %w: %d:%d", ErrInvalidPosition, row, col)
	}

	end := b.PositionOf(b.OffsetOf(start) + count)
	_, err := b.ReplaceRange(start, end, "")
	return err
}

// ReplaceRange replaces the text between start and end with text. The two
// positions may be given in either order.
func (b *textBuffer) ReplaceRange(start, end Position, text string) (string, error) {
	if !b.valid(start) || !b.valid(end) {
		return "", fmt.Errorf("ReplaceRange: %w: %v-%v", ErrInvalidPosition, start, end)
	}
	if end.Before(start) {
		start, end = end, start
	}

	removed := b.TextRange(start, end)

	head := append([]rune(nil), b.lines[start.Row][:start.Col]...)
	tail := append([]rune(nil), b.lines[end.Row][end.Col:]...)

	inserted := splitRuneLines(text)
	inserted[0] = append(head, inserted[0]...)
	last := len(inserted) - 1
	inserted[last] = append(inserted[last], tail...)

	lines := make([][]rune, 0, len(b.lines)-(end.Row-start.Row)+last)
	lines = append(lines, b.lines[:start.Row]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[end.Row+1:]...)
	b.lines = lines

	b.SetCursor(b.cursor)

	return removed, nil
}

// TextRange returns the text between start and end, in document order.
func (b *textBuffer) TextRange(start, end Position) string {
	start, end = b.clamp(start), b.clamp(end)
	if end.Before(start) {
		start, end = end, start
	}

	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		sb.WriteRune('\n')
		sb.WriteString(string(b.lines[r]))
	}
	sb.WriteRune('\n')
	sb.WriteString(string(b.lines[end.Row][:end.Col]))
	return sb.String()
}
