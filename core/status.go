package core

import "fmt"

// CursorStatus renders pos as a 1-indexed "Line L, Column C" string.
func CursorStatus(pos Position) string {
	return fmt.Sprintf("Line %d, Column %d", pos.Row+1, pos.Col+1)
}

func (e *editor) CursorStatus() string {
	return CursorStatus(e.buffer.GetCursor().Position)
}
