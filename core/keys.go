package core

// HandleKey applies a typing or navigation key to the document. Shortcut
// keys (ctrl+letter) are resolved to actions by the caller with
// ActionForKey and are ignored here.
func (e *editor) HandleKey(key KeyEvent) error {
	extend := key.Modifiers&ModShift != 0
	page := max(e.state.ViewportHeight-1, 1)

	var err error

	switch key.Key {
	case KeyLeft:
		if start, _, ok := e.Selection(); ok && !extend {
			e.SetCursor(start, false)
			break
		}
		e.moveCursor(extend, func(c *Cursor) { c.MoveLeft(e.buffer) })

	case KeyRight:
		if _, end, ok := e.Selection(); ok && !extend {
			e.SetCursor(end, false)
			break
		}
		e.moveCursor(extend, func(c *Cursor) { c.MoveRight(e.buffer) })

	case KeyUp:
		e.moveCursor(extend, func(c *Cursor) { c.MoveUp(e.buffer, 1) })

	case KeyDown:
		e.moveCursor(extend, func(c *Cursor) { c.MoveDown(e.buffer, 1) })

	case KeyPageUp:
		e.moveCursor(extend, func(c *Cursor) { c.MoveUp(e.buffer, page) })

	case KeyPageDown:
		e.moveCursor(extend, func(c *Cursor) { c.MoveDown(e.buffer, page) })

	case KeyHome:
		e.moveCursor(extend, func(c *Cursor) { c.MoveToLineStart() })

	case KeyEnd:
		e.moveCursor(extend, func(c *Cursor) { c.MoveToLineEnd(e.buffer) })

	case KeyBackspace:
		err = e.deleteAdjacent(true)

	case KeyDelete:
		err = e.deleteAdjacent(false)

	case KeyEnter:
		err = e.insert("\n", true)

	case KeyTab:
		err = e.insert("\t", true)

	case KeySpace:
		err = e.insert(" ", true)

	case KeyEscape:
		e.ClearSelection()

	default:
		// Shortcuts belong to the caller
		if key.Rune != 0 && key.Modifiers&(ModCtrl|ModAlt) == 0 {
			err = e.insert(string(key.Rune), true)
		}
	}

	e.ScrollViewport()
	return err
}

// deleteAdjacent removes the selection, or else the rune before (backward)
// or after the cursor. At the document edges it does nothing.
func (e *editor) deleteAdjacent(backward bool) error {
	if start, end, ok := e.Selection(); ok {
		return e.replace(start, end, "", false)
	}

	pos := e.buffer.GetCursor().Position
	offset := e.buffer.OffsetOf(pos)

	if backward {
		if offset == 0 {
			return nil
		}
		return e.replace(e.buffer.PositionOf(offset-1), pos, "", false)
	}

	if offset >= e.buffer.RuneCount() {
		return nil
	}
	return e.replace(pos, e.buffer.PositionOf(offset+1), "", false)
}
