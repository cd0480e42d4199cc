package core

// Cursor represents the current position for editing operations
type Cursor struct {
	Position  Position // Current position (row, column)
	Preferred int      // Preferred column for vertical movement (sticky column)
}

// --- Cursor Movement ---

// clampCol ensures the column stays within the valid range for the given line
func (c *Cursor) clampCol(buffer Buffer) {
	lineLen := buffer.LineRuneCount(c.Position.Row)
	if c.Position.Col > lineLen {
		c.Position.Col = lineLen
	}
	if c.Position.Col < 0 {
		c.Position.Col = 0
	}
}

// MoveLeft moves the cursor one rune left, wrapping to the end of the
// previous line.
func (c *Cursor) MoveLeft(buffer Buffer) error {
	if c.Position.Col > 0 {
		c.Position.Col--
	} else if c.Position.Row > 0 {
		c.Position.Row--
		c.Position.Col = buffer.LineRuneCount(c.Position.Row)
	} else {
		return ErrInvalidPosition
	}
	c.Preferred = c.Position.Col
	return nil
}

// MoveRight moves the cursor one rune right, wrapping to the start of the
// next line.
func (c *Cursor) MoveRight(buffer Buffer) error {
	if c.Position.Col < buffer.LineRuneCount(c.Position.Row) {
		c.Position.Col++
	} else if c.Position.Row < buffer.LineCount()-1 {
		c.Position.Row++
		c.Position.Col = 0
	} else {
		return ErrInvalidPosition
	}
	c.Preferred = c.Position.Col
	return nil
}

// MoveUp moves the cursor up by count lines, keeping the preferred column
func (c *Cursor) MoveUp(buffer Buffer, count int) error {
	if c.Position.Row <= 0 {
		return ErrInvalidPosition
	}
	c.Position.Row = max(c.Position.Row-count, 0)
	c.Position.Col = c.Preferred
	c.clampCol(buffer)
	return nil
}

// MoveDown moves the cursor down by count lines, keeping the preferred column
func (c *Cursor) MoveDown(buffer Buffer, count int) error {
	last := buffer.LineCount() - 1
	if c.Position.Row >= last {
		return ErrInvalidPosition
	}
	c.Position.Row = min(c.Position.Row+count, last)
	c.Position.Col = c.Preferred
	c.clampCol(buffer)
	return nil
}

func (c *Cursor) MoveToLineStart() {
	c.Position.Col = 0
	c.Preferred = 0
}

func (c *Cursor) MoveToLineEnd(buffer Buffer) {
	c.Position.Col = buffer.LineRuneCount(c.Position.Row)
	c.Preferred = c.Position.Col
}
