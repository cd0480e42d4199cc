package core

import (
	"unicode/utf8"
)

// State represents the viewport state of the editor
type State struct {
	// Viewport information
	TopLine        int // First line visible in the viewport (0-indexed)
	LeftCol        int // First column visible in the viewport (0-indexed)
	ViewportHeight int // Number of lines that can be displayed
	ViewportWidth  int // Number of columns that can be displayed
}

// InitialState creates a default state
func InitialState() State {
	return State{
		TopLine:        0,
		LeftCol:        0,
		ViewportHeight: 24,
		ViewportWidth:  80,
	}
}

// Concrete implementation of Editor
type editor struct {
	buffer  Buffer
	state   State
	session Session
	version int

	history *history

	// anchor is the fixed end of the selection; nil when nothing is selected.
	anchor *Position

	highlights []Span

	clipboard    Clipboard // Clipboard interface for copy/paste
	updateSignal chan Signal
}

const defaultMaxHistory = 1000

// New creates a new editor instance
func New(clipboard Clipboard) Editor {
	return &editor{
		buffer:       NewBuffer(),
		state:        InitialState(),
		session:      DefaultSession(),
		history:      newHistory(defaultMaxHistory),
		clipboard:    clipboard,
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}
}

// SetMaxHistory allows setting the maximum number of undo steps.
// Default is 1000.
func (e *editor) SetMaxHistory(max uint32) {
	e.history.setLimit(int(max))
}

func (e *editor) GetBuffer() Buffer {
	return e.buffer
}

// SetContent replaces the document without touching the current file binding.
func (e *editor) SetContent(content []byte) {
	e.replaceDocument(content)
}

// replaceDocument swaps in a fresh buffer and forgets everything tied to the
// previous content: history, selection and highlights.
func (e *editor) replaceDocument(content []byte) {
	e.buffer = NewBufferFromBytes(content)
	e.history.reset()
	e.anchor = nil
	e.highlights = nil
	e.state.TopLine = 0
	e.state.LeftCol = 0
	e.version++
}

func (e *editor) Version() int {
	return e.version
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal // Return the read-only channel
}

func (e *editor) GetState() State {
	return e.state
}

// SetState allows renderers to report the viewport size
func (e *editor) SetState(state State) {
	e.state = state
}

// ScrollViewport ensures the cursor is within the visible area
func (e *editor) ScrollViewport() {
	pos := e.buffer.GetCursor().Position

	if pos.Row < e.state.TopLine {
		e.state.TopLine = pos.Row
	} else if e.state.ViewportHeight > 0 && pos.Row >= e.state.TopLine+e.state.ViewportHeight {
		// Scroll down so cursor is on the last line of the viewport
		e.state.TopLine = pos.Row - e.state.ViewportHeight + 1
	}

	if pos.Col < e.state.LeftCol {
		e.state.LeftCol = pos.Col
	} else if e.state.ViewportWidth > 0 && pos.Col >= e.state.LeftCol+e.state.ViewportWidth {
		e.state.LeftCol = pos.Col - e.state.ViewportWidth + 1
	}

	e.state.TopLine = max(e.state.TopLine, 0)
	e.state.LeftCol = max(e.state.LeftCol, 0)
}

// --- Cursor & Selection ---

// SetCursor moves the cursor to pos. With extend the selection grows from
// its anchor (or from the old cursor position); otherwise it is cleared.
func (e *editor) SetCursor(pos Position, extend bool) {
	cursor := e.buffer.GetCursor()
	if extend {
		if e.anchor == nil {
			anchor := cursor.Position
			e.anchor = &anchor
		}
	} else {
		e.anchor = nil
	}

	cursor.Position = pos
	cursor.Preferred = pos.Col
	e.buffer.SetCursor(cursor)
	e.history.seal()
	e.dropEmptySelection()
}

func (e *editor) moveCursor(extend bool, move func(*Cursor)) {
	cursor := e.buffer.GetCursor()
	if extend && e.anchor == nil {
		anchor := cursor.Position
		e.anchor = &anchor
	} else if !extend {
		e.anchor = nil
	}

	move(&cursor)
	e.buffer.SetCursor(cursor)
	e.history.seal()
	e.dropEmptySelection()
}

func (e *editor) dropEmptySelection() {
	if e.anchor != nil && *e.anchor == e.buffer.GetCursor().Position {
		e.anchor = nil
	}
}

// Selection returns the selected range in document order.
func (e *editor) Selection() (start, end Position, ok bool) {
	if e.anchor == nil {
		return Position{}, Position{}, false
	}
	start, end = NormalizeSelection(*e.anchor, e.buffer.GetCursor().Position)
	return start, end, start != end
}

func (e *editor) ClearSelection() {
	e.anchor = nil
}

// NormalizeSelection orders two positions.
func NormalizeSelection(a, b Position) (start, end Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// GetSelectionStatus reports whether the rune at pos is selected. The
// selection is half-open: the rune under the far end is not included.
func (e *editor) GetSelectionStatus(pos Position) SelectionType {
	start, end, ok := e.Selection()
	if !ok {
		return SelectionNone
	}
	if !pos.Before(start) && pos.Before(end) {
		return SelectionCharacter
	}
	return SelectionNone
}

// --- Edits & History ---

// replace swaps [start, end) for text as one undoable step and leaves the
// cursor after the inserted text. Any edit invalidates search highlights.
func (e *editor) replace(start, end Position, text string, mergeable bool) error {
	start, end = NormalizeSelection(start, end)
	if start == end && text == "" {
		return nil
	}

	before := e.buffer.GetCursor().Position
	offset := e.buffer.OffsetOf(start)

	removed, err := e.buffer.ReplaceRange(start, end, text)
	if err != nil {
		return err
	}

	after := e.buffer.PositionOf(offset + utf8.RuneCountInString(text))
	e.buffer.SetCursor(Cursor{Position: after, Preferred: after.Col})

	e.history.record(editOp{
		offset:       offset,
		removed:      removed,
		inserted:     text,
		cursorBefore: before,
		cursorAfter:  after,
	}, mergeable)

	e.anchor = nil
	e.highlights = nil
	e.version++
	return nil
}

// InsertText inserts text at the cursor, replacing the selection if any.
func (e *editor) InsertText(text string) error {
	return e.insert(text, false)
}

func (e *editor) insert(text string, typed bool) error {
	pos := e.buffer.GetCursor().Position
	start, end := pos, pos
	if s, t, ok := e.Selection(); ok {
		start, end = s, t
	}
	return e.replace(start, end, text, typed && text != "\n")
}

func (e *editor) CanUndo() bool { return len(e.history.undo) > 0 }

func (e *editor) CanRedo() bool { return len(e.history.redo) > 0 }

// Undo reverts the most recent edit. With nothing to undo it returns
// ErrNothingToUndo and changes nothing.
func (e *editor) Undo() error {
	op, ok := e.history.popUndo()
	if !ok {
		return ErrNothingToUndo
	}

	start := e.buffer.PositionOf(op.offset)
	end := e.buffer.PositionOf(op.insertedEnd())
	if _, err := e.buffer.ReplaceRange(start, end, op.removed); err != nil {
		return err
	}

	e.buffer.SetCursor(Cursor{Position: op.cursorBefore, Preferred: op.cursorBefore.Col})
	e.afterHistoryStep()
	return nil
}

// Redo reapplies the most recently undone edit. With nothing to redo it
// returns ErrNothingToRedo and changes nothing.
func (e *editor) Redo() error {
	op, ok := e.history.popRedo()
	if !ok {
		return ErrNothingToRedo
	}

	start := e.buffer.PositionOf(op.offset)
	end := e.buffer.PositionOf(op.removedEnd())
	if _, err := e.buffer.ReplaceRange(start, end, op.inserted); err != nil {
		return err
	}

	e.buffer.SetCursor(Cursor{Position: op.cursorAfter, Preferred: op.cursorAfter.Col})
	e.afterHistoryStep()
	return nil
}

func (e *editor) afterHistoryStep() {
	e.anchor = nil
	e.highlights = nil
	e.version++
	e.ScrollViewport()
}
