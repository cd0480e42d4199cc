package core

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (rune position in the line)
}

// Before reports whether p comes strictly before other in document order.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// SelectionType indicates the selection status of a position
type SelectionType int

const (
	SelectionNone      SelectionType = iota // Position is not selected
	SelectionCharacter                      // Position is part of the active selection
)

// Editor represents the main editor interface
type Editor interface {
	// Buffer manipulation
	GetBuffer() Buffer
	SetContent([]byte) // Replace the document, keeping the current file binding
	Version() int      // Incremented on every content change

	// Document lifecycle
	New()                     // Empty document, no current file
	Open(path string) error   // Load path; buffer is untouched on failure
	Save() error              // Write to the current file (ErrNoCurrentFile if unbound)
	SaveAs(path string) error // Write to path and bind it on success
	CurrentFile() string

	// Session
	Session() Session
	SetFontSize(size int) error
	SetFontColor(color string) error
	ToggleDarkMode() bool

	// Event handling
	HandleKey(key KeyEvent) error // Process a key press
	InsertText(text string) error // Insert text at the cursor, replacing the selection

	// State Management
	GetState() State // Get the current viewport state
	SetState(State)  // Update the viewport state (used by renderers)
	ScrollViewport() // Keep the cursor inside the viewport
	CursorStatus() string

	// Cursor and selection
	SetCursor(pos Position, extend bool)
	Selection() (start, end Position, ok bool)
	ClearSelection()
	GetSelectionStatus(pos Position) SelectionType

	// History management
	Undo() error
	Redo() error
	CanUndo() bool
	CanRedo() bool
	SetMaxHistory(max uint32)

	// Clipboard
	Cut() error
	Copy() error
	Paste() error

	// Search
	Search(term string) []Span
	Highlights() []Span
	ClearHighlights()
	LineHighlights(row int) []ColRange

	GetUpdateSignalChan() <-chan Signal  // For UI updates
	DispatchError(id ErrorId, err error) // Dispatch errors to consumers
	DispatchMessage(args ...string)      // Dispatch (success) messages to consumers
	DispatchSignal(signal Signal)        // Dispatch signals to consumers
}

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}
