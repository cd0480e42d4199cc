package core

import "fmt"

// Copy writes the selected text to the clipboard. Without a selection it
// does nothing.
func (e *editor) Copy() error {
	_, err := e.copySelection(false)
	return err
}

// Cut copies the selection, then deletes it as one undoable edit.
func (e *editor) Cut() error {
	copied, err := e.copySelection(true)
	if err != nil || !copied {
		return err
	}

	start, end, _ := e.Selection()
	return e.replace(start, end, "", false)
}

func (e *editor) copySelection(cut bool) (bool, error) {
	start, end, ok := e.Selection()
	if !ok {
		return false, nil
	}

	id := ErrCopyFailedId
	if cut {
		id = ErrCutFailedId
	}

	if e.clipboard == nil {
		return false, e.clipboardError(id, fmt.Errorf("%w: clipboard handler not set", ErrClipboard))
	}

	content := e.buffer.TextRange(start, end)
	if err := e.clipboard.Write(content); err != nil {
		return false, e.clipboardError(id, fmt.Errorf("%w: %w", ErrClipboard, err))
	}

	e.DispatchSignal(CopySignal{content: content, cut: cut})
	return true, nil
}

// Paste inserts the clipboard text at the cursor, replacing the selection,
// as one undoable edit.
func (e *editor) Paste() error {
	if e.clipboard == nil {
		return e.clipboardError(ErrPasteFailedId, fmt.Errorf("%w: clipboard handler not set", ErrClipboard))
	}

	content, err := e.clipboard.Read()
	if err != nil {
		return e.clipboardError(ErrPasteFailedId, fmt.Errorf("%w: %w", ErrClipboard, err))
	}
	if content == "" {
		return nil
	}

	if err := e.InsertText(content); err != nil {
		return err
	}

	e.ScrollViewport()
	e.DispatchSignal(PasteSignal{content: content})
	return nil
}

func (e *editor) clipboardError(id ErrorId, err error) error {
	e.DispatchError(id, err)
	return err
}
