package core

import (
	"errors"
	"log"
)

var (
	ErrInvalidPosition    = errors.New("invalid position")
	ErrOpenFailed         = errors.New("cannot open file")
	ErrSaveFailed         = errors.New("cannot save file")
	ErrNoCurrentFile      = errors.New("no current file")
	ErrNotUTF8            = errors.New("file is not valid UTF-8")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrNothingToRedo      = errors.New("nothing to redo")
	ErrFontSizeOutOfRange = errors.New("font size out of range")
	ErrInvalidColor       = errors.New("invalid color")
	ErrClipboard          = errors.New("clipboard unavailable")
	ErrUnknownAction      = errors.New("unknown action")
)

// ErrorId tells consumers of ErrorSignal which operation failed.
type ErrorId int

const (
	ErrOpenFailedId ErrorId = iota
	ErrSaveFailedId
	ErrCopyFailedId
	ErrCutFailedId
	ErrPasteFailedId
)

type Error struct {
	id  ErrorId
	err error
}

func (e *editor) DispatchError(id ErrorId, err error) {
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}

// IsHistoryExhausted reports whether err only means there was no step to
// undo or redo. Such errors are never shown to the user.
func IsHistoryExhausted(err error) bool {
	return errors.Is(err, ErrNothingToUndo) || errors.Is(err, ErrNothingToRedo)
}
