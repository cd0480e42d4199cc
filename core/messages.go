package core

import "log"

var (
	ChangesSavedMessage = "changes saved"
	NewDocumentMessage  = "new document"
	FileOpenedMessage   = "file opened"
	CopiedMessage       = "copied"
	CutMessage          = "cut"
	PastedMessage       = "pasted"
	DarkModeOnMessage   = "dark mode on"
	DarkModeOffMessage  = "dark mode off"
	FontSizeMessage     = "font size changed"
	FontColorMessage    = "font color changed"
)

func (e *editor) DispatchMessage(args ...string) {
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case e.updateSignal <- MessageSignal{id, value}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
