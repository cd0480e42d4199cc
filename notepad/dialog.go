package notepad

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/gonote/core"
)

type dialogKind int

const (
	dialogConfirm dialogKind = iota
	dialogError
)

type dialogResult int

const (
	dialogPending dialogResult = iota
	dialogOK
	dialogCancel
)

const dialogWidth = 48

// dialogModel is a modal box: an OK/Cancel confirmation or an error message
// dismissed by any key.
type dialogModel struct {
	kind   dialogKind
	title  string
	body   string
	cancel bool // Cancel button focused
}

func newConfirm(title, body string) dialogModel {
	return dialogModel{kind: dialogConfirm, title: title, body: body}
}

func newErrorDialog(err error) dialogModel {
	return dialogModel{kind: dialogError, title: errorTitle(err), body: err.Error()}
}

func errorTitle(err error) string {
	switch {
	case errors.Is(err, core.ErrOpenFailed):
		return "Cannot open file"
	case errors.Is(err, core.ErrSaveFailed):
		return "Cannot save file"
	case errors.Is(err, core.ErrClipboard):
		return "Clipboard error"
	case errors.Is(err, core.ErrFontSizeOutOfRange):
		return "Invalid font size"
	case errors.Is(err, core.ErrInvalidColor):
		return "Invalid font color"
	}
	return "Error"
}

func (d dialogModel) update(msg tea.KeyMsg) (dialogModel, dialogResult) {
	if d.kind == dialogError {
		return d, dialogOK
	}

	switch msg.String() {
	case "y", "Y":
		return d, dialogOK
	case "n", "N", "esc":
		return d, dialogCancel
	case "enter":
		if d.cancel {
			return d, dialogCancel
		}
		return d, dialogOK
	case "tab", "shift+tab", "left", "right":
		d.cancel = !d.cancel
	}

	return d, dialogPending
}

func (d dialogModel) view(s styles) string {
	box, title := s.Box, s.Title
	if d.kind == dialogError {
		box, title = s.ErrorBox, s.ErrorTitle
	}

	body := s.Body.Width(dialogWidth).Render(d.body)

	var buttons string
	if d.kind == dialogConfirm {
		ok, cancel := s.ButtonActive, s.Button
		if d.cancel {
			ok, cancel = s.Button, s.ButtonActive
		}
		buttons = ok.Render("OK") + s.Body.Render(" ") + cancel.Render("Cancel")
	} else {
		buttons = s.ButtonActive.Render("OK")
	}
	buttons = lipgloss.PlaceHorizontal(dialogWidth, lipgloss.Right, buttons,
		lipgloss.WithWhitespaceBackground(s.Body.GetBackground()))

	return box.Render(strings.Join([]string{
		title.Render(d.title),
		"",
		body,
		"",
		buttons,
	}, "\n"))
}
