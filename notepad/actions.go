package notepad

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/gonote/core"
)

func (m *Model) newDocument() tea.Cmd {
	m.ed().New()
	return nil
}

func (m *Model) openFile() tea.Cmd {
	m.overlay = overlayPicker
	m.editor.Blur()
	return m.picker.open(startDir(m.ed().CurrentFile()), m.width, m.pickerHeight())
}

// save writes to the current file, falling back to Save As when the
// document has never been saved.
func (m *Model) save() tea.Cmd {
	err := m.ed().Save()
	if errors.Is(err, core.ErrNoCurrentFile) {
		return m.saveAs()
	}
	return m.handleError(err)
}

func (m *Model) saveAs() tea.Cmd {
	return m.openPrompt(promptSaveAs, m.ed().CurrentFile())
}

func (m *Model) confirmQuit() tea.Cmd {
	body := "Quit gonote?"
	if m.editor.HasChanges() {
		name := strings.TrimSuffix(m.editor.FileLabel(), "*")
		body = fmt.Sprintf("%s has unsaved changes that will be lost. Quit anyway?", name)
	}

	m.showDialog(newConfirm("Quit", body))
	m.onConfirm = func(m *Model) tea.Cmd {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// confirmReplace asks before Save As writes over a file other than the
// current one.
func (m *Model) confirmReplace(path string) {
	m.showDialog(newConfirm("Save As", fmt.Sprintf("%s already exists. Replace it?", filepath.Base(path))))
	m.onConfirm = func(m *Model) tea.Cmd {
		return m.handleError(m.ed().SaveAs(path))
	}
}

func (m *Model) undo() tea.Cmd {
	return m.handleError(m.ed().Undo())
}

func (m *Model) redo() tea.Cmd {
	return m.handleError(m.ed().Redo())
}

func (m *Model) cut() tea.Cmd {
	return m.handleError(m.ed().Cut())
}

func (m *Model) copy() tea.Cmd {
	return m.handleError(m.ed().Copy())
}

func (m *Model) paste() tea.Cmd {
	return m.handleError(m.ed().Paste())
}

func (m *Model) find() tea.Cmd {
	return m.openPrompt(promptFind, "")
}

func (m *Model) fontSize() tea.Cmd {
	return m.openPrompt(promptFontSize, strconv.Itoa(m.ed().Session().FontSize))
}

func (m *Model) fontColor() tea.Cmd {
	return m.openPrompt(promptFontColor, m.ed().Session().FontColor)
}

func (m *Model) toggleDarkMode() tea.Cmd {
	m.ed().ToggleDarkMode()
	return nil
}

func parseFontSize(value string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number between %d and %d",
			core.ErrFontSizeOutOfRange, value, core.MinFontSize, core.MaxFontSize)
	}
	return size, nil
}
