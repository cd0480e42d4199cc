package notepad

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type promptKind int

const (
	promptFind promptKind = iota
	promptSaveAs
	promptFontSize
	promptFontColor
)

var promptText = map[promptKind]struct{ title, hint string }{
	promptFind:      {"Find", "Highlights every match. Enter to search, Esc to cancel."},
	promptSaveAs:    {"Save As", "File path; .txt is added when there is no extension."},
	promptFontSize:  {"Font Size", "A whole number from 8 to 40."},
	promptFontColor: {"Font Color", "Hex color such as #ff8800. Empty resets to the theme."},
}

type promptResult int

const (
	promptPending promptResult = iota
	promptSubmitted
	promptCancelled
)

// promptModel is a single-line input box.
type promptModel struct {
	kind  promptKind
	input textinput.Model
}

func newPrompt(kind promptKind, value string) (promptModel, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 40
	ti.SetValue(value)
	ti.CursorEnd()

	switch kind {
	case promptFontSize:
		ti.CharLimit = 2
	case promptFontColor:
		ti.CharLimit = 7
		ti.Placeholder = "#rrggbb"
	case promptSaveAs:
		ti.Placeholder = "notes.txt"
	}

	cmd := ti.Focus()

	return promptModel{kind: kind, input: ti}, cmd
}

func (p promptModel) Value() string {
	return p.input.Value()
}

func (p promptModel) update(msg tea.Msg) (promptModel, promptResult, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			p.input.Blur()
			return p, promptSubmitted, nil
		case tea.KeyEsc:
			p.input.Blur()
			return p, promptCancelled, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)

	return p, promptPending, cmd
}

func (p promptModel) view(s styles) string {
	text := promptText[p.kind]

	return s.Box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		s.Title.Render(text.title),
		"",
		p.input.View(),
		"",
		s.Hint.Render(text.hint),
	))
}
