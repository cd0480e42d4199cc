package notepad

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/gonote/core"
)

var textFileTypes = []string{core.DefaultExtension}

type pickerResult int

const (
	pickerPending pickerResult = iota
	pickerSelected
	pickerRejected
	pickerCancelled
)

// pickerModel is the Open dialog: a file browser filtered to text files.
// Tab toggles between text files and all files.
type pickerModel struct {
	fp      filepicker.Model
	showAll bool
}

func newPicker() pickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = textFileTypes
	fp.ShowPermissions = false
	fp.ShowHidden = false

	return pickerModel{fp: fp}
}

// open points the picker at dir and starts reading it. height is the number
// of rows available for the listing.
func (p *pickerModel) open(dir string, width, height int) tea.Cmd {
	p.showAll = false
	p.fp.AllowedTypes = textFileTypes
	p.fp.CurrentDirectory = dir
	p.resize(width, height)

	return p.fp.Init()
}

// resize relies on the picker's auto height, which reserves rows below the
// listing; the extra rows added here are taken back by it.
func (p *pickerModel) resize(width, height int) {
	const pickerMarginBottom = 5
	p.fp, _ = p.fp.Update(tea.WindowSizeMsg{Width: width, Height: max(height, 1) + pickerMarginBottom})
}

func (p *pickerModel) toggleAll() tea.Cmd {
	p.showAll = !p.showAll
	if p.showAll {
		p.fp.AllowedTypes = nil
	} else {
		p.fp.AllowedTypes = textFileTypes
	}
	return p.fp.Init()
}

func (p pickerModel) update(msg tea.Msg) (pickerModel, pickerResult, string, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return p, pickerCancelled, "", nil
		case "tab":
			cmd := p.toggleAll()
			return p, pickerPending, "", cmd
		}
	}

	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)

	if ok, path := p.fp.DidSelectFile(msg); ok {
		return p, pickerSelected, path, cmd
	}
	if ok, path := p.fp.DidSelectDisabledFile(msg); ok {
		return p, pickerRejected, path, cmd
	}

	return p, pickerPending, "", cmd
}

func (p pickerModel) view(s styles, width int) string {
	filter := "Text files (*" + core.DefaultExtension + ")"
	if p.showAll {
		filter = "All files"
	}

	return s.Box.Width(max(width-2, 10)).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		s.Title.Render("Open")+s.Hint.Render("  "+p.fp.CurrentDirectory),
		"",
		p.fp.View(),
		"",
		s.Hint.Render(fmt.Sprintf("%s · Tab: toggle filter · Enter: open · Esc: cancel", filter)),
	))
}

// startDir is where the Open dialog starts: the current file's directory,
// else the working directory.
func startDir(currentFile string) string {
	if currentFile != "" {
		return filepath.Dir(currentFile)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
