package notepad

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	editor "github.com/ionut-t/gonote/adapter-bubbletea"
	"github.com/ionut-t/gonote/core"
)

const messageDuration = 3 * time.Second

type overlay int

const (
	overlayNone overlay = iota
	overlayMenu
	overlayPrompt
	overlayPicker
	overlayDialog
)

// Options configures a new notepad window.
type Options struct {
	Path        string // File opened at start; empty for an untitled document
	DarkMode    bool
	FontSize    int
	FontColor   string
	Syntax      bool   // Colour text with chroma, lexer picked by file name
	SyntaxTheme string // chroma style name
	Clipboard   core.Clipboard
}

// Model is the notepad application: a menu bar, the editor widget and a help
// line, with at most one overlay (menu, prompt, open dialog or modal) on top.
type Model struct {
	editor   editor.Model
	registry *Registry
	keys     keyMap
	help     help.Model
	menu     menuModel
	prompt   promptModel
	picker   pickerModel
	dialog   dialogModel
	overlay  overlay
	width    int
	height   int
	quitting bool

	// session is the last view state reported by the editor.
	session core.Session

	// onConfirm runs when the open confirmation dialog is accepted.
	onConfirm func(m *Model) tea.Cmd
}

func New(opts Options) Model {
	var widget editor.Model
	if opts.Clipboard != nil {
		widget = editor.NewWithEditor(core.New(opts.Clipboard), 80, 22)
	} else {
		widget = editor.New(80, 22)
	}

	widget.SetOffset(0, 1)
	widget.WithThemes(
		editorTheme(editor.LightTheme, lightPalette),
		editorTheme(editor.DarkTheme, darkPalette),
	)
	widget.SetPlaceholder("Start typing, or press F10 for the menu")
	widget.SetSyntaxHighlighting(opts.Syntax, opts.SyntaxTheme)
	widget.Focus()

	m := Model{
		editor:   widget,
		registry: DefaultRegistry(),
		keys:     newKeyMap(),
		help:     help.New(),
		picker:   newPicker(),
		width:    80,
		height:   24,
	}

	e := m.ed()
	if opts.DarkMode {
		e.ToggleDarkMode()
	}
	if opts.FontSize != 0 {
		m.report(e.SetFontSize(opts.FontSize))
	}
	if opts.FontColor != "" {
		m.report(e.SetFontColor(opts.FontColor))
	}
	if opts.Path != "" {
		m.report(e.Open(opts.Path))
	}

	m.session = e.Session()
	m.editor.Refresh()

	return m
}

// Registry exposes the action registry so callers can add or override
// handlers.
func (m *Model) Registry() *Registry {
	return m.registry
}

func (m *Model) ed() core.Editor {
	return m.editor.GetEditor()
}

func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.editor.Refresh()
		return m, cmd

	case tea.MouseMsg:
		if cmd, handled := m.handleMouse(msg); handled {
			m.editor.Refresh()
			return m, cmd
		}

	case editor.SaveMsg:
		cmds = append(cmds, m.editor.DispatchMessage(core.ChangesSavedMessage+" to "+msg.Path, messageDuration))

	case editor.OpenMsg:
		cmds = append(cmds, m.editor.DispatchMessage(core.FileOpenedMessage+": "+msg.Path, messageDuration))

	case editor.CopyMsg:
		cmds = append(cmds, m.editor.DispatchMessage(clipboardSummary(msg.Content, msg.Cut), messageDuration))

	case editor.PasteMsg:
		cmds = append(cmds, m.editor.DispatchMessage(core.PastedMessage+" "+characters(msg.Content), messageDuration))

	case editor.MessageMsg:
		cmds = append(cmds, m.editor.DispatchMessage(msg.Message, messageDuration))

	case editor.SearchResultsMsg:
		cmds = append(cmds, m.editor.DispatchMessage(matchSummary(msg.Term, len(msg.Spans)), messageDuration))

	case editor.SessionMsg:
		cmds = append(cmds, m.sessionChanged(msg.Session))

	case editor.ErrorMsg:
		// The failing action already raised a dialog; keep the reason in
		// the status line once it is dismissed.
		log.Printf("notepad: editor error %d: %v", msg.ID, msg.Error)
		cmds = append(cmds, m.editor.DispatchError(msg.Error, messageDuration))
	}

	// Non-key messages also drive the overlay components (directory
	// listings, cursor blink). Resizes were already applied by setSize.
	_, resize := msg.(tea.WindowSizeMsg)
	switch {
	case resize:
	case m.overlay == overlayPicker:
		cmds = append(cmds, m.updatePicker(msg))
	case m.overlay == overlayPrompt:
		var cmd tea.Cmd
		m.prompt, _, cmd = m.prompt.update(msg)
		cmds = append(cmds, cmd)
	}

	updated, cmd := m.editor.Update(msg)
	m.editor = updated.(editor.Model)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// One row for the menu bar, one for the help line.
	m.editor.SetSize(width, max(height-2, 2))

	if m.overlay == overlayPicker {
		m.picker.resize(width, m.pickerHeight())
	}
}

func (m *Model) pickerHeight() int {
	// Box border, title, blank lines and hint take seven rows.
	return max(m.height-2-7, 3)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.overlay {
	case overlayDialog:
		return m.updateDialog(msg)
	case overlayPrompt:
		return m.updatePrompt(msg)
	case overlayPicker:
		return m.updatePicker(msg)
	case overlayMenu:
		action, chosen := m.menu.update(msg, m.keys)
		if !m.menu.open {
			m.closeOverlay()
		}
		if chosen {
			return m.dispatch(action)
		}
		return nil
	}

	if key.Matches(msg, m.keys.Menu) {
		m.openMenu(0)
		return nil
	}

	if action, ok := m.keys.actionFor(msg); ok {
		return m.dispatch(action)
	}

	updated, cmd := m.editor.Update(msg)
	m.editor = updated.(editor.Model)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	switch m.overlay {
	case overlayNone:
		if press && msg.Y == 0 {
			if i, ok := titleAt(msg.X); ok {
				m.openMenu(i)
			}
			return nil, true
		}
		return nil, false

	case overlayMenu:
		if !press {
			return nil, true
		}
		if msg.Y == 0 {
			if i, ok := titleAt(msg.X); ok && i != m.menu.active {
				m.openMenu(i)
				return nil, true
			}
			m.closeOverlay()
			return nil, true
		}
		if item, ok := m.menu.itemAt(msg.X, msg.Y, m.ed().Session()); ok {
			action := menus[m.menu.active].actions[item]
			m.closeOverlay()
			return m.dispatch(action), true
		}
		m.closeOverlay()
		return nil, true
	}

	// Modal overlays swallow the mouse.
	return nil, true
}

// dispatch runs a named action through the registry.
func (m *Model) dispatch(action core.Action) tea.Cmd {
	cmd, err := m.registry.Dispatch(m, action)
	if err != nil {
		return m.handleError(err)
	}
	m.editor.Refresh()
	return cmd
}

// handleError reports err to the user in a modal. Undo and redo with nothing
// left in history are not errors from the user's point of view and are
// dropped.
func (m *Model) handleError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if core.IsHistoryExhausted(err) {
		return nil
	}

	log.Printf("notepad: %v", err)
	m.showDialog(newErrorDialog(err))
	return nil
}

// report is handleError for setup code that has no command to return.
func (m *Model) report(err error) {
	_ = m.handleError(err)
}

// sessionChanged reports which view option changed since the last session
// signal.
func (m *Model) sessionChanged(session core.Session) tea.Cmd {
	prev := m.session
	m.session = session

	var message string
	switch {
	case session.DarkMode != prev.DarkMode && session.DarkMode:
		message = core.DarkModeOnMessage
	case session.DarkMode != prev.DarkMode:
		message = core.DarkModeOffMessage
	case session.FontSize != prev.FontSize:
		message = fmt.Sprintf("%s to %dpt", core.FontSizeMessage, session.FontSize)
	case session.FontColor != prev.FontColor && session.FontColor == "":
		message = core.FontColorMessage + " to the theme default"
	case session.FontColor != prev.FontColor:
		message = fmt.Sprintf("%s to %s", core.FontColorMessage, session.FontColor)
	default:
		return nil
	}

	return m.editor.DispatchMessage(message, messageDuration)
}

func (m *Model) openMenu(index int) {
	m.menu.show(index)
	m.overlay = overlayMenu
	m.editor.Blur()
}

func (m *Model) openPrompt(kind promptKind, value string) tea.Cmd {
	var cmd tea.Cmd
	m.prompt, cmd = newPrompt(kind, value)
	m.overlay = overlayPrompt
	m.editor.Blur()
	return cmd
}

func (m *Model) showDialog(d dialogModel) {
	m.dialog = d
	m.overlay = overlayDialog
	m.editor.Blur()
}

func (m *Model) closeOverlay() {
	m.menu.close()
	m.overlay = overlayNone
	m.onConfirm = nil
	m.editor.Focus()
}

func (m *Model) updateDialog(msg tea.KeyMsg) tea.Cmd {
	var result dialogResult
	m.dialog, result = m.dialog.update(msg)

	switch result {
	case dialogOK:
		onConfirm := m.onConfirm
		m.closeOverlay()
		if onConfirm != nil {
			return onConfirm(m)
		}
	case dialogCancel:
		m.closeOverlay()
	}

	return nil
}

func (m *Model) updatePrompt(msg tea.Msg) tea.Cmd {
	var (
		result promptResult
		cmd    tea.Cmd
	)
	m.prompt, result, cmd = m.prompt.update(msg)

	switch result {
	case promptSubmitted:
		m.closeOverlay()
		return m.submitPrompt(m.prompt.kind, m.prompt.Value())
	case promptCancelled:
		m.closeOverlay()
		if m.prompt.kind == promptFind {
			// A cancelled search still clears the previous highlights.
			m.ed().ClearHighlights()
		}
	}

	return cmd
}

func (m *Model) submitPrompt(kind promptKind, value string) tea.Cmd {
	ed := m.ed()

	switch kind {
	case promptFind:
		ed.Search(value)
		return nil

	case promptSaveAs:
		path := core.WithDefaultExtension(strings.TrimSpace(value))
		if path == "" {
			return nil
		}
		if path != ed.CurrentFile() && core.FileExists(path) {
			m.confirmReplace(path)
			return nil
		}
		return m.handleError(ed.SaveAs(path))

	case promptFontSize:
		size, err := parseFontSize(value)
		if err != nil {
			return m.handleError(err)
		}
		return m.handleError(ed.SetFontSize(size))

	case promptFontColor:
		return m.handleError(ed.SetFontColor(strings.TrimSpace(value)))
	}

	return nil
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	var (
		result pickerResult
		path   string
		cmd    tea.Cmd
	)
	m.picker, result, path, cmd = m.picker.update(msg)

	switch result {
	case pickerSelected:
		m.closeOverlay()
		return tea.Batch(cmd, m.handleError(m.ed().Open(path)))
	case pickerRejected:
		return tea.Batch(cmd, m.editor.DispatchMessage(
			fmt.Sprintf("%s is not a text file; press Tab to list all files", filepath.Base(path)),
			messageDuration,
		))
	case pickerCancelled:
		m.closeOverlay()
	}

	return cmd
}

func matchSummary(term string, count int) string {
	switch {
	case term == "":
		return "Highlights cleared"
	case count == 1:
		return fmt.Sprintf("1 match for %q", term)
	}
	return fmt.Sprintf("%d matches for %q", count, term)
}

func clipboardSummary(content string, cut bool) string {
	verb := core.CopiedMessage
	if cut {
		verb = core.CutMessage
	}
	return verb + " " + characters(content)
}

func characters(text string) string {
	if n := utf8.RuneCountInString(text); n != 1 {
		return fmt.Sprintf("%d characters", n)
	}
	return "1 character"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := stylesFor(m.ed().Session().DarkMode)

	bar := m.menu.barView(m.width, s)
	body := m.editor.View()

	switch m.overlay {
	case overlayMenu:
		left := titleOffsets()[m.menu.active]
		body = placeOverlay(body, m.menu.dropdownView(s, m.ed().Session()), left, 0)
	case overlayPrompt:
		body = centerOverlay(body, m.prompt.view(s), m.width)
	case overlayDialog:
		body = centerOverlay(body, m.dialog.view(s), m.width)
	case overlayPicker:
		body = placeOverlay(body, m.picker.view(s, m.width), 0, 0)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		bar,
		body,
		m.help.View(m.keys),
	)
}

func centerOverlay(background, box string, width int) string {
	height := lipgloss.Height(background)
	x := max((width-lipgloss.Width(box))/2, 0)
	y := max((height-lipgloss.Height(box))/2, 0)
	return placeOverlay(background, box, x, y)
}

// placeOverlay draws box over background with its top-left corner at
// (x, y), keeping the background visible on either side.
func placeOverlay(background, box string, x, y int) string {
	bgLines := strings.Split(background, "\n")
	boxLines := strings.Split(box, "\n")

	for i, line := range boxLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bg := bgLines[row]
		left := ansi.Truncate(bg, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bg, x+ansi.StringWidth(line), "")
		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}
