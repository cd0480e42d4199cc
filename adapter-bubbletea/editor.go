package adapter_bubbletea

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/gonote/adapter-bubbletea/highlighter"
	editor "github.com/ionut-t/gonote/core"
)

type Theme struct {
	TextStyle        lipgloss.Style
	StatusLineStyle  lipgloss.Style
	FileNameStyle    lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	SelectionStyle   lipgloss.Style
	HighlightStyle   lipgloss.Style
	CursorStyle      lipgloss.Style
	PlaceholderStyle lipgloss.Style
}

var LightTheme = Theme{
	TextStyle:        lipgloss.NewStyle().Background(lipgloss.Color("#fafafa")).Foreground(lipgloss.Color("#1e1e1e")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("#dcdcdc")).Foreground(lipgloss.Color("#1e1e1e")),
	FileNameStyle:    lipgloss.NewStyle().Background(lipgloss.Color("#dcdcdc")).Foreground(lipgloss.Color("#1e1e1e")).Bold(true),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1a7f37")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#cf222e")),
	SelectionStyle:   lipgloss.NewStyle().Background(lipgloss.Color("#b4d5fe")).Foreground(lipgloss.Color("#1e1e1e")),
	HighlightStyle:   lipgloss.NewStyle().Background(lipgloss.Color("#ffff00")).Foreground(lipgloss.Color("#000000")),
	CursorStyle:      lipgloss.NewStyle().Background(lipgloss.Color("#1e1e1e")).Foreground(lipgloss.Color("#fafafa")),
	PlaceholderStyle: lipgloss.NewStyle().Background(lipgloss.Color("#fafafa")).Foreground(lipgloss.Color("#8c8c8c")),
}

var DarkTheme = Theme{
	TextStyle:        lipgloss.NewStyle().Background(lipgloss.Color("#1e1e1e")).Foreground(lipgloss.Color("#d4d4d4")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("#303030")).Foreground(lipgloss.Color("#d4d4d4")),
	FileNameStyle:    lipgloss.NewStyle().Background(lipgloss.Color("#303030")).Foreground(lipgloss.Color("#ffffff")).Bold(true),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#57ab5a")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#f47067")),
	SelectionStyle:   lipgloss.NewStyle().Background(lipgloss.Color("#264f78")).Foreground(lipgloss.Color("#ffffff")),
	HighlightStyle:   lipgloss.NewStyle().Background(lipgloss.Color("#ffff00")).Foreground(lipgloss.Color("#000000")),
	CursorStyle:      lipgloss.NewStyle().Background(lipgloss.Color("#d4d4d4")).Foreground(lipgloss.Color("#1e1e1e")),
	PlaceholderStyle: lipgloss.NewStyle().Background(lipgloss.Color("#1e1e1e")).Foreground(lipgloss.Color("#6e6e6e")),
}

const untitled = "Untitled"

type Model struct {
	editor          editor.Editor
	viewport        viewport.Model
	width           int
	height          int
	offsetX         int // Screen column of the text area's left edge
	offsetY         int // Screen row of the text area's top edge
	lightTheme      Theme
	darkTheme       Theme
	err             error
	message         string
	isFocused       bool
	placeholder     string
	clearMsgCancel  context.CancelFunc
	highlighter     *highlighter.Highlighter
	highlighterName string
	syntaxEnabled   bool
	syntaxTheme     string
	mouseDragging   bool
}

type ErrorMsg struct {
	ID    editor.ErrorId
	Error error
}

type SaveMsg struct {
	Path    string
	Content string
}

type OpenMsg struct {
	Path string
}

type MessageMsg struct {
	ID      string
	Message string
}

type SearchResultsMsg struct {
	Term  string
	Spans []editor.Span
}

type SessionMsg struct {
	Session editor.Session
}

type CopyMsg struct {
	Content string
	Cut     bool
}

type PasteMsg struct {
	Content string
}

// signalMsg carries a translated editor signal. The listener is re-armed
// only after one is received, so a single goroutine waits on the channel.
type signalMsg struct {
	msg tea.Msg
}

type clearMsg struct{}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

type clipboardImpl struct{}

func (c *clipboardImpl) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *clipboardImpl) Read() (string, error) {
	return clipboard.ReadAll()
}

// New creates an editor widget of the given outer size; the bottom row is
// the status line.
func New(width, height int) Model {
	return NewWithEditor(editor.New(&clipboardImpl{}), width, height)
}

// NewWithEditor wraps an existing core editor, e.g. one with a custom clipboard.
func NewWithEditor(e editor.Editor, width, height int) Model {
	m := Model{
		editor:      e,
		viewport:    viewport.New(width, max(height-1, 1)),
		lightTheme:  LightTheme,
		darkTheme:   DarkTheme,
		syntaxTheme: "monokai",
	}

	m.SetSize(width, height)

	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// The status line takes the last row.
	textHeight := max(height-1, 1)

	m.viewport.Width = width
	m.viewport.Height = textHeight

	state := m.editor.GetState()
	state.ViewportWidth = width
	state.ViewportHeight = textHeight
	m.editor.SetState(state)

	m.ScrollToCursor()
	m.renderVisibleSlice()
}

// SetOffset tells the widget where its top-left corner sits on screen so
// mouse coordinates can be mapped to document positions.
func (m *Model) SetOffset(x, y int) {
	m.offsetX = x
	m.offsetY = y
}

func (m *Model) SetBytes(content []byte) {
	m.editor.SetContent(content)
	m.Refresh()
}

func (m *Model) SetContent(content string) {
	m.SetBytes([]byte(content))
}

// WithThemes replaces the light and dark themes.
func (m *Model) WithThemes(light, dark Theme) {
	m.lightTheme = light
	m.darkTheme = dark
	m.renderVisibleSlice()
}

// SetSyntaxHighlighting turns chroma highlighting on or off. The lexer is
// chosen from the current file name whenever it changes.
func (m *Model) SetSyntaxHighlighting(enabled bool, theme string) {
	m.syntaxEnabled = enabled
	if theme != "" {
		m.syntaxTheme = theme
	}
	m.highlighter = nil
	m.renderVisibleSlice()
}

func (m *Model) syncHighlighter() *highlighter.Highlighter {
	if !m.syntaxEnabled {
		return nil
	}

	name := filepath.Base(m.editor.CurrentFile())
	if m.highlighter == nil || m.highlighterName != name {
		m.highlighter = highlighter.New(name, m.syntaxTheme)
		m.highlighterName = name
	}

	if m.highlighter.IsPlainText() {
		return nil
	}

	m.highlighter.Sync(m.editor.Version(), m.editor.GetBuffer().GetLines())

	return m.highlighter
}

func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil

	return m.dispatchClearMsg(duration)
}

func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.err = err
	m.message = ""

	return m.dispatchClearMsg(duration)
}

func (m *Model) GetSavedContent() string {
	return m.editor.GetBuffer().GetSavedContent()
}

func (m *Model) GetCurrentContent() string {
	return m.editor.GetBuffer().GetCurrentContent()
}

func (m *Model) HasChanges() bool {
	return m.editor.GetBuffer().IsModified()
}

// GetEditor returns the underlying core editor.
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

func (m *Model) Focus() {
	m.isFocused = true
}

func (m *Model) Blur() {
	m.isFocused = false
	m.mouseDragging = false
}

func (m *Model) IsFocused() bool {
	return m.isFocused
}

func (m *Model) SetPlaceholder(placeholder string) {
	m.placeholder = placeholder
}

func (m *Model) IsEmpty() bool {
	return m.editor.GetBuffer().IsEmpty()
}

// SetMaxHistory sets the maximum number of undo steps kept in memory.
// If set to 0, no history will be kept. The default value is 1000.
func (m *Model) SetMaxHistory(max uint32) {
	m.editor.SetMaxHistory(max)
}

// Refresh re-scrolls to the cursor and redraws. Callers that change the
// document through GetEditor() call it afterwards.
func (m *Model) Refresh() {
	m.ScrollToCursor()
	m.renderVisibleSlice()
}

// ScrollToCursor keeps the cursor inside the text area. The core scrolls by
// rune columns; wide runes and tabs are then accounted for here.
func (m *Model) ScrollToCursor() {
	m.editor.ScrollViewport()

	state := m.editor.GetState()
	if state.ViewportWidth <= 0 {
		return
	}

	cursor := m.editor.GetBuffer().GetCursor().Position
	runes := m.editor.GetBuffer().GetLineRunes(cursor.Row)

	for state.LeftCol < cursor.Col && spanWidth(runes, state.LeftCol, cursor.Col)+1 > state.ViewportWidth {
		state.LeftCol++
	}

	m.editor.SetState(state)
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}

		if msg.Paste {
			if err := m.editor.InsertText(string(msg.Runes)); err != nil {
				cmds = append(cmds, m.DispatchError(err, 3*time.Second))
			}
			break
		}

		// Fast typing can arrive as several runes in one message.
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 && !msg.Alt {
			for _, r := range msg.Runes {
				if err := m.editor.HandleKey(editor.KeyEvent{Rune: r}); err != nil {
					cmds = append(cmds, m.DispatchError(err, 3*time.Second))
					break
				}
			}
			break
		}

		if err := m.editor.HandleKey(convertBubbleKey(msg)); err != nil {
			cmds = append(cmds, m.DispatchError(err, 3*time.Second))
		}

	case tea.MouseMsg:
		if !m.IsFocused() {
			break
		}
		m.handleMouse(msg)

	case signalMsg:
		cmds = append(cmds, m.listenForEditorUpdate())
		if msg.msg != nil {
			forward := msg.msg
			cmds = append(cmds, func() tea.Msg { return forward })
		}

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil
	}

	m.ScrollToCursor()
	m.renderVisibleSlice()

	return m, tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.scrollLines(-3)

	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		m.scrollLines(3)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		pos, ok := m.positionAt(msg.X, msg.Y)
		if !ok {
			return
		}
		m.editor.SetCursor(pos, msg.Shift)
		m.mouseDragging = true

	case msg.Action == tea.MouseActionMotion && m.mouseDragging:
		if pos, ok := m.positionAt(msg.X, msg.Y); ok {
			m.editor.SetCursor(pos, true)
		}

	case msg.Action == tea.MouseActionRelease:
		m.mouseDragging = false
	}
}

// scrollLines moves the view without moving the cursor.
func (m *Model) scrollLines(delta int) {
	state := m.editor.GetState()
	last := max(m.editor.GetBuffer().LineCount()-state.ViewportHeight, 0)
	state.TopLine = min(max(state.TopLine+delta, 0), last)
	m.editor.SetState(state)

	// Keep the cursor on screen so the next ScrollToCursor does not undo the scroll.
	cursor := m.editor.GetBuffer().GetCursor().Position
	row := min(max(cursor.Row, state.TopLine), state.TopLine+state.ViewportHeight-1)
	if row != cursor.Row {
		_, _, selecting := m.editor.Selection()
		m.editor.SetCursor(editor.Position{Row: row, Col: cursor.Col}, selecting)
	}
}

func (m Model) View() string {
	content := m.viewport.View()
	statusLine := m.getStatusLine()

	theme := m.theme()
	paddingWidth := m.width - lipgloss.Width(statusLine)
	if paddingWidth > 0 {
		statusLine += theme.StatusLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		statusLine,
	)
}

func (m *Model) theme() Theme {
	if m.editor.Session().DarkMode {
		return m.darkTheme
	}
	return m.lightTheme
}

func (m *Model) getStatusLine() string {
	theme := m.theme()
	bg := theme.StatusLineStyle.GetBackground()

	var left string
	switch {
	case m.err != nil:
		left = theme.ErrorStyle.Background(bg).Render(" " + m.err.Error())
	case m.message != "":
		left = theme.MessageStyle.Background(bg).Render(" " + m.message)
	default:
		left = theme.FileNameStyle.Render(" " + m.FileLabel())
	}

	session := m.editor.Session()
	right := m.editor.CursorStatus() + "   " + strconv.Itoa(session.FontSize) + "pt "
	if m.syntaxEnabled && m.highlighter != nil && !m.highlighter.IsPlainText() {
		right = m.highlighter.Language() + "   " + right
	}

	gap := m.width - (lipgloss.Width(left) + lipgloss.Width(right))

	return left + theme.StatusLineStyle.Render(strings.Repeat(" ", max(0, gap))+right)
}

// FileLabel is the current file's base name, with "*" when there are
// unsaved changes.
func (m *Model) FileLabel() string {
	name := untitled
	if path := m.editor.CurrentFile(); path != "" {
		name = filepath.Base(path)
	}
	if m.HasChanges() {
		name += "*"
	}
	return name
}

func (m *Model) listenForEditorUpdate() tea.Cmd {
	editorChan := m.editor.GetUpdateSignalChan()

	return func() tea.Msg {
		signal := <-editorChan

		return signalMsg{msg: translateSignal(signal)}
	}
}

func translateSignal(signal editor.Signal) tea.Msg {
	switch signal := signal.(type) {
	case editor.ErrorSignal:
		id, err := signal.Value()
		return ErrorMsg{ID: id, Error: err}

	case editor.MessageSignal:
		id, message := signal.Value()
		return MessageMsg{ID: id, Message: message}

	case editor.SaveSignal:
		path, content := signal.Value()
		return SaveMsg{Path: path, Content: content}

	case editor.OpenSignal:
		return OpenMsg{Path: signal.Value()}

	case editor.SearchResultsSignal:
		term, spans := signal.Value()
		return SearchResultsMsg{Term: term, Spans: spans}

	case editor.SessionSignal:
		return SessionMsg{Session: signal.Value()}

	case editor.CopySignal:
		content, cut := signal.Value()
		return CopyMsg{Content: content, Cut: cut}

	case editor.PasteSignal:
		return PasteMsg{Content: signal.Value()}
	}

	return nil
}

func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			key.Rune = msg.Runes[0]
		}
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeyTab:
		key.Key = editor.KeyTab
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyDelete:
		key.Key = editor.KeyDelete
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyHome:
		key.Key = editor.KeyHome
	case tea.KeyEnd:
		key.Key = editor.KeyEnd
	case tea.KeyPgUp:
		key.Key = editor.KeyPageUp
	case tea.KeyPgDown:
		key.Key = editor.KeyPageDown
	case tea.KeyShiftUp:
		key.Key = editor.KeyUp
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftDown:
		key.Key = editor.KeyDown
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftLeft:
		key.Key = editor.KeyLeft
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftRight:
		key.Key = editor.KeyRight
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftHome:
		key.Key = editor.KeyHome
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftEnd:
		key.Key = editor.KeyEnd
		key.Modifiers |= editor.ModShift
	default:
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			key.Rune = rune('a' + int(msg.Type-tea.KeyCtrlA))
			key.Modifiers |= editor.ModCtrl
		}
	}

	return key
}

// KeyEventFor exposes the key translation to hosts that resolve shortcuts
// before forwarding keys to the widget.
func KeyEventFor(msg tea.KeyMsg) editor.KeyEvent {
	return convertBubbleKey(msg)
}
