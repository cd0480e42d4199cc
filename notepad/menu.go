package notepad

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/gonote/core"
)

type menu struct {
	title   string
	actions []core.Action
}

var menus = []menu{
	{"File", []core.Action{core.ActionNew, core.ActionOpen, core.ActionSave, core.ActionSaveAs, core.ActionQuit}},
	{"Edit", []core.Action{core.ActionUndo, core.ActionRedo, core.ActionCut, core.ActionCopy, core.ActionPaste, core.ActionFind}},
	{"Format", []core.Action{core.ActionFontSize, core.ActionFontColor, core.ActionDarkMode}},
}

// menuModel is the menu bar and, when open, one dropdown.
type menuModel struct {
	open   bool
	active int // Index into menus
	item   int // Index into menus[active].actions
}

func (mm *menuModel) show(index int) {
	mm.open = true
	mm.active = (index + len(menus)) % len(menus)
	mm.item = 0
}

func (mm *menuModel) close() {
	mm.open = false
}

// update handles a key while the dropdown is open. It returns the chosen
// action, if any; choosing or cancelling closes the menu.
func (mm *menuModel) update(msg tea.KeyMsg, keys keyMap) (core.Action, bool) {
	items := menus[mm.active].actions

	switch {
	case key.Matches(msg, keys.Close):
		mm.close()
	case key.Matches(msg, keys.Left):
		mm.show(mm.active - 1)
	case key.Matches(msg, keys.Right):
		mm.show(mm.active + 1)
	case key.Matches(msg, keys.Up):
		mm.item = (mm.item - 1 + len(items)) % len(items)
	case key.Matches(msg, keys.Down):
		mm.item = (mm.item + 1) % len(items)
	case key.Matches(msg, keys.Select):
		mm.close()
		return items[mm.item], true
	}

	return "", false
}

// titleOffsets returns the screen column each menu title starts at.
func titleOffsets() []int {
	offsets := make([]int, len(menus))
	x := 0
	for i, m := range menus {
		offsets[i] = x
		x += lipgloss.Width(m.title) + 2
	}
	return offsets
}

// titleAt returns the menu whose title covers screen column x.
func titleAt(x int) (int, bool) {
	for i, offset := range titleOffsets() {
		if x >= offset && x < offset+lipgloss.Width(menus[i].title)+2 {
			return i, true
		}
	}
	return 0, false
}

// itemAt maps a screen cell to an item of the open dropdown, which is drawn
// with a one-cell border directly under the bar.
func (mm *menuModel) itemAt(x, y int, session core.Session) (int, bool) {
	left := titleOffsets()[mm.active]
	width := lipgloss.Width(mm.dropdownView(stylesFor(session.DarkMode), session))
	row := y - 2
	if x <= left || x >= left+width-1 || row < 0 || row >= len(menus[mm.active].actions) {
		return 0, false
	}
	return row, true
}

func (mm *menuModel) barView(width int, s styles) string {
	var sb strings.Builder
	for i, m := range menus {
		if mm.open && i == mm.active {
			sb.WriteString(s.MenuTitleActive.Render(m.title))
			continue
		}
		sb.WriteString(s.MenuTitle.Render(m.title))
	}

	bar := sb.String()
	if gap := width - lipgloss.Width(bar); gap > 0 {
		bar += s.MenuBar.Render(strings.Repeat(" ", gap))
	}
	return bar
}

func itemLabel(action core.Action, session core.Session) string {
	label := action.Label()
	if action == core.ActionDarkMode && session.DarkMode {
		label = "✓ " + label
	}
	return label
}

func (mm *menuModel) dropdownView(s styles, session core.Session) string {
	items := menus[mm.active].actions

	labelWidth, accelWidth := 0, 0
	for _, action := range items {
		labelWidth = max(labelWidth, lipgloss.Width(itemLabel(action, session)))
		accelWidth = max(accelWidth, lipgloss.Width(action.Accelerator()))
	}

	rows := make([]string, len(items))
	for i, action := range items {
		label := itemLabel(action, session)
		accel := action.Accelerator()

		left := " " + label + strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		if accelWidth > 0 {
			left += "   " + strings.Repeat(" ", accelWidth-lipgloss.Width(accel))
		}

		if i == mm.item {
			rows[i] = s.MenuItemActive.Render(left + accel + " ")
			continue
		}
		rows[i] = s.MenuItem.Render(left) + s.MenuAccel.Render(accel) + s.MenuItem.Render(" ")
	}

	return s.Dropdown.Render(strings.Join(rows, "\n"))
}
