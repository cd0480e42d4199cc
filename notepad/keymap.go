package notepad

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	editor "github.com/ionut-t/gonote/adapter-bubbletea"
	"github.com/ionut-t/gonote/core"
)

type keyMap struct {
	actions map[core.Action]key.Binding

	Menu   key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Close  key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		actions: make(map[core.Action]key.Binding, len(core.Accelerators)),
		Menu: key.NewBinding(
			key.WithKeys("f10"),
			key.WithHelp("f10", "menu"),
		),
		Up:     key.NewBinding(key.WithKeys("up", "shift+tab")),
		Down:   key.NewBinding(key.WithKeys("down", "tab")),
		Left:   key.NewBinding(key.WithKeys("left")),
		Right:  key.NewBinding(key.WithKeys("right")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Close:  key.NewBinding(key.WithKeys("esc", "f10")),
	}

	for _, action := range core.Actions {
		accel, ok := core.Accelerators[action]
		if !ok {
			continue
		}
		km.actions[action] = key.NewBinding(
			key.WithKeys(accel),
			key.WithHelp(accel, strings.ToLower(action.Label())),
		)
	}

	return km
}

// actionFor resolves a key press to the action whose accelerator it is.
func (k keyMap) actionFor(msg tea.KeyMsg) (core.Action, bool) {
	return core.ActionForKey(editor.KeyEventFor(msg))
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.actions[core.ActionSave],
		k.actions[core.ActionOpen],
		k.actions[core.ActionFind],
		k.actions[core.ActionUndo],
		k.Menu,
		k.actions[core.ActionQuit],
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	var file, edit []key.Binding
	for _, action := range core.Actions {
		b, ok := k.actions[action]
		if !ok {
			continue
		}
		switch action {
		case core.ActionNew, core.ActionOpen, core.ActionSave, core.ActionQuit:
			file = append(file, b)
		default:
			edit = append(edit, b)
		}
	}
	return [][]key.Binding{file, edit, {k.Menu}}
}
