package core

import "strings"

// Action names a user command reachable from the menu bar or a shortcut.
type Action string

const (
	ActionNew       Action = "new"
	ActionOpen      Action = "open"
	ActionSave      Action = "save"
	ActionSaveAs    Action = "save-as"
	ActionQuit      Action = "quit"
	ActionUndo      Action = "undo"
	ActionRedo      Action = "redo"
	ActionCut       Action = "cut"
	ActionCopy      Action = "copy"
	ActionPaste     Action = "paste"
	ActionFind      Action = "find"
	ActionFontSize  Action = "font-size"
	ActionFontColor Action = "font-color"
	ActionDarkMode  Action = "dark-mode"
)

// Actions lists every action in menu order.
var Actions = []Action{
	ActionNew, ActionOpen, ActionSave, ActionSaveAs, ActionQuit,
	ActionUndo, ActionRedo, ActionCut, ActionCopy, ActionPaste, ActionFind,
	ActionFontSize, ActionFontColor, ActionDarkMode,
}

var actionLabels = map[Action]string{
	ActionNew:       "New",
	ActionOpen:      "Open",
	ActionSave:      "Save",
	ActionSaveAs:    "Save As",
	ActionQuit:      "Quit",
	ActionUndo:      "Undo",
	ActionRedo:      "Redo",
	ActionCut:       "Cut",
	ActionCopy:      "Copy",
	ActionPaste:     "Paste",
	ActionFind:      "Find",
	ActionFontSize:  "Font Size",
	ActionFontColor: "Font Color",
	ActionDarkMode:  "Dark Mode",
}

// Accelerators maps actions to their keyboard shortcut, in the
// "ctrl+<letter>" form terminal key events are reported in.
var Accelerators = map[Action]string{
	ActionNew:   "ctrl+n",
	ActionOpen:  "ctrl+o",
	ActionSave:  "ctrl+s",
	ActionQuit:  "ctrl+q",
	ActionUndo:  "ctrl+z",
	ActionRedo:  "ctrl+y",
	ActionCut:   "ctrl+x",
	ActionCopy:  "ctrl+c",
	ActionPaste: "ctrl+v",
	ActionFind:  "ctrl+f",
}

func (a Action) Label() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return string(a)
}

// Accelerator returns the shortcut in display form ("Ctrl+N"), or "" if the
// action has none.
func (a Action) Accelerator() string {
	accel, ok := Accelerators[a]
	if !ok {
		return ""
	}
	mod, letter, _ := strings.Cut(accel, "+")
	return strings.ToUpper(mod[:1]) + mod[1:] + "+" + strings.ToUpper(letter)
}

// ActionForKey resolves a key event to the action bound to it.
func ActionForKey(key KeyEvent) (Action, bool) {
	if key.Modifiers&ModCtrl == 0 || key.Rune == 0 {
		return "", false
	}
	want := "ctrl+" + strings.ToLower(string(key.Rune))
	for action, accel := range Accelerators {
		if accel == want {
			return action, true
		}
	}
	return "", false
}
