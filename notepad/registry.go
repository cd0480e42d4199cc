package notepad

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/gonote/core"
)

// Handler runs a named action against the application.
type Handler func(m *Model) tea.Cmd

// Registry maps the finite set of user actions to their handlers. Menu items
// and keyboard shortcuts both go through Dispatch.
type Registry struct {
	handlers map[core.Action]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[core.Action]Handler)}
}

// Register binds h to action, replacing any previous handler.
func (r *Registry) Register(action core.Action, h Handler) {
	r.handlers[action] = h
}

func (r *Registry) Has(action core.Action) bool {
	_, ok := r.handlers[action]
	return ok
}

// Dispatch runs the handler bound to action. Unregistered actions return
// core.ErrUnknownAction.
func (r *Registry) Dispatch(m *Model, action core.Action) (tea.Cmd, error) {
	h, ok := r.handlers[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownAction, action)
	}
	return h(m), nil
}

// DefaultRegistry binds every action in core.Actions.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(core.ActionNew, (*Model).newDocument)
	r.Register(core.ActionOpen, (*Model).openFile)
	r.Register(core.ActionSave, (*Model).save)
	r.Register(core.ActionSaveAs, (*Model).saveAs)
	r.Register(core.ActionQuit, (*Model).confirmQuit)
	r.Register(core.ActionUndo, (*Model).undo)
	r.Register(core.ActionRedo, (*Model).redo)
	r.Register(core.ActionCut, (*Model).cut)
	r.Register(core.ActionCopy, (*Model).copy)
	r.Register(core.ActionPaste, (*Model).paste)
	r.Register(core.ActionFind, (*Model).find)
	r.Register(core.ActionFontSize, (*Model).fontSize)
	r.Register(core.ActionFontColor, (*Model).fontColor)
	r.Register(core.ActionDarkMode, (*Model).toggleDarkMode)

	return r
}
