package notepad

import (
	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/gonote/adapter-bubbletea"
)

type palette struct {
	bg, fg, barBg, accent, accentFg, muted, danger lipgloss.Color
}

var (
	lightPalette = palette{
		bg:       "#fafafa",
		fg:       "#1e1e1e",
		barBg:    "#e4e4e4",
		accent:   "#0969da",
		accentFg: "#ffffff",
		muted:    "#6e7781",
		danger:   "#cf222e",
	}
	darkPalette = palette{
		bg:       "#252526",
		fg:       "#d4d4d4",
		barBg:    "#333333",
		accent:   "#2f81f7",
		accentFg: "#ffffff",
		muted:    "#8b949e",
		danger:   "#f47067",
	}
)

// styles holds the chrome drawn around the editor widget: menu bar,
// dropdowns and modal boxes.
type styles struct {
	MenuBar         lipgloss.Style
	MenuTitle       lipgloss.Style
	MenuTitleActive lipgloss.Style
	MenuItem        lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuAccel       lipgloss.Style
	Dropdown        lipgloss.Style
	Box             lipgloss.Style
	ErrorBox        lipgloss.Style
	Title           lipgloss.Style
	ErrorTitle      lipgloss.Style
	Body            lipgloss.Style
	Hint            lipgloss.Style
	Button          lipgloss.Style
	ButtonActive    lipgloss.Style
}

func stylesFor(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	base := lipgloss.NewStyle().Background(p.bg).Foreground(p.fg)

	return styles{
		MenuBar:         lipgloss.NewStyle().Background(p.barBg).Foreground(p.fg),
		MenuTitle:       lipgloss.NewStyle().Background(p.barBg).Foreground(p.fg).Padding(0, 1),
		MenuTitleActive: lipgloss.NewStyle().Background(p.accent).Foreground(p.accentFg).Padding(0, 1),
		MenuItem:        base,
		MenuItemActive:  lipgloss.NewStyle().Background(p.accent).Foreground(p.accentFg),
		MenuAccel:       base.Foreground(p.muted),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.muted).
			BorderBackground(p.bg).
			Background(p.bg),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			BorderBackground(p.bg).
			Background(p.bg).
			Padding(0, 1),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.danger).
			BorderBackground(p.bg).
			Background(p.bg).
			Padding(0, 1),
		Title:        base.Bold(true),
		ErrorTitle:   base.Bold(true).Foreground(p.danger),
		Body:         base,
		Hint:         base.Foreground(p.muted),
		Button:       base.Padding(0, 2),
		ButtonActive: lipgloss.NewStyle().Background(p.accent).Foreground(p.accentFg).Padding(0, 2),
	}
}

// editorTheme matches the widget's text and status line to the chrome
// palette, keeping the widget's selection, highlight and message colors.
func editorTheme(base editor.Theme, p palette) editor.Theme {
	t := base
	t.TextStyle = lipgloss.NewStyle().Background(p.bg).Foreground(p.fg)
	t.StatusLineStyle = lipgloss.NewStyle().Background(p.barBg).Foreground(p.fg)
	t.FileNameStyle = t.StatusLineStyle.Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(p.danger)
	t.CursorStyle = lipgloss.NewStyle().Background(p.fg).Foreground(p.bg)
	t.PlaceholderStyle = lipgloss.NewStyle().Background(p.bg).Foreground(p.muted)
	return t
}
