package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinFontSize     = 8
	MaxFontSize     = 40
	DefaultFontSize = 12
)

// Session is the per-window state owned by the editor: which file the buffer
// is bound to and the view options.
type Session struct {
	CurrentFile string
	FontSize    int
	DarkMode    bool
	FontColor   string // "#rrggbb", empty for the theme default
}

func DefaultSession() Session {
	return Session{FontSize: DefaultFontSize}
}

func (s *Session) SetFontSize(size int) error {
	if size < MinFontSize || size > MaxFontSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrFontSizeOutOfRange, size, MinFontSize, MaxFontSize)
	}
	s.FontSize = size
	return nil
}

// SetFontColor accepts "#rgb" or "#rrggbb" and stores the normalized
// six-digit form. An empty string resets to the theme default.
func (s *Session) SetFontColor(color string) error {
	if color == "" {
		s.FontColor = ""
		return nil
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	s.FontColor = c.Hex()
	return nil
}

func (e *editor) Session() Session {
	return e.session
}

func (e *editor) SetFontSize(size int) error {
	if err := e.session.SetFontSize(size); err != nil {
		return err
	}
	e.DispatchSignal(SessionSignal{session: e.session})
	return nil
}

func (e *editor) SetFontColor(color string) error {
	if err := e.session.SetFontColor(color); err != nil {
		return err
	}
	e.DispatchSignal(SessionSignal{session: e.session})
	return nil
}

func (e *editor) ToggleDarkMode() bool {
	e.session.DarkMode = !e.session.DarkMode
	e.DispatchSignal(SessionSignal{session: e.session})
	return e.session.DarkMode
}

func (e *editor) CurrentFile() string {
	return e.session.CurrentFile
}
