// Package clipboard writes text to the system clipboard.
//
// The system clipboard is reached through github.com/atotto/clipboard. When
// that fails (no xclip/xsel/wl-copy, or a remote session) the text can
// optionally be sent as an OSC 52 escape sequence so the terminal emulator
// places it on the local clipboard instead.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"anchovy/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no clipboard could accept the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// Func adapts a plain function to Writer.
type Func func(text string) error

func (f Func) WriteAll(text string) error { return f(text) }

// System writes to the OS clipboard.
type System struct {
	// OSC52Fallback sends an OSC 52 sequence to Terminal when the OS
	// clipboard cannot be used.
	OSC52Fallback bool
	// Terminal receives the OSC 52 sequence. Defaults to os.Stderr, which
	// stays attached to the terminal while bubbletea owns stdout.
	Terminal io.Writer

	writeAll func(string) error
}

// NewSystem returns a System writer.
func NewSystem(osc52Fallback bool) *System {
	return &System{OSC52Fallback: osc52Fallback, Terminal: os.Stderr, writeAll: clipboard.WriteAll}
}

// WriteAll writes text to the clipboard.
func (s *System) WriteAll(text string) error {
	write := s.writeAll
	if write == nil {
		write = clipboard.WriteAll
	}
	err := write(text)
	if err == nil {
		return nil
	}
	if !s.OSC52Fallback {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	logging.Debug("Clipboard", "system clipboard failed (%v), falling back to OSC 52", err)
	term := s.Terminal
	if term == nil {
		term = os.Stderr
	}
	if _, oscErr := osc52.New(text).WriteTo(term); oscErr != nil {
		return fmt.Errorf("%w: %v; osc52: %v", ErrUnavailable, err, oscErr)
	}
	return nil
}
