// Package native is the boundary to the windowing layer. The only
// operation the client needs is setting a window title by handle.
package native

import (
	"fmt"
	"io"
	"os"
)

// TitleSetter applies a title to the native window identified by handle.
// The call is fire and forget; implementations must not panic.
type TitleSetter interface {
	SetWindowTitle(handle int64, title string) error
}

// Func adapts an ordinary function to the TitleSetter interface.
type Func func(handle int64, title string) error

// SetWindowTitle calls the wrapped function.
func (f Func) SetWindowTitle(handle int64, title string) error {
	return f(handle, title)
}

// Terminal sets the controlling terminal's window title through the OSC 0
// escape sequence. It stands in for the real windowing call in demo runs;
// the handle is accepted but carries no meaning for a terminal.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a Terminal writing to out, defaulting to stdout.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{out: out}
}

// SetWindowTitle writes the OSC 0 sequence carrying the title.
func (t *Terminal) SetWindowTitle(_ int64, title string) error {
	_, err := fmt.Fprintf(t.out, "\x1b]0;%s\x07", title)
	return err
}

// Discard ignores every title-set call, for headless runs.
type Discard struct{}

// SetWindowTitle does nothing.
func (Discard) SetWindowTitle(int64, string) error { return nil }
