// Package clipboard places resolved command lines on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
)

// ErrUnavailable is returned when the platform has no usable clipboard
// (for example no xclip, xsel or wl-copy on Linux).
var ErrUnavailable = errors.New("clipboard unavailable")

// Error records the clipboard operation that failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("clipboard %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the platform clipboard.
type System struct{}

// writeAll and unsupported are swapped in tests.
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// WriteAll copies text to the system clipboard.
func (System) WriteAll(text string) error {
	if unsupported() {
		return &Error{Op: "write", Err: ErrUnavailable}
	}
	if err := writeAll(text); err != nil {
		return &Error{Op: "write", Err: err}
	}
	logging.Debug("copied to clipboard", "length", len(text))
	return nil
}

// Buffer is an in-memory Writer.
type Buffer struct {
	Text string
}

// WriteAll stores text.
func (b *Buffer) WriteAll(text string) error {
	b.Text = text
	return nil
}
