// Package colors provides coloured console output for the CLI.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ANSI colour sequences.
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger receives a copy of every console message.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	mu           sync.RWMutex
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("CYBERARSENAL_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetLogger sets the structured logger that mirrors console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers restore the defaults.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout = out
	stderr = errOut
}

// Error prints an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Error(msg) })
	write(stderrWriter(), "%sError:%s %s\n", Red, Reset, msg)
}

// Warning prints a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Warn(msg) })
	write(stderrWriter(), "%sWarning:%s %s\n", Yellow, Reset, msg)
}

// Success prints a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Info(msg, "type", "success") })
	write(stdoutWriter(), "%s%s%s %s\n", Green, checkmark, Reset, msg)
}

// Info prints an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Info(msg) })
	write(stdoutWriter(), "%s%s%s\n", Blue, msg, Reset)
}

// Debug prints a debug message to stderr when debug output is enabled.
func Debug(msgs ...string) {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	if !enabled {
		return
	}
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger) { l.Debug(msg) })
	write(stderrWriter(), "%sDebug:%s %s\n", Cyan, Reset, msg)
}

func mirror(fn func(Logger)) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		fn(l)
	}
}

func stdoutWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return stdout
}

func stderrWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return stderr
}

// write falls back to plain stderr when the configured writer fails.
func write(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}
