package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberarsenal/cyberarsenal/internal/clipboard"
)

// copiedMsg reports the result of writing a command line to the clipboard.
type copiedMsg struct {
	Text string
	Err  error
}

// statusClearMsg clears the status line if no newer status replaced it.
type statusClearMsg struct {
	seq int
}

func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{Text: text, Err: w.WriteAll(text)}
	}
}

func statusClearAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
