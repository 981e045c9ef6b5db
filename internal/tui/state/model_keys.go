package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberarsenal/cyberarsenal/internal/clipboard"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Back):
		return m.handleEsc()
	case key.Matches(msg, m.keys.Open):
		return m, m.handleEnter()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Backspace):
		m.handleBackspace()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.handleRune(r)
		}
	case tea.KeySpace:
		m.handleRune(' ')
	}
	return m, nil
}

func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	logging.Info("quitting", "mode", m.Mode().String())
	return m, tea.Quit
}

// handleEsc closes the opened command, or quits while browsing.
func (m *Model) handleEsc() (tea.Model, tea.Cmd) {
	if m.editing != nil {
		m.close()
		return m, nil
	}
	return m.handleQuit()
}

// handleEnter opens the selected command, or copies the opened one.
func (m *Model) handleEnter() tea.Cmd {
	if m.editing == nil {
		m.open()
		return nil
	}
	return copyCmd(m.clipboard, m.editing.command.RenderResolved())
}

func (m *Model) handleRune(r rune) {
	if m.editing == nil {
		m.uiState.AppendToSearchQuery(r)
		m.applySearchFilter()
		return
	}
	if id, ok := m.editing.selectedInput(); ok {
		m.editing.command.AppendChar(id, r)
	}
}

func (m *Model) handleBackspace() {
	if m.editing == nil {
		m.uiState.BackspaceSearchQuery()
		m.applySearchFilter()
		return
	}
	if id, ok := m.editing.selectedInput(); ok {
		m.editing.command.PopChar(id)
	}
}

// moveCursor moves the list or argument cursor by delta, wrapping around.
func (m *Model) moveCursor(delta int) {
	if m.editing != nil {
		m.editing.cursor = wrap(m.editing.cursor+delta, len(m.editing.command.InputSegments()))
		return
	}
	m.uiState.SetCursor(wrap(m.uiState.GetCursor()+delta, len(m.filtered)))
	m.uiState.EnsureCursorVisible()
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (m *Model) handleCopied(msg copiedMsg) tea.Cmd {
	if msg.Err != nil {
		logging.Error("copy to clipboard failed", "error", msg.Err)
		text := fmt.Sprintf("copy failed: %v", msg.Err)
		if errors.Is(msg.Err, clipboard.ErrUnavailable) {
			text = "clipboard unavailable, install xclip, xsel or wl-clipboard"
		}
		return m.setStatus(text, true)
	}

	fields := []any{"length", len(msg.Text)}
	if m.editing != nil {
		fields = append(fields, "command", m.editing.command.Name)
		for _, s := range m.editing.command.InputSegments() {
			fields = append(fields, strings.Trim(s.Value, "<>"), s.ResolvedValue())
		}
	}
	logging.Info("copied command", fields...)
	return m.setStatus("Copied: "+strings.TrimSpace(msg.Text), false)
}
