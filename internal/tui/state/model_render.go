package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/cyberarsenal/cyberarsenal/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	width := m.uiState.GetWidth()

	var s strings.Builder
	if m.editing != nil {
		s.WriteString(render.Popup(render.PopupState{
			Command:   m.editing.command,
			ArgCursor: m.editing.cursor,
			Width:     width,
			Details:   m.editing.details,
		}))
	} else {
		s.WriteString(render.SearchBar(m.uiState.GetSearchQuery()))
		s.WriteString("\n")
		s.WriteString(render.Separator(width))
		s.WriteString("\n")

		m.updateViewportContent()
		s.WriteString(m.uiState.GetViewport().View())
		s.WriteString("\n")
		s.WriteString(render.Separator(width))
		s.WriteString("\n")

		if c, ok := m.Selected(); ok {
			s.WriteString(render.Info(&c))
		}
	}

	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{
		Help:          m.help.View(m.currentHelp()),
		Status:        m.statusMessage,
		StatusIsError: m.statusIsError,
		Width:         width,
	}))
	return s.String()
}

// updateViewportContent renders the filtered list into the viewport.
func (m *Model) updateViewportContent() {
	m.uiState.GetViewport().SetContent(render.List(render.ListState{
		Commands:  m.filtered,
		Cursor:    m.uiState.GetCursor(),
		NameWidth: m.nameWidth,
		Width:     m.uiState.GetWidth(),
	}))
	m.uiState.EnsureCursorVisible()
}

func (m *Model) currentHelp() help.KeyMap {
	if m.editing != nil {
		return m.keys.editingHelp()
	}
	return m.keys.browsingHelp()
}
