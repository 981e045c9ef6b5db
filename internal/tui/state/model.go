// Package state holds the bubbletea model of the cyberarsenal TUI: the
// Browsing/Editing state machine and its key dispatch.
package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberarsenal/cyberarsenal/internal/clipboard"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	"github.com/cyberarsenal/cyberarsenal/internal/search"
	"github.com/cyberarsenal/cyberarsenal/internal/tui/render"
)

const (
	headerFooterLines     = 5 // search bar, two separators, status, help
	infoPaneLines         = 8
	minListLines          = 3
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	defaultNameWidth      = 20
	statusClearDuration   = 5 * time.Second
)

// Mode is the state of the TUI.
type Mode int

const (
	// ModeBrowsing shows the filtered catalog.
	ModeBrowsing Mode = iota
	// ModeEditing shows one opened command with its placeholders.
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "browsing"
}

// Options configures a Model. Zero values select defaults.
type Options struct {
	Commands  []recipe.Command
	Search    search.Provider
	Clipboard clipboard.Writer
	NameWidth int
}

// editor is an opened command. command is a clone, so edits never reach
// the catalog entry it came from.
type editor struct {
	command recipe.Command
	cursor  int
	details string
}

// Model represents the TUI model for bubbletea.
type Model struct {
	uiState *UIState
	keys    keyMap
	help    help.Model

	commands  []recipe.Command
	filtered  []recipe.Command
	provider  search.Provider
	clipboard clipboard.Writer
	nameWidth int

	editing *editor

	statusMessage string
	statusIsError bool
	statusSeq     int
}

// NewModel creates a new TUI model over the given catalog.
func NewModel(opts Options) *Model {
	if opts.Search == nil {
		opts.Search = search.NewSubstringProvider()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System{}
	}
	if opts.NameWidth <= 0 {
		opts.NameWidth = defaultNameWidth
	}

	m := &Model{
		uiState:   NewUIState(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		commands:  opts.Commands,
		provider:  opts.Search,
		clipboard: opts.Clipboard,
		nameWidth: opts.NameWidth,
	}
	m.applySearchFilter()
	return m
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case copiedMsg:
		return m, m.handleCopied(msg)
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusIsError = false
		}
	}
	return m, nil
}

// Mode returns the current state.
func (m *Model) Mode() Mode {
	if m.editing != nil {
		return ModeEditing
	}
	return ModeBrowsing
}

// Filtered returns the commands matching the current query.
func (m *Model) Filtered() []recipe.Command {
	return m.filtered
}

// Selected returns the command under the list cursor.
func (m *Model) Selected() (recipe.Command, bool) {
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(m.filtered) {
		return recipe.Command{}, false
	}
	return m.filtered[cursor], true
}

// Editing returns the opened command while in ModeEditing.
func (m *Model) Editing() (recipe.Command, bool) {
	if m.editing == nil {
		return recipe.Command{}, false
	}
	return m.editing.command, true
}

// Status returns the status line and whether it reports an error.
func (m *Model) Status() (string, bool) {
	return m.statusMessage, m.statusIsError
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	m.help.Width = m.uiState.GetWidth()
	m.uiState.EnsureCursorVisible()
	return m, nil
}

// applySearchFilter refilters the catalog and moves the cursor to the top.
func (m *Model) applySearchFilter() {
	m.filtered = search.Filter(m.commands, m.provider, m.uiState.GetSearchQuery())
	m.uiState.SetCursor(0)
	m.uiState.GetViewport().SetYOffset(0)
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusMessage = text
	m.statusIsError = isError
	m.statusSeq++
	return statusClearAfter(statusClearDuration, m.statusSeq)
}

func (m *Model) open() {
	c, ok := m.Selected()
	if !ok {
		return
	}
	log := logging.With("recipe", c.Name)
	e := &editor{command: c.Clone()}
	if c.Details != "" {
		details, err := render.Markdown(c.Details, m.uiState.GetWidth()-4, render.StyleDark)
		if err != nil {
			log.Warn("render details failed", "error", err)
			details = c.Details
		}
		e.details = details
	}
	m.editing = e
	log.Debug("opened command", "inputs", len(c.InputSegments()))
}

func (m *Model) close() {
	if m.editing != nil {
		logging.Debug("closed command", "command", m.editing.command.Name)
	}
	m.editing = nil
}

// selectedInput returns the id of the placeholder under the argument cursor.
func (e *editor) selectedInput() (int, bool) {
	inputs := e.command.InputSegments()
	if e.cursor < 0 || e.cursor >= len(inputs) {
		return 0, false
	}
	return inputs[e.cursor].ID, true
}
