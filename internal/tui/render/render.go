// Package render draws the panes of the cyberarsenal TUI. Functions here are
// pure: they take plain state and return styled strings.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cyberarsenal/cyberarsenal/internal/colors"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
)

const (
	searchPrompt = ">> "
	mutedColor   = "241"
	ellipsis     = "..."
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Blue))).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Cyan)))
	queryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ansiColorNumber(colors.Blue))).
			Foreground(lipgloss.Color("0"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red))).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green))).Bold(true)
)

// SearchBar renders the query line shown above the catalog list.
func SearchBar(query string) string {
	return searchPrompt + queryStyle.Render(query)
}

// ListState defines the inputs needed to render the catalog list.
type ListState struct {
	Commands  []recipe.Command
	Cursor    int
	NameWidth int
	Width     int
}

// List renders one annotated row per command, highlighting the cursor.
func List(state ListState) string {
	if len(state.Commands) == 0 {
		return mutedStyle.Render("No commands found")
	}
	rows := make([]string, len(state.Commands))
	for i, c := range state.Commands {
		rows[i] = Row(c.RenderAnnotated(state.NameWidth), i == state.Cursor, state.Width)
	}
	return strings.Join(rows, "\n")
}

// Row renders a single list line truncated to width.
func Row(text string, selected bool, width int) string {
	text = truncate(text, width)
	if selected {
		return selectedStyle.Render(text)
	}
	return text
}

// Info renders the browsing info pane for c: executable, categories and
// explanation, followed by the raw template.
func Info(c *recipe.Command) string {
	if c == nil {
		return ""
	}
	lines := []string{
		labelStyle.Render("Command:") + valueStyle.Render(c.Executable),
		labelStyle.Render("TYPE:") + valueStyle.Render(recipe.JoinCategories(c.Categories)),
		"",
	}
	if c.ShortDesc != "" {
		lines = append(lines, labelStyle.Render("Explanation:"))
		for _, l := range strings.Split(c.ShortDesc, "\n") {
			lines = append(lines, textStyle.Render(l))
		}
		lines = append(lines, "")
	}
	lines = append(lines, c.RenderRaw())
	return strings.Join(lines, "\n")
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	Help          string
	Status        string
	StatusIsError bool
	Width         int
}

// Footer renders the status line, when set, above the key help.
func Footer(state FooterState) string {
	help := mutedStyle.Render(truncate(state.Help, state.Width))
	if state.Status == "" {
		return help
	}
	status := successStyle.Render(truncate(state.Status, state.Width))
	if state.StatusIsError {
		status = errorStyle.Render(truncate("Error: "+state.Status, state.Width))
	}
	return status + "\n" + help
}

// Title renders a pane title.
func Title(text string) string {
	return labelStyle.Render(text)
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= len(ellipsis) {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-len(ellipsis)]) + ellipsis
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}

// Separator renders a muted horizontal rule.
func Separator(width int) string {
	if width <= 0 {
		width = 1
	}
	return mutedStyle.Render(strings.Repeat("─", width))
}

func bullet(text string) string {
	return fmt.Sprintf(" > %s", text)
}
