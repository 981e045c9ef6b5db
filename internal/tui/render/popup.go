package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
)

// PopupState defines the inputs needed to render the editing popup.
type PopupState struct {
	Command   recipe.Command
	ArgCursor int
	Width     int
	// Details is the pre-rendered details text, usually from Markdown.
	Details string
}

var popupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(mutedColor)).
	Padding(0, 1)

// Popup renders the editing view: the resolved command line, the
// placeholder list with the cursor, the examples and the details.
func Popup(state PopupState) string {
	inner := state.Width - popupStyle.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(SearchBar(state.Command.RenderResolved()))
	b.WriteString("\n\n")

	b.WriteString(Title("Arguments"))
	b.WriteString("\n")
	inputs := state.Command.InputSegments()
	if len(inputs) == 0 {
		b.WriteString(mutedStyle.Render("No arguments to fill"))
	}
	for i, s := range inputs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Row(s.Describe(), i == state.ArgCursor, inner))
	}

	if len(state.Command.Examples) > 0 {
		b.WriteString("\n\n")
		b.WriteString(Title("Examples"))
		for _, e := range state.Command.Examples {
			b.WriteString("\n")
			b.WriteString(textStyle.Render(truncate(bullet(e), inner)))
		}
	}

	if details := strings.TrimSpace(state.Details); details != "" {
		b.WriteString("\n\n")
		b.WriteString(Title("Details"))
		b.WriteString("\n")
		b.WriteString(details)
	}

	return popupStyle.Width(inner).Render(b.String())
}
