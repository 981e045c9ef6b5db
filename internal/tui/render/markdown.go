package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultMarkdownWidth = 80

// Markdown styles for Markdown.
const (
	StyleDark  = "dark"
	StyleNoTTY = "notty"
)

// Markdown renders a command's details for the terminal, wrapped to width.
func Markdown(content string, width int, style string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}
	if width <= 0 {
		width = defaultMarkdownWidth
	}
	if style == "" {
		style = StyleDark
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.Trim(rendered, "\n"), nil
}
