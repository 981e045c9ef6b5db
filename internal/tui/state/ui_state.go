package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// UIState holds layout and input state that is independent of the catalog:
// terminal size, the list viewport, the list cursor and the search query.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	cursor      int
	searchQuery []rune
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	u := &UIState{
		width:  defaultViewportWidth,
		height: defaultViewportHeight,
	}
	u.UpdateViewportSize()
	return u
}

// GetViewport returns the list viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width, falling back to the default for non-positive values.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height, falling back to the default for non-positive values.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// UpdateViewportSize resizes the list viewport to the space left by the
// search bar, info pane and footer.
func (u *UIState) UpdateViewportSize() {
	listHeight := u.height - headerFooterLines - infoPaneLines
	if listHeight < minListLines {
		listHeight = minListLines
	}
	u.viewport = viewport.New(u.width, listHeight)
}

// GetCursor returns the list cursor.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor updates the list cursor.
func (u *UIState) SetCursor(cursor int) {
	u.cursor = cursor
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// EnsureCursorVisible scrolls the viewport so the cursor row is shown.
func (u *UIState) EnsureCursorVisible() {
	v := &u.viewport
	if u.cursor < v.YOffset {
		v.SetYOffset(u.cursor)
		return
	}
	if v.Height > 0 && u.cursor >= v.YOffset+v.Height {
		v.SetYOffset(u.cursor - v.Height + 1)
	}
}

// GetSearchQuery returns the current search query.
func (u *UIState) GetSearchQuery() string {
	return string(u.searchQuery)
}

// AppendToSearchQuery appends a rune to the search query.
func (u *UIState) AppendToSearchQuery(r rune) {
	u.searchQuery = append(u.searchQuery, r)
}

// BackspaceSearchQuery removes the last rune of the search query.
func (u *UIState) BackspaceSearchQuery() {
	if len(u.searchQuery) > 0 {
		u.searchQuery = u.searchQuery[:len(u.searchQuery)-1]
	}
}
