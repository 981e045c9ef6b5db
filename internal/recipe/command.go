package recipe

import (
	"fmt"
	"strings"
)

// Command is one catalog entry together with its parsed template.
type Command struct {
	ID         int
	Name       string // catalog key
	Executable string
	Categories []Category
	ShortDesc  string
	Details    string
	RawArgs    string
	Examples   []string

	segments []Segment
}

// New builds a command and parses rawArgs into segments.
// categories is the "|"-joined tag string stored in the catalog.
func New(id int, name, executable, categories, shortDesc, details, rawArgs string, examples []string) Command {
	return Command{
		ID:         id,
		Name:       name,
		Executable: executable,
		Categories: ParseCategories(categories),
		ShortDesc:  shortDesc,
		Details:    details,
		RawArgs:    rawArgs,
		Examples:   examples,
		segments:   Build(rawArgs),
	}
}

// Segments returns a copy of all segments in template order.
func (c Command) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// InputSegments returns the placeholder segments in template order. Their
// IDs, not their positions in the returned slice, address mutations.
func (c Command) InputSegments() []Segment {
	var inputs []Segment
	for _, s := range c.segments {
		if s.IsInput() {
			inputs = append(inputs, s)
		}
	}
	return inputs
}

// Segment returns the segment with the given id.
func (c Command) Segment(id int) (Segment, bool) {
	if s := c.lookup(id); s != nil {
		return *s, true
	}
	return Segment{}, false
}

// AppendChar appends r to the override of placeholder id, starting a new
// override when none is set. Unknown ids and literal segments are ignored.
func (c *Command) AppendChar(id int, r rune) {
	if s := c.placeholder(id); s != nil {
		s.appendRune(r)
	}
}

// PopChar removes the last character of the override of placeholder id.
// An override that becomes empty is unset so the default applies again.
func (c *Command) PopChar(id int) {
	if s := c.placeholder(id); s != nil {
		s.popRune()
	}
}

// SetOverride replaces the override of placeholder id. An empty value unsets it.
func (c *Command) SetOverride(id int, value string) {
	s := c.placeholder(id)
	if s == nil {
		return
	}
	s.Override = value
	s.HasOverride = value != ""
}

// ClearOverride unsets the override of placeholder id.
func (c *Command) ClearOverride(id int) {
	c.SetOverride(id, "")
}

// RenderRaw renders the template as written, after the executable.
func (c Command) RenderRaw() string {
	var b strings.Builder
	for _, s := range c.segments {
		b.WriteString(s.Raw())
	}
	return c.Executable + " " + b.String()
}

// RenderResolved renders the command line with overrides and defaults applied.
func (c Command) RenderResolved() string {
	var b strings.Builder
	for _, s := range c.segments {
		b.WriteString(s.Resolved())
	}
	return c.Executable + " " + b.String()
}

// RenderAnnotated renders the raw template behind the name padded to width,
// as shown in the catalog list.
func (c Command) RenderAnnotated(width int) string {
	var b strings.Builder
	for _, s := range c.segments {
		b.WriteString(s.Raw())
	}
	return fmt.Sprintf("[%-*s] %s %s", width, c.Name, c.Executable, b.String())
}

// Clone returns an independent copy whose overrides can be edited without
// touching the receiver.
func (c Command) Clone() Command {
	clone := c
	clone.Categories = append([]Category(nil), c.Categories...)
	clone.Examples = append([]string(nil), c.Examples...)
	clone.segments = append([]Segment(nil), c.segments...)
	return clone
}

// Short is the info pane text shown while browsing.
func (c Command) Short() string {
	return fmt.Sprintf("Command:%s\nTYPE:%s\nExplanation:\n%s\n%s\n",
		c.Executable,
		JoinCategories(c.Categories),
		c.ShortDesc,
		c.RenderRaw(),
	)
}

// Info is the full description including details and examples.
func (c Command) Info() string {
	return fmt.Sprintf("Command:%s\nTYPE:%s\nExplanation:\n%s\nDetails:\n%s\n%s\nExamples:\n > %s",
		c.Executable,
		JoinCategories(c.Categories),
		c.ShortDesc,
		c.Details,
		c.RenderRaw(),
		strings.Join(c.Examples, "\n > "),
	)
}

// String returns the resolved command line.
func (c Command) String() string {
	return c.RenderResolved()
}

func (c *Command) lookup(id int) *Segment {
	// Ids equal positions for parsed templates; fall back to a scan otherwise.
	if id >= 0 && id < len(c.segments) && c.segments[id].ID == id {
		return &c.segments[id]
	}
	for i := range c.segments {
		if c.segments[i].ID == id {
			return &c.segments[i]
		}
	}
	return nil
}

func (c *Command) placeholder(id int) *Segment {
	s := c.lookup(id)
	if s == nil || s.Kind != KindPlaceholder {
		return nil
	}
	return s
}
