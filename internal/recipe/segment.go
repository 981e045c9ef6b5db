// Package recipe parses command-line templates into segments and renders
// them back with user overrides and placeholder defaults applied.
package recipe

import (
	"fmt"
	"unicode/utf8"
)

// Kind tells literal segments apart from fillable placeholders.
type Kind int

const (
	// KindLiteral segments are copied verbatim.
	KindLiteral Kind = iota
	// KindPlaceholder segments resolve to override, default or token text.
	KindPlaceholder
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindPlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Segment is one literal or placeholder unit of a template word.
type Segment struct {
	// ID is unique and increasing across the whole template.
	ID   int
	Kind Kind
	// Prefix is literal text glued before the placeholder in the same word.
	Prefix string
	// Value is the placeholder token with brackets restored (e.g. "<port>"),
	// or the whole word for literal segments.
	Value string
	// Suffix is literal text glued after the placeholder in the same word.
	Suffix string

	Default    string
	HasDefault bool

	Override    string
	HasOverride bool

	// TrailingSpace is false only between segments packed into one word.
	TrailingSpace bool
}

// IsInput reports whether the segment accepts user input.
func (s Segment) IsInput() bool {
	return s.Kind == KindPlaceholder
}

// ResolvedValue returns override, then default, then the placeholder token.
func (s Segment) ResolvedValue() string {
	if s.Kind != KindPlaceholder {
		return s.Value
	}
	if s.HasOverride {
		return s.Override
	}
	if s.HasDefault {
		return s.Default
	}
	return s.Value
}

// Raw renders the segment as written in the template.
func (s Segment) Raw() string {
	if s.Kind != KindPlaceholder {
		return s.Value + s.separator()
	}
	return s.Prefix + s.Value + s.Suffix + s.separator()
}

// Resolved renders the segment with its resolved value.
func (s Segment) Resolved() string {
	if s.Kind != KindPlaceholder {
		return s.Value + s.separator()
	}
	return s.Prefix + s.ResolvedValue() + s.Suffix + s.separator()
}

// Describe renders the line shown in the argument list while editing:
// "(id) pre<name>post = pre<value>post".
func (s Segment) Describe() string {
	if s.Kind != KindPlaceholder {
		return s.Value
	}
	raw := s.Prefix + s.Value + s.Suffix
	if !s.HasOverride && !s.HasDefault {
		return fmt.Sprintf("(%d) %s = ", s.ID, raw)
	}
	return fmt.Sprintf("(%d) %s = %s%s%s", s.ID, raw, s.Prefix, s.ResolvedValue(), s.Suffix)
}

func (s Segment) separator() string {
	if s.TrailingSpace {
		return " "
	}
	return ""
}

func (s *Segment) appendRune(r rune) {
	if s.HasOverride {
		s.Override += string(r)
		return
	}
	s.Override = string(r)
	s.HasOverride = true
}

func (s *Segment) popRune() {
	if !s.HasOverride {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Override)
	s.Override = s.Override[:len(s.Override)-size]
	if s.Override == "" {
		s.HasOverride = false
	}
}
