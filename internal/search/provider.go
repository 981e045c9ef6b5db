// Package search filters catalog commands for the list view and the CLI.
// Substring, token and regex strategies share the Provider interface so the
// TUI and `list --search` agree on what a query matches.
package search

import (
	"fmt"
	"strings"

	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
)

// Searchable fields.
const (
	FieldName       = "name"
	FieldExecutable = "executable"
	FieldArgs       = "args"
	FieldCategory   = "category"
)

// Provider matches commands against a query.
type Provider interface {
	// Match returns true if cmd matches query. An empty query matches everything.
	Match(cmd recipe.Command, query string) bool

	// Name returns the provider name used in configuration.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool
	Fields          []string
}

// DefaultOptions searches every field ignoring case.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldName, FieldExecutable, FieldArgs, FieldCategory},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the provider registered under name.
func New(name string, opts ...Option) (Provider, error) {
	switch strings.ToLower(name) {
	case "", "substring":
		return NewSubstringProvider(opts...), nil
	case "token":
		return NewTokenProvider(opts...), nil
	case "regex":
		return NewRegexProvider(opts...), nil
	default:
		return nil, fmt.Errorf("search: unknown provider %q", name)
	}
}

// Filter returns the commands matching query, keeping catalog order.
func Filter(cmds []recipe.Command, p Provider, query string) []recipe.Command {
	out := make([]recipe.Command, 0, len(cmds))
	for _, c := range cmds {
		if p.Match(c, query) {
			out = append(out, c)
		}
	}
	return out
}

// fieldValue returns the text of field for cmd, or "" for unknown fields.
func fieldValue(cmd recipe.Command, field string) string {
	switch field {
	case FieldName:
		return cmd.Name
	case FieldExecutable:
		return cmd.Executable
	case FieldArgs:
		return cmd.RawArgs
	case FieldCategory:
		return recipe.JoinCategories(cmd.Categories)
	default:
		return ""
	}
}

// fieldAliases maps the prefixes accepted in field:value tokens.
var fieldAliases = map[string]string{
	"name":       FieldName,
	"exe":        FieldExecutable,
	"executable": FieldExecutable,
	"args":       FieldArgs,
	"type":       FieldCategory,
	"category":   FieldCategory,
}
