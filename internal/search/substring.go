package search

import (
	"strings"

	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
)

// SubstringProvider matches if any configured field contains the query.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if any configured field contains the query substring.
func (p *SubstringProvider) Match(cmd recipe.Command, query string) bool {
	if query == "" {
		return true
	}
	if p.opts.CaseInsensitive {
		query = strings.ToLower(query)
	}
	for _, field := range p.opts.Fields {
		if containsIn(fieldValue(cmd, field), query, p.opts.CaseInsensitive) {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}

// containsIn reports whether value contains an already-normalized needle.
func containsIn(value, needle string, caseInsensitive bool) bool {
	if value == "" {
		return false
	}
	if caseInsensitive {
		value = strings.ToLower(value)
	}
	return strings.Contains(value, needle)
}
