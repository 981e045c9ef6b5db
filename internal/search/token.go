package search

import (
	"strings"

	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
)

// TokenProvider splits the query on whitespace; every token must match at
// least one field (AND logic). A token of the form field:value only checks
// that field, e.g. "type:network" or "exe:nmap". Unknown prefixes are
// searched as plain text.
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if all tokens match.
func (p *TokenProvider) Match(cmd recipe.Command, query string) bool {
	for _, token := range strings.Fields(query) {
		if p.opts.CaseInsensitive {
			token = strings.ToLower(token)
		}
		fields, needle := p.scope(token)
		if needle == "" {
			continue
		}
		if !p.matchAny(cmd, fields, needle) {
			return false
		}
	}
	return true
}

// scope splits a field:value token into the fields to search and the needle.
func (p *TokenProvider) scope(token string) ([]string, string) {
	prefix, value, ok := strings.Cut(token, ":")
	if !ok {
		return p.opts.Fields, token
	}
	field, known := fieldAliases[strings.ToLower(prefix)]
	if !known {
		return p.opts.Fields, token
	}
	return []string{field}, value
}

func (p *TokenProvider) matchAny(cmd recipe.Command, fields []string, needle string) bool {
	for _, field := range fields {
		if containsIn(fieldValue(cmd, field), needle, p.opts.CaseInsensitive) {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
