package search

import (
	"regexp"
	"sync"

	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
)

// RegexProvider matches if any configured field matches the query as a
// regular expression. An invalid pattern matches nothing, which keeps the
// list empty while the user is still typing it.
type RegexProvider struct {
	opts    Options
	cache   map[string]*regexp.Regexp
	cacheMu sync.RWMutex
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Match returns true if any configured field matches the pattern.
func (p *RegexProvider) Match(cmd recipe.Command, query string) bool {
	if query == "" {
		return true
	}
	re, err := p.compile(query)
	if err != nil {
		return false
	}
	for _, field := range p.opts.Fields {
		if v := fieldValue(cmd, field); v != "" && re.MatchString(v) {
			return true
		}
	}
	return false
}

func (p *RegexProvider) compile(pattern string) (*regexp.Regexp, error) {
	p.cacheMu.RLock()
	re, ok := p.cache[pattern]
	p.cacheMu.RUnlock()
	if ok {
		return re, nil
	}

	expr := pattern
	if p.opts.CaseInsensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[pattern] = re
	p.cacheMu.Unlock()
	return re, nil
}

// Name returns the provider name.
func (p *RegexProvider) Name() string {
	return "regex"
}
