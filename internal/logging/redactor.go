package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var keySeparators = regexp.MustCompile(`[^a-z0-9]+`)

// redactor hides values whose key names a secret. Placeholder overrides
// are logged with the placeholder as key, so <password> or <api_key>
// values never reach the log file.
type redactor struct {
	sensitive map[string]bool
}

func newRedactor() *redactor {
	words := []string{"secret", "password", "passwd", "pass", "token", "key", "auth", "credential", "hash"}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return &redactor{sensitive: m}
}

// redact returns a copy of the flattened key-value pairs with sensitive
// values replaced.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok && r.isSensitive(key) {
			out[i+1] = redacted
		}
	}
	return out
}

// isSensitive reports whether any alphanumeric part of key is a sensitive word.
func (r *redactor) isSensitive(key string) bool {
	for _, part := range keySeparators.Split(strings.ToLower(key), -1) {
		if r.sensitive[part] {
			return true
		}
	}
	return false
}
