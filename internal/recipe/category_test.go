package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategories(t *testing.T) {
	tests := []struct {
		tags     string
		expected []Category
	}{
		{"network", []Category{CategoryNetwork}},
		{"pentest|network", []Category{CategoryPentest, CategoryNetwork}},
		{"", []Category{CategoryNone}},
		{"forensics|gardening", []Category{CategoryForensics, CategoryUnknown}},
		{"NETWORK", []Category{CategoryUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.tags, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCategories(tt.tags))
		})
	}
}

func TestJoinCategories(t *testing.T) {
	assert.Equal(t, "CRYPTO REVERSE", JoinCategories([]Category{CategoryCrypto, CategoryReverse}))
	assert.Equal(t, "", JoinCategories(nil))
	assert.Equal(t, "UNKNOWN", Category(99).String())
}
