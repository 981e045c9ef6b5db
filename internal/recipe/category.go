package recipe

import "strings"

// Category tags a command with the field it belongs to.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryNone
	CategoryProgramming
	CategoryPentest
	CategoryReverse
	CategoryForensics
	CategoryCrypto
	CategorySysadmin
	CategoryNetwork
)

var categoryNames = map[Category]string{
	CategoryUnknown:     "UNKNOWN",
	CategoryNone:        "NONE",
	CategoryProgramming: "PROGRAMMING",
	CategoryPentest:     "PENTEST",
	CategoryReverse:     "REVERSE",
	CategoryForensics:   "FORENSICS",
	CategoryCrypto:      "CRYPTO",
	CategorySysadmin:    "SYSADMIN",
	CategoryNetwork:     "NETWORK",
}

// ParseCategory maps a catalog tag to its Category. Empty tags map to
// CategoryNone and anything outside the vocabulary to CategoryUnknown.
func ParseCategory(tag string) Category {
	switch tag {
	case "":
		return CategoryNone
	case "programming":
		return CategoryProgramming
	case "pentest":
		return CategoryPentest
	case "reverse":
		return CategoryReverse
	case "forensics":
		return CategoryForensics
	case "crypto":
		return CategoryCrypto
	case "sysadmin":
		return CategorySysadmin
	case "network":
		return CategoryNetwork
	default:
		return CategoryUnknown
	}
}

// ParseCategories splits a "|"-joined tag string.
func ParseCategories(tags string) []Category {
	parts := strings.Split(tags, "|")
	categories := make([]Category, 0, len(parts))
	for _, part := range parts {
		categories = append(categories, ParseCategory(part))
	}
	return categories
}

// String returns the upper-case tag name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// JoinCategories renders categories separated by spaces.
func JoinCategories(categories []Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
