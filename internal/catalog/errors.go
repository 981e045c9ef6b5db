package catalog

import "errors"

var (
	// ErrEmptyPath indicates an empty database or catalog file path.
	ErrEmptyPath = errors.New("path cannot be empty")
	// ErrCommandNotFound indicates that no command has the requested name.
	ErrCommandNotFound = errors.New("command not found")
	// ErrUnsupportedFormat indicates a catalog file that is neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
