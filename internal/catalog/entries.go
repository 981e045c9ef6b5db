package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Entry is one command as written in a catalog source file:
//
//	[command.ping0]
//	name_exe = "ping"
//	cmd_types = "network"
//	short_desc = "Simple ping with verbose on"
//	details = "..."
//	args = "-v <destination|127.0.0.1>"
//	examples = ["ping 127.0.0.1"]
//
// YAML files use the same keys under a top-level "command" mapping.
type Entry struct {
	Name       string   `toml:"-" yaml:"-"`
	Executable string   `toml:"name_exe" yaml:"name_exe"`
	Types      string   `toml:"cmd_types" yaml:"cmd_types"`
	ShortDesc  string   `toml:"short_desc" yaml:"short_desc"`
	Details    string   `toml:"details" yaml:"details"`
	Args       string   `toml:"args" yaml:"args"`
	Examples   []string `toml:"examples" yaml:"examples"`
}

type entryFile struct {
	Command map[string]Entry `toml:"command" yaml:"command"`
}

// ReadEntries decodes a .toml, .yaml or .yml catalog file. Entries are
// sorted by name so imports are reproducible.
func ReadEntries(path string) ([]Entry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog: read entries: %w", ErrEmptyPath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read entries: %w", err)
	}

	var file entryFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("catalog: %s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return sortedEntries(file.Command), nil
}

func sortedEntries(m map[string]Entry) []Entry {
	entries := make([]Entry, 0, len(m))
	for name, e := range m {
		e.Name = name
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
