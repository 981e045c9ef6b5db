package catalog

import (
	"fmt"

	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
)

// Row is one catalog entry as stored, before its template is parsed.
type Row struct {
	ID         int64 // database id
	Name       string
	Executable string
	ShortDesc  string
	Details    string
	Categories string // "|"-joined tags
	RawArgs    string
	Examples   []string
}

// Commands parses rows into commands. Command ids are assigned in row order
// starting at startID and the next free id is returned so callers can
// append more commands, e.g. Examples(next).
func Commands(rows []Row, startID int) ([]recipe.Command, int) {
	cmds := make([]recipe.Command, 0, len(rows))
	next := startID
	for _, r := range rows {
		cmds = append(cmds, recipe.New(next, r.Name, r.Executable, r.Categories, r.ShortDesc, r.Details, r.RawArgs, append([]string(nil), r.Examples...)))
		logging.Debug("loaded command", "id", next, "row", r.ID, "name", r.Name, "args", r.RawArgs)
		next++
	}
	return cmds, next
}

// Find returns the command named name.
func Find(cmds []recipe.Command, name string) (recipe.Command, error) {
	for _, c := range cmds {
		if c.Name == name {
			return c, nil
		}
	}
	return recipe.Command{}, fmt.Errorf("catalog: %q: %w", name, ErrCommandNotFound)
}
