package catalog

import "github.com/cyberarsenal/cyberarsenal/internal/recipe"

var exampleRows = []Row{
	{
		Name:       "ping0",
		Executable: "ping",
		Categories: "network",
		ShortDesc:  "Simple ping with verbose on",
		Details:    "...",
		RawArgs:    "-v <destination|127.0.0.1>",
		Examples:   []string{"ping 127.0.0.1", "ping -v 127.0.0.1"},
	},
}

// Examples returns the built-in sample commands with ids from startID.
// They stand in for an empty or missing catalog.
func Examples(startID int) []recipe.Command {
	cmds, _ := Commands(exampleRows, startID)
	return cmds
}
