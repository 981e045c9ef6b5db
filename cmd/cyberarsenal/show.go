/*
Copyright © 2026 The cyberarsenal Authors
*/
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/cyberarsenal/cyberarsenal/cmd"
	"github.com/cyberarsenal/cyberarsenal/internal/catalog"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	"github.com/cyberarsenal/cyberarsenal/internal/tui/render"
	"github.com/spf13/cobra"
)

const showWrapWidth = 80

type showClient interface {
	LoadCommands(ctx context.Context) ([]recipe.Command, error)
}

// NewShowCmd creates the show command with explicit dependencies.
func NewShowCmd(client showClient) *cobra.Command {
	if client == nil {
		panic("NewShowCmd: client dependency cannot be nil")
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the full description of a command",
		Long: `Show the full description of a command: executable, categories,
explanation, details, template and examples. Details are rendered as
markdown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := client.LoadCommands(cmd.Context())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			c, err := catalog.Find(cmds, args[0])
			if err != nil {
				return err
			}

			style := render.StyleNoTTY
			if isTerminal() {
				style = render.StyleDark
			}
			if details, err := render.Markdown(c.Details, showWrapWidth, style); err != nil {
				logging.Warn("render details failed", "command", c.Name, "error", err)
			} else if details != "" {
				c.Details = details
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(c.Info(), "\n"))
			return err
		},
	}

	return showCmd
}

var showCmd = NewShowCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(showCmd)
}
