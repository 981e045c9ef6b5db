/*
Copyright © 2026 The cyberarsenal Authors
*/
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cyberarsenal/cyberarsenal/cmd"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	"github.com/cyberarsenal/cyberarsenal/internal/search"
	"github.com/spf13/cobra"
)

type listClient interface {
	LoadCommands(ctx context.Context) ([]recipe.Command, error)
	SearchProvider(override string) (search.Provider, error)
	NameWidth() int
}

const listCommandLong = `List catalog commands as annotated rows.

USAGE:
    cyberarsenal list [OPTIONS]

OPTIONS:
    --search <query>     Only show commands matching the query
    --provider <name>    Search provider: substring (default), token, regex
    -h, --help           Show this help

Token queries accept field:value terms, e.g. "type:network exe:nmap".`

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var listSearch string
	var listProvider string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog commands",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := client.LoadCommands(cmd.Context())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			provider, err := client.SearchProvider(listProvider)
			if err != nil {
				return err
			}
			return printCommands(cmd.OutOrStdout(), search.Filter(cmds, provider, listSearch), client.NameWidth())
		},
	}

	listCmd.Flags().StringVar(&listSearch, "search", "", "Only show commands matching the query")
	listCmd.Flags().StringVar(&listProvider, "provider", "", "Search provider: substring, token, regex")

	return listCmd
}

// printCommands writes one RenderAnnotated row per command.
func printCommands(w io.Writer, cmds []recipe.Command, nameWidth int) error {
	if len(cmds) == 0 {
		_, err := fmt.Fprintln(w, "No commands found")
		return err
	}
	for _, c := range cmds {
		if _, err := fmt.Fprintln(w, strings.TrimRight(c.RenderAnnotated(nameWidth), " ")); err != nil {
			return err
		}
	}
	return nil
}

var listCmd = NewListCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
