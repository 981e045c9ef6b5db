/*
Copyright © 2026 The cyberarsenal Authors
*/
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberarsenal/cyberarsenal/cmd"
	"github.com/cyberarsenal/cyberarsenal/internal/clipboard"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	"github.com/cyberarsenal/cyberarsenal/internal/search"
	"github.com/cyberarsenal/cyberarsenal/internal/tui/state"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type tuiClient interface {
	LoadCommands(ctx context.Context) ([]recipe.Command, error)
	SearchProvider(override string) (search.Provider, error)
	NameWidth() int
	Clipboard() clipboard.Writer
}

// isTerminal reports whether stdout is a terminal. Tests replace it.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runProgram runs a bubbletea program. Tests replace it.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client tuiClient) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse, fill and copy commands interactively",
		Long: `Browse, fill and copy commands interactively.

Type to filter the catalog, Enter opens a command, Up/Down select a
placeholder, typing fills it and Enter copies the resolved line.
Esc goes back, Ctrl+C quits. When stdout is not a terminal the
catalog is printed like "cyberarsenal list".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, client)
		},
	}

	return tuiCmd
}

func runTUI(cmd *cobra.Command, client tuiClient) error {
	cmds, err := client.LoadCommands(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	provider, err := client.SearchProvider("")
	if err != nil {
		return err
	}

	if !isTerminal() {
		logging.Info("stdout is not a terminal, printing list")
		return printCommands(cmd.OutOrStdout(), cmds, client.NameWidth())
	}

	model := state.NewModel(state.Options{
		Commands:  cmds,
		Search:    provider,
		Clipboard: client.Clipboard(),
		NameWidth: client.NameWidth(),
	})
	logging.Info("starting tui", "commands", len(cmds), "search", provider.Name())
	if err := runProgram(model); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

var tuiCmd = NewTUICmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
	cmd.RootCmd.Args = cobra.NoArgs
	cmd.RootCmd.RunE = tuiCmd.RunE
}
