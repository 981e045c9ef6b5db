/*
Copyright © 2026 The cyberarsenal Authors
*/
package main

import (
	"context"
	"fmt"

	"github.com/cyberarsenal/cyberarsenal/cmd"
	"github.com/cyberarsenal/cyberarsenal/internal/catalog"
	"github.com/cyberarsenal/cyberarsenal/internal/colors"
	"github.com/spf13/cobra"
)

type importClient interface {
	ImportEntries(ctx context.Context, path string, entries []catalog.Entry, replace bool) (string, error)
}

const importCommandLong = `Build or extend the catalog database from a TOML or YAML file.

USAGE:
    cyberarsenal import -f <file> [OPTIONS]

OPTIONS:
    -f, --file <path>        Catalog source (.toml, .yaml, .yml)
    -d, --database <path>    Target database (default: configured catalog)
    --replace                Remove existing commands first
    -h, --help               Show this help

FILE FORMAT:
    [command.ping0]
    name_exe = "ping"
    cmd_types = "network"
    short_desc = "Simple ping with verbose on"
    details = "..."
    args = "-v <destination|127.0.0.1>"
    examples = ["ping 127.0.0.1"]`

// NewImportCmd creates the import command with explicit dependencies.
func NewImportCmd(client importClient) *cobra.Command {
	if client == nil {
		panic("NewImportCmd: client dependency cannot be nil")
	}

	var importFile string
	var importDatabase string
	var importReplace bool

	importCmd := &cobra.Command{
		Use:   "import -f <file>",
		Short: "Import commands into the catalog database",
		Long:  importCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := catalog.ReadEntries(importFile)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				colors.Info("No commands found in", importFile)
			}
			path, err := client.ImportEntries(cmd.Context(), importDatabase, entries, importReplace)
			if err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("Imported %d commands into %s", len(entries), path))
			return nil
		},
	}

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Catalog source file")
	importCmd.Flags().StringVarP(&importDatabase, "database", "d", "", "Target database")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Remove existing commands first")
	_ = importCmd.MarkFlagRequired("file")

	return importCmd
}

var importCmd = NewImportCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(importCmd)
}
