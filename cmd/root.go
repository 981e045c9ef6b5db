/*
Copyright © 2026 The cyberarsenal Authors
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cyberarsenal/cyberarsenal/internal/colors"
	"github.com/cyberarsenal/cyberarsenal/internal/config"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/cyberarsenal/cyberarsenal/internal/version"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	verbose      bool
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:               "cyberarsenal",
	Short:             "Search, fill and copy command recipes from a local catalog.",
	Long:              `Search, fill and copy command recipes from a local catalog.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Warning("failed to close log file:", err.Error())
		}
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "", "catalog database path (default {config_dir}/settings.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd.OutOrStdout(), cmd)
	})
}

// setup loads configuration, applies the persistent flags on top of it and
// starts the session logger.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()
	if settingsPath != "" {
		config.Set("database_path", settingsPath)
	}
	if verbose {
		config.Set("debug", "true")
		config.Set("logging_enabled", "true")
		colors.SetDebug(true)
	}
	if err := logging.InitGlobal(cmd.Name()); err != nil {
		colors.Warning("file logging disabled:", err.Error())
	}
	logging.Debug("command started", "args", len(args), "database", config.Get("database_path", ""))
	return nil
}

func printHelpText(w io.Writer, cmd *cobra.Command) {
	commandOrder := []string{
		"tui",
		"list",
		"show",
		"copy",
		"import",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-24s %s", found.Use, found.Short))
	}

	fmt.Fprintf(w, `cyberarsenal %s

%s

USAGE:
    cyberarsenal [COMMAND] [OPTIONS]

    Without a command the interactive picker starts.

COMMANDS:
%s

OPTIONS:
    -s, --settings <path>    Catalog database path
    -v, --verbose            Enable debug logging
    -h, --help               Show help message
`, version.String(), cmd.Short, strings.Join(cmdLines, "\n"))
}
