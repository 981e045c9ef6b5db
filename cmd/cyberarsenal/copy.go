/*
Copyright © 2026 The cyberarsenal Authors
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cyberarsenal/cyberarsenal/cmd"
	"github.com/cyberarsenal/cyberarsenal/internal/catalog"
	"github.com/cyberarsenal/cyberarsenal/internal/clipboard"
	"github.com/cyberarsenal/cyberarsenal/internal/colors"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	"github.com/spf13/cobra"
)

type copyClient interface {
	LoadCommands(ctx context.Context) ([]recipe.Command, error)
	Clipboard() clipboard.Writer
}

const copyCommandLong = `Resolve a command template and copy it to the clipboard.

USAGE:
    cyberarsenal copy <name> [OPTIONS]

OPTIONS:
    --set <placeholder=value>  Fill a placeholder, by name or segment id (repeatable)
    --print                    Print the line instead of copying it
    -h, --help                 Show this help

EXAMPLES:
    cyberarsenal copy ping0 --set destination=8.8.8.8
    cyberarsenal copy nmap_syn --set target=10.0.0.0/24 --print`

// NewCopyCmd creates the copy command with explicit dependencies.
func NewCopyCmd(client copyClient) *cobra.Command {
	if client == nil {
		panic("NewCopyCmd: client dependency cannot be nil")
	}

	var copySet []string
	var copyPrint bool

	copyCmd := &cobra.Command{
		Use:   "copy <name>",
		Short: "Fill placeholders and copy a command line",
		Long:  copyCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := client.LoadCommands(cmd.Context())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			found, err := catalog.Find(cmds, args[0])
			if err != nil {
				return err
			}

			c := found.Clone()
			if err := applyOverrides(&c, copySet); err != nil {
				return err
			}
			line := strings.TrimRight(c.RenderResolved(), " ")

			if copyPrint {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
				return err
			}
			if err := client.Clipboard().WriteAll(line); err != nil {
				if errors.Is(err, clipboard.ErrUnavailable) {
					return fmt.Errorf("%w: install xclip, xsel or wl-clipboard, or use --print", err)
				}
				return err
			}
			logging.Info("copied command", "command", c.Name, "length", len(line))
			colors.Success("Copied:", line)
			return nil
		},
	}

	copyCmd.Flags().StringArrayVar(&copySet, "set", nil, "Fill a placeholder: name=value or id=value (repeatable)")
	copyCmd.Flags().BoolVar(&copyPrint, "print", false, "Print the line instead of copying it")

	return copyCmd
}

// applyOverrides fills placeholders from "key=value" pairs. A key is either a
// placeholder name, which fills every placeholder with that name, or a
// segment id.
func applyOverrides(c *recipe.Command, sets []string) error {
	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		key = strings.Trim(strings.TrimSpace(key), "<>")
		if !ok || key == "" {
			return fmt.Errorf("invalid --set %q: expected placeholder=value", set)
		}

		matched := false
		for _, s := range c.InputSegments() {
			if s.Value == "<"+key+">" || strconv.Itoa(s.ID) == key {
				c.SetOverride(s.ID, value)
				matched = true
			}
		}
		if !matched {
			return fmt.Errorf("invalid --set %q: %s has no placeholder %q", set, c.Name, key)
		}
	}
	return nil
}

var copyCmd = NewCopyCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(copyCmd)
}
