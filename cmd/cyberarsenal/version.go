/*
Copyright © 2026 The cyberarsenal Authors
*/
package main

import (
	"fmt"

	"github.com/cyberarsenal/cyberarsenal/cmd"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of cyberarsenal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "cyberarsenal version %s\n", client.Version())
			return nil
		},
	}

	return versionCmd
}

var versionCmd = NewVersionCmd(defaultClient)

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
