package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixml/graphrag-index/internal/resolver"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, err := fmt.Fprintf(out, "%s version %s\n  commit: %s\n  built:  %s\n", resolver.Program, version, commit, date)
			return err
		},
	}
}
