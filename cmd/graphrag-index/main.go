// Package main is the entry point for the graphrag-index CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/helixml/graphrag-index/internal/resolver"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return exitCode(cmd.ExecuteContext(ctx), stderr)
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   resolver.Program + " --root ROOT [flags]",
		Short: "Run the GraphRAG indexing pipeline",
		Long: `Validate the run parameters and hand them to the indexing pipeline.

The pipeline is selected with GRAPHRAG_PIPELINE (exec or echo) and, for exec,
GRAPHRAG_PIPELINE_COMMAND. Settings may also come from a .env file.`,
		Args: cobra.ArbitraryArgs,
		// Flags are resolved by the resolver package, not by cobra.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	// "graphrag-index help" shows the run flags; subcommands keep cobra's help.
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != cmd {
			defaultHelp(c, args)
			return
		}
		_, _ = io.WriteString(c.OutOrStdout(), resolver.Usage())
	})

	cmd.AddCommand(versionCmd())

	return cmd
}

// exitCode reports err on stderr and maps it to a process exit status.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	var usageErr *resolver.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "usage: %s --root ROOT [flags]\n", resolver.Program)
		fmt.Fprintf(stderr, "%s: error: %v\n", resolver.Program, usageErr)
		return exitUsage
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}

	fmt.Fprintln(stderr, "Error:", err)
	return exitFailure
}
