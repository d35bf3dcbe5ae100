package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacetelescope/awesimsoss/internal/help"
	"github.com/spacetelescope/awesimsoss/internal/runner"
)

// rootCmd is the command tree Execute runs against the process arguments.
var rootCmd = NewRootCommand()

// exitFunc terminates the process; tests replace it.
var exitFunc = os.Exit

// NewRootCommand builds a fresh awesimsoss command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "awesimsoss",
		Short: "Console script for awesimsoss.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Replace this message by putting your code into awesimsoss.cli.main")
			fmt.Fprintln(out, "See click documentation at http://click.pocoo.org/")
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	root.AddCommand(newVersionCommand(), newDocsCommand())
	help.Install(root)
	return root
}

// Execute runs the CLI against os.Args and exits with the resulting status.
// Called from main.go.
func Execute() {
	code, _ := runner.Run(rootCmd, os.Args[1:], os.Stdout, os.Stderr)
	if code != runner.ExitOK {
		exitFunc(code)
	}
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasAvailableSubCommands() {
		return runner.Usagef("no such command %q", args[0])
	}
	return runner.Usagef("got unexpected extra argument (%s)", args[0])
}
