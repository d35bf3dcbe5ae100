package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	// these will be overridden at build time using -ldflags
	version = "0.0.1"
	commit  = "dev"
	date    = "unknown"
)

// newVersionCommand prints awesimsoss build information.
func newVersionCommand() *cobra.Command {
	var short bool
	c := &cobra.Command{
		Use:   "version",
		Short: "Show awesimsoss version information.",
		Long:  `Displays the current version, git commit, and build date for awesimsoss.`,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}
			renderVersion(cmd.OutOrStdout())
			return nil
		},
	}
	c.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number.")
	return c
}

// renderVersion writes the build information as a borderless two-column table.
func renderVersion(w io.Writer) {
	key := color.New(color.FgCyan, color.Bold)
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	rows := [][]string{
		{"version", version},
		{"commit", commit},
		{"built", date},
		{"go", runtime.Version()},
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
	}
	for _, r := range rows {
		table.Append([]string{key.Sprint(r[0]), r[1]})
	}
	table.Render()
}
