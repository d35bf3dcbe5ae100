package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// projectURL is the awesimsoss project page.
const projectURL = "https://github.com/spacetelescope/awesimsoss"

// newDocsCommand opens the project page in the default browser.
func newDocsCommand() *cobra.Command {
	var printOnly bool
	c := &cobra.Command{
		Use:   "docs",
		Short: "Open the awesimsoss project page.",
		Long:  `Opens the awesimsoss project page in your default browser, or prints its URL with --print.`,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if printOnly {
				fmt.Fprintln(out, projectURL)
				return nil
			}
			if err := browserOpen(projectURL); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}
			fmt.Fprintf(out, "Opened %s in your default browser.\n", color.New(color.FgCyan).Sprint(projectURL))
			return nil
		},
	}
	c.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the URL instead of opening it.")
	return c
}

// browserOpen is a package-level function variable to allow tests to stub the opener.
var browserOpen = openInBrowser

// openInBrowser opens url in the user's default browser without blocking.
func openInBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		if err := exec.Command("xdg-open", url).Start(); err == nil {
			return nil
		}
		return exec.Command("open", url).Start()
	}
}
