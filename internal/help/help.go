// Package help renders cobra help and usage text in the layout of Python's
// click: a single "Usage:" line, an indented description, then "Options:" and
// "Commands:" definition lists whose columns are separated by two spaces.
package help

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FlagUsage is the description attached to the --help flag of every command.
const FlagUsage = "Show this message and exit."

// colSpacing is the gap between the term and description columns.
const colSpacing = 2

// Install gives cmd and all of its subcommands a long-only --help flag and
// click-style help and usage output. Call it after the command tree is built.
func Install(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		_ = Write(c.OutOrStdout(), c)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return WriteUsage(c.OutOrStderr(), c)
	})
	installFlag(cmd)
}

func installFlag(cmd *cobra.Command) {
	if cmd.Flags().Lookup("help") == nil {
		cmd.Flags().Bool("help", false, FlagUsage)
	}
	for _, c := range cmd.Commands() {
		installFlag(c)
	}
}

// Write writes the full help page for cmd.
func Write(w io.Writer, cmd *cobra.Command) error {
	var b strings.Builder
	b.WriteString(usageLine(cmd))
	b.WriteString("\n")

	if desc := description(cmd); desc != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(desc, "\n") {
			if strings.TrimSpace(line) == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString("  " + line + "\n")
		}
	}

	if opts := options(cmd); len(opts) > 0 {
		b.WriteString("\nOptions:\n")
		writeDefinitions(&b, opts)
	}
	if cmds := commands(cmd); len(cmds) > 0 {
		b.WriteString("\nCommands:\n")
		writeDefinitions(&b, cmds)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteUsage writes the short usage shown above usage errors.
func WriteUsage(w io.Writer, cmd *cobra.Command) error {
	_, err := fmt.Fprintf(w, "%s\nTry '%s --help' for help.\n", usageLine(cmd), cmd.CommandPath())
	return err
}

func usageLine(cmd *cobra.Command) string {
	line := "Usage: " + cmd.CommandPath() + " [OPTIONS]"
	if len(commands(cmd)) > 0 {
		line += " COMMAND [ARGS]..."
	}
	return line
}

func description(cmd *cobra.Command) string {
	if s := strings.TrimSpace(cmd.Long); s != "" {
		return s
	}
	return strings.TrimSpace(cmd.Short)
}

// definition is one row of an Options or Commands list.
type definition struct {
	term string
	text string
}

// options lists the visible flags of cmd with --help last.
func options(cmd *cobra.Command) []definition {
	var (
		defs     []definition
		helpFlag *pflag.Flag
	)
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		if f.Name == "help" {
			helpFlag = f
			return
		}
		defs = append(defs, flagDefinition(f))
	})
	if helpFlag != nil {
		defs = append(defs, flagDefinition(helpFlag))
	}
	return defs
}

func flagDefinition(f *pflag.Flag) definition {
	term := "--" + f.Name
	if f.Shorthand != "" {
		term = "-" + f.Shorthand + ", " + term
	}
	varname, usage := pflag.UnquoteUsage(f)
	if varname != "" {
		term += " " + strings.ToUpper(varname)
	}
	return definition{term: term, text: usage}
}

func commands(cmd *cobra.Command) []definition {
	var defs []definition
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		defs = append(defs, definition{term: c.Name(), text: c.Short})
	}
	return defs
}

func writeDefinitions(w io.Writer, defs []definition) {
	tw := tabwriter.NewWriter(w, 0, 0, colSpacing, ' ', 0)
	for _, d := range defs {
		_, _ = fmt.Fprintf(tw, "  %s\t%s\n", d.term, d.text)
	}
	_ = tw.Flush()
}
