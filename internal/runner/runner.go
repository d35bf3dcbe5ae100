// Package runner invokes cobra commands in-process and reduces the outcome to
// an exit code and the captured output, the same way a shell would see it.
//
// cmd.Execute uses Run against the real stdout and stderr; tests use Invoke to
// get a Result without spawning a process.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Exit codes produced by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Result is the outcome of a single invocation.
type Result struct {
	ExitCode int
	// Output holds stdout and stderr, merged in write order.
	Output string
	// Err is the error returned by the command, or the recovered panic.
	Err error
}

// ExitStatus lets a command request a specific exit code.
type ExitStatus struct {
	Code int
	Err  error
}

func (e *ExitStatus) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitStatus) Unwrap() error { return e.Err }

// UsageError marks a bad invocation: unknown flags, unknown commands or
// unexpected arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string.
func Usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var es *ExitStatus
	if errors.As(err, &es) {
		return es.Code
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

// Invoke runs cmd with args and captures everything it writes. A nil or
// empty args means "no arguments"; os.Args is never consulted.
func Invoke(cmd *cobra.Command, args ...string) Result {
	var buf bytes.Buffer
	code, err := Run(cmd, args, &buf, &buf)
	return Result{ExitCode: code, Output: buf.String(), Err: err}
}

// Run executes cmd with args, writing output to stdout and errors to stderr,
// and returns the exit code together with the command's error. Panics are
// recovered and reported as ExitError. Flag values are restored to their
// defaults afterwards so the same command tree can be run again.
func Run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) (code int, err error) {
	if args == nil {
		args = []string{}
	}
	root := cmd.Root()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, ferr error) error {
		return &UsageError{Err: ferr}
	})
	defer func() {
		root.SetOut(nil)
		root.SetErr(nil)
		root.SetArgs(nil)
		ResetFlags(root)
	}()

	failed := root
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			code = ExitError
			Report(stderr, failed, err)
		}
	}()

	failed, err = root.ExecuteC()
	if err != nil {
		if failed == nil {
			failed = root
		}
		Report(stderr, failed, err)
	}
	return ExitCode(err), err
}

// Report writes err the way the command line shows it: usage errors are
// preceded by the command's usage text, every error ends with an "Error: "
// line. An ExitStatus without a wrapped error prints nothing.
func Report(w io.Writer, cmd *cobra.Command, err error) {
	var es *ExitStatus
	if errors.As(err, &es) && es.Err == nil {
		return
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		_, _ = io.WriteString(w, cmd.UsageString())
		_, _ = io.WriteString(w, "\n")
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}

// ResetFlags restores every local and persistent flag in the tree rooted at
// cmd to its default value and clears its Changed marker.
func ResetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		ResetFlags(c)
	}
}
