package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/spacetelescope/awesimsoss/internal/runner"
)

// stubBrowser replaces the browser opener for the duration of the test and
// records the URLs it is asked to open.
func stubBrowser(t *testing.T, err error) *[]string {
	t.Helper()
	var opened []string
	orig := browserOpen
	t.Cleanup(func() { browserOpen = orig })
	browserOpen = func(url string) error {
		opened = append(opened, url)
		return err
	}
	return &opened
}

func TestDocs_OpensProjectPage(t *testing.T) {
	disableColor(t)
	opened := stubBrowser(t, nil)

	res := runner.Invoke(NewRootCommand(), "docs")
	if res.ExitCode != 0 {
		t.Fatalf("docs failed: %v (%s)", res.Err, res.Output)
	}
	if len(*opened) != 1 || (*opened)[0] != projectURL {
		t.Fatalf("expected one open of %s, got %v", projectURL, *opened)
	}
	if !strings.Contains(res.Output, "Opened "+projectURL) {
		t.Fatalf("unexpected output:\n%s", res.Output)
	}
}

func TestDocs_PrintOnly(t *testing.T) {
	opened := stubBrowser(t, nil)

	res := runner.Invoke(NewRootCommand(), "docs", "--print")
	if res.ExitCode != 0 {
		t.Fatalf("docs --print failed: %v", res.Err)
	}
	if res.Output != projectURL+"\n" {
		t.Fatalf("unexpected output %q", res.Output)
	}
	if len(*opened) != 0 {
		t.Fatalf("browser should not be opened with --print, got %v", *opened)
	}
}

func TestDocs_OpenerFailure(t *testing.T) {
	stubBrowser(t, errors.New("no display"))

	res := runner.Invoke(NewRootCommand(), "docs")
	if res.ExitCode != runner.ExitError {
		t.Fatalf("exit code = %d, want %d", res.ExitCode, runner.ExitError)
	}
	if !strings.Contains(res.Output, "Error: failed to open browser: no display") {
		t.Fatalf("unexpected output:\n%s", res.Output)
	}
	if strings.Contains(res.Output, "Usage:") {
		t.Fatalf("runtime errors should not print usage:\n%s", res.Output)
	}
}
