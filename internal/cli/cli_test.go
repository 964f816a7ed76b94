package cli

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/baaaaaaaka/codex-sessions/internal/picker"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	prev := os.Args
	t.Cleanup(func() { os.Args = prev })
	os.Args = append([]string{"codex-sessions"}, args...)
}

func TestExecuteVersionExitZero(t *testing.T) {
	setArgs(t, "--version")
	if code := Execute(); code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}
}

func TestExecuteInvalidFlagExitOne(t *testing.T) {
	setArgs(t, "--not-a-flag")
	if code := Execute(); code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
}

func TestExecutePropagatesResumeExitCode(t *testing.T) {
	stubSeams(t)
	proj := t.TempDir()
	codexDir := newCodexFixture(t, proj)
	getwd = func() (string, error) { return proj, nil }
	isTerminal = func(*os.File) bool { return true }
	pickIndex = func(context.Context, picker.Options) (int, error) { return 0, nil }
	runResumeFunc = func(context.Context, io.Writer, string, []string, string) error {
		return exitCodeError{code: 5}
	}

	args := append(fixtureArgs(t, codexDir), "--codex-path", "/fake/codex")
	setArgs(t, args...)
	if code := Execute(); code != 5 {
		t.Fatalf("code = %d, want child exit code 5", code)
	}
}

func TestBuildVersion(t *testing.T) {
	prevVersion, prevCommit, prevDate := version, commit, date
	t.Cleanup(func() { version, commit, date = prevVersion, prevCommit, prevDate })

	version, commit, date = "v1.2.3", "", ""
	if got := buildVersion(); got != "v1.2.3" {
		t.Fatalf("got %q", got)
	}
	version, commit, date = "v1.2.3", "abc123", "2026-02-11"
	if got := buildVersion(); got != "v1.2.3 (abc123) 2026-02-11" {
		t.Fatalf("got %q", got)
	}
}
