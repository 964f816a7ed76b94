package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/codex-sessions/internal/codexhistory"
	"github.com/baaaaaaaka/codex-sessions/internal/config"
)

// exitCodeError carries a child process exit code to Execute without any
// wrapping along the way.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var runResumeFunc = runResume

// resumeCommandLine is the user-facing form of the resume invocation, shown
// by --no-resume and in the not-installed hint.
func resumeCommandLine(s codexhistory.Session) string {
	return "codex resume " + s.SessionID
}

func resumeSession(
	ctx context.Context,
	cmd *cobra.Command,
	opts *rootOptions,
	cfg config.Config,
	sess codexhistory.Session,
) error {
	line := resumeCommandLine(sess)
	if opts.noResume {
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	}

	path, err := resolveCodexPath(opts.codexPath, cfg.CodexPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "codex command not found. Run `%s` manually.\n", line)
		return exitCodeError{code: 1}
	}

	dir := codexhistory.SessionWorkingDir(sess)
	err = runResumeFunc(ctx, cmd.ErrOrStderr(), path, []string{"resume", sess.SessionID}, dir)

	var exit exitCodeError
	if errors.As(err, &exit) && exit.code != 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "codex exited with status %d. Run `%s` manually.\n", exit.code, line)
	}
	return err
}

func resolveCodexPath(flagPath, cfgPath string) (string, error) {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(cfgPath); p != "" {
		return p, nil
	}
	return exec.LookPath("codex")
}

// runResume hands the terminal to `codex resume <id>` and reports its exit
// code back as an exitCodeError.
func runResume(ctx context.Context, stderr io.Writer, path string, args []string, dir string) error {
	c := exec.CommandContext(ctx, path, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitDueToFatalSignal(err) {
			fmt.Fprintf(stderr, "codex terminated by a fatal signal: %v\n", exitErr)
		}
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		return exitCodeError{code: code}
	}
	return err
}
