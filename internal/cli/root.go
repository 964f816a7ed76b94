package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/baaaaaaaka/codex-sessions/internal/codexhistory"
	"github.com/baaaaaaaka/codex-sessions/internal/config"
	"github.com/baaaaaaaka/codex-sessions/internal/gitinfo"
	"github.com/baaaaaaaka/codex-sessions/internal/picker"
)

const (
	defaultLimit      = 10
	noSessionsMessage = "No sessions found for this directory."
)

// Seams for tests: no test spawns a process or opens a real terminal.
var (
	pickIndex                = picker.Pick
	gitRunner gitinfo.Runner = gitinfo.ExecRunner
	getwd                    = os.Getwd

	isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }
)

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := config.NewStore(opts.configPath)
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	sessions, err := gatherSessions(ctx, cmd, opts, cfg)
	if err != nil {
		return err
	}

	// A non-terminal stdin or stdout cannot host the picker.
	plain := opts.plain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout)

	if len(sessions) == 0 {
		if !plain {
			fmt.Fprintln(cmd.OutOrStdout(), noSessionsMessage)
		}
		return nil
	}

	if plain {
		for _, sess := range sessions {
			fmt.Fprintln(cmd.OutOrStdout(), codexhistory.FormatSummaryLine(sess))
		}
		return nil
	}

	rows := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		rows = append(rows, codexhistory.FormatSummaryLine(sess))
	}
	idx, err := pickIndex(ctx, picker.Options{Rows: rows})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	if idx < 0 {
		return nil
	}

	return resumeSession(ctx, cmd, opts, cfg, sessions[idx])
}

// gatherSessions runs the scan -> filter -> limit stages shared by the root
// command and `list`.
func gatherSessions(ctx context.Context, cmd *cobra.Command, opts *rootOptions, cfg config.Config) ([]codexhistory.Session, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, err
	}

	sessions, err := codexhistory.ListSessions(opts.codexDir)
	if err != nil {
		return nil, err
	}

	filter := codexhistory.Filter{Dir: cwd, SameRepo: gitinfo.SameRepo}
	if opts.gitScope {
		detector := gitinfo.NewDetector(gitRunner)
		current := detector.Detect(ctx, cwd)
		if current.IsZero() {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: unable to determine git branch; falling back to path-based matching.")
		} else {
			filter.Branch = current.Branch
			filter.Repository = current.Repository
			filter.LookupGit = func(dir string) (string, string) {
				info := detector.Detect(ctx, dir)
				return info.Branch, info.Repository
			}
		}
	}

	return codexhistory.Limit(filter.Apply(sessions), resolveLimit(cmd, opts, cfg)), nil
}

func resolveLimit(cmd *cobra.Command, opts *rootOptions, cfg config.Config) int {
	if cmd.Flags().Changed("limit") {
		return opts.limit
	}
	if cfg.DefaultLimit != 0 {
		return cfg.DefaultLimit
	}
	return defaultLimit
}
