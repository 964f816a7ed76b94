package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath string
	codexDir   string
	codexPath  string
	gitScope   bool
	limit      int
	plain      bool
	noResume   bool
}

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		var exit exitCodeError
		if errors.As(err, &exit) {
			// The resume child's exit code passes through unchanged.
			return exit.code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "codex-sessions",
		Short:         "List and resume Codex sessions for the current project",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: OS user config dir)")
	cmd.PersistentFlags().StringVar(&opts.codexDir, "codex-dir", "", "Override Codex data dir (default: ~/.codex)")
	cmd.PersistentFlags().StringVar(&opts.codexPath, "codex-path", "", "Override Codex CLI path (default: search PATH)")
	cmd.PersistentFlags().BoolVar(&opts.gitScope, "git", false, "Restrict to sessions on the current git branch")
	cmd.PersistentFlags().IntVar(&opts.limit, "limit", defaultLimit, "Maximum number of sessions to show (0 = no limit)")
	cmd.PersistentFlags().BoolVar(&opts.noResume, "no-resume", false, "Do not execute `codex resume`; just print the command")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print matching sessions without interactive selection")

	cmd.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newOpenCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
