package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/codex-sessions/internal/codexhistory"
	"github.com/baaaaaaaka/codex-sessions/internal/config"
)

func newOpenCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <session-id>",
		Short: "Resume a session by id, skipping the picker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			sess, err := codexhistory.FindSessionByID(root.codexDir, args[0])
			if err != nil {
				return err
			}
			return resumeSession(ctx, cmd, root, cfg, *sess)
		},
	}
	return cmd
}
