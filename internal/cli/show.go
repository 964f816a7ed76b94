package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/codex-sessions/internal/codexhistory"
)

func newShowCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <session-id>",
		Short: "Print metadata for one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := codexhistory.FindSessionByID(root.codexDir, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, codexhistory.FormatSummaryLine(*sess))
			_, _ = fmt.Fprintln(out, "  file:", sess.FilePath)
			if sess.GitRepository != "" {
				_, _ = fmt.Fprintln(out, "  repository:", sess.GitRepository)
			}
			if !sess.Timestamp.IsZero() {
				_, _ = fmt.Fprintln(out, "  started:", sess.Timestamp.Format(time.RFC3339))
			}
			return nil
		},
	}
	return cmd
}
