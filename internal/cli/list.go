package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/codex-sessions/internal/config"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matching sessions as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			sessions, err := gatherSessions(cmd.Context(), cmd, root, cfg)
			if err != nil {
				return err
			}

			payload := map[string]any{"sessions": sessions}
			out, err := json.Marshal(payload)
			if pretty {
				out, err = json.MarshalIndent(payload, "", "  ")
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON")
	return cmd
}
