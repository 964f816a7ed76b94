package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/codex-sessions/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit preferences",
	}
	cmd.AddCommand(
		newConfigPathCmd(root),
		newConfigSetCodexPathCmd(root),
		newConfigSetLimitCmd(root),
	)
	return cmd
}

func newConfigPathCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
}

func newConfigSetCodexPathCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-codex-path <path>",
		Short: "Persist the Codex CLI path used for resuming",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			return store.Update(func(cfg *config.Config) error {
				cfg.CodexPath = args[0]
				return nil
			})
		},
	}
}

func newConfigSetLimitCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-limit <n>",
		Short: "Persist the default session limit (0 resets to the built-in default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[0], err)
			}
			if n < 0 {
				return fmt.Errorf("limit must not be negative")
			}
			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			return store.Update(func(cfg *config.Config) error {
				cfg.DefaultLimit = n
				return nil
			})
		},
	}
}
