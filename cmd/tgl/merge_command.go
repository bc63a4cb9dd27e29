package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tglauncher/internal/modifiers"
	"tglauncher/internal/state"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Rebuild the merged event-modifier artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *state.Store) error {
				cat, list, err := ctx.syncedList(cmd.Context(), store)
				if err != nil {
					return err
				}

				result, err := modifiers.Rebuild(cfg.Paths.ModsDir, cat, list.EnabledInOrder(), logger)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Merged %d fragments into %d blocks (%s)\n",
					result.Fragments, result.Blocks, result.OutputPath)
				for _, override := range result.Overrides {
					fmt.Fprintf(out, "  %s: %s overrides %s\n",
						override.BlockID, override.Winner, override.Loser)
				}
				return nil
			})
		},
	}
}
