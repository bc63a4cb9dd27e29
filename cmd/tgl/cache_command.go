package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tglauncher/internal/launch"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the game's regenerable caches",
	}

	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	return cacheCmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	var userDir string
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the map, gfx, and music caches",
		Long: `Delete the map, gfx, and music folders inside the user directory.
The game rebuilds them on the next start; save games are never touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete caches under %s without --yes",
					cfg.UserDirPath(userDir))
			}

			removed, err := launch.ClearCache(cfg, userDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(removed) == 0 {
				fmt.Fprintln(out, "Nothing to clear")
				return nil
			}
			for _, path := range removed {
				fmt.Fprintf(out, "Removed %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userDir, "user-dir", "", "Per-mod user directory (defaults to the shared root)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}
