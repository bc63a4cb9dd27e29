package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tglauncher/internal/launch"
	"tglauncher/internal/state"
)

func newLaunchCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Start the game with the enabled mods",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			prefs, err := ctx.loadPrefs()
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *state.Store) error {
				cat, list, err := ctx.syncedList(cmd.Context(), store)
				if err != nil {
					return err
				}

				command, err := launch.NewBuilder(cfg, logger).Build(cat, list, prefs)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if dryRun {
					fmt.Fprintf(out, "%s %s\n", command.Path, strings.Join(command.Args, " "))
					fmt.Fprintf(out, "priority: %s\n", command.Priority)
					fmt.Fprintf(out, "user dir: %s\n", command.UserDir)
					return nil
				}

				pid, err := launch.NewRunner(cfg, logger).Start(cmd.Context(), command)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Game started (pid %d)\n", pid)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Assemble the command without starting the game")
	return cmd
}
