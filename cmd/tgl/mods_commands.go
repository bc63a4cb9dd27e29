package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"tglauncher/internal/state"
	"tglauncher/internal/watcher"
)

func newModsCommand(ctx *commandContext) *cobra.Command {
	modsCmd := &cobra.Command{
		Use:   "mods",
		Short: "Inspect and order installed mods",
	}

	modsCmd.AddCommand(newModsListCommand(ctx))
	modsCmd.AddCommand(newModsRefreshCommand(ctx))
	modsCmd.AddCommand(newModsEnableCommand(ctx, true))
	modsCmd.AddCommand(newModsEnableCommand(ctx, false))
	modsCmd.AddCommand(newModsMoveCommand(ctx))
	modsCmd.AddCommand(newModsWatchCommand(ctx))

	return modsCmd
}

func newModsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed mods in load order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *state.Store) error {
				cat, list, err := ctx.syncedList(cmd.Context(), store)
				if err != nil {
					return err
				}

				rows := make([][]string, 0, list.Len())
				for _, pos := range list.Positions() {
					mod, _ := cat.ByID(pos.ModID)
					position := "-"
					if pos.Enabled {
						position = strconv.Itoa(pos.Load)
					}
					rows = append(rows, []string{
						position,
						pos.ModID,
						mod.Name,
						yesNo(pos.Enabled),
						mod.Version,
						mod.UserDir,
					})
				}

				out := cmd.OutOrStdout()
				if len(rows) == 0 {
					fmt.Fprintln(out, "No mods installed")
					return nil
				}
				fmt.Fprintln(out, renderTable(
					[]string{"POS", "ID", "NAME", "ENABLED", "VERSION", "USER DIR"},
					rows,
					[]columnAlignment{alignRight},
				))
				return nil
			})
		},
	}
}

func newModsRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Rescan the mods directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *state.Store) error {
				cat, list, err := ctx.syncedList(cmd.Context(), store)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Found %d mods, %d enabled\n",
					cat.Len(), len(list.EnabledInOrder()))
				return nil
			})
		},
	}
}

func newModsEnableCommand(ctx *commandContext, enable bool) *cobra.Command {
	use, short := "enable <mod-id>", "Enable a mod"
	if !enable {
		use, short = "disable <mod-id>", "Disable a mod"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *state.Store) error {
				_, list, err := ctx.syncedList(cmd.Context(), store)
				if err != nil {
					return err
				}
				list, err = list.SetEnabled(args[0], enable)
				if err != nil {
					return err
				}
				if err := store.SaveLoadOrder(cmd.Context(), list.Entries()); err != nil {
					return err
				}
				verb := "disabled"
				if enable {
					verb = "enabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], verb)
				return nil
			})
		},
	}
}

func newModsMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <mod-id> <position>",
		Short: "Move a mod to a new position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse position %q: %w", args[1], err)
			}
			return ctx.withStore(func(store *state.Store) error {
				_, list, err := ctx.syncedList(cmd.Context(), store)
				if err != nil {
					return err
				}
				list, err = list.MoveTo(args[0], position)
				if err != nil {
					return err
				}
				if err := store.SaveLoadOrder(cmd.Context(), list.Entries()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s moved\n", args[0])
				return nil
			})
		},
	}
}

func newModsWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the mods directory and rescan on changes",
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
				watchCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				w, err := watcher.New(cfg.Paths.ModsDir, watcher.DefaultDebounce, func() {
					cat, list, syncErr := ctx.syncedList(watchCtx, store)
					if syncErr != nil {
						logger.Warn("rescan failed", "error", syncErr)
						return
					}
					logger.Info("mods directory rescanned",
						"mods", cat.Len(), "enabled", len(list.EnabledInOrder()))
				}, logger)
				if err != nil {
					return err
				}
				if err := w.Start(watchCtx); err != nil {
					return err
				}
				defer w.Stop()

				fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (ctrl-c to stop)\n", cfg.Paths.ModsDir)
				<-watchCtx.Done()
				return nil
			})
		},
	}
}
