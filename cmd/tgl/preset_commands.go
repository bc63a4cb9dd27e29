package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tglauncher/internal/preset"
	"tglauncher/internal/state"
)

func newPresetCommand(ctx *commandContext) *cobra.Command {
	presetCmd := &cobra.Command{
		Use:   "preset",
		Short: "Save and restore named mod selections",
	}

	presetCmd.AddCommand(newPresetSaveCommand(ctx))
	presetCmd.AddCommand(newPresetListCommand(ctx))
	presetCmd.AddCommand(newPresetApplyCommand(ctx))
	presetCmd.AddCommand(newPresetDeleteCommand(ctx))

	return presetCmd
}

func (c *commandContext) presetManager(store *state.Store) (*preset.Manager, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return preset.NewManager(store, logger), nil
}

func newPresetSaveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Snapshot the enabled mods under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *state.Store) error {
				mgr, err := ctx.presetManager(store)
				if err != nil {
					return err
				}
				_, list, err := ctx.syncedList(cmd.Context(), store)
				if err != nil {
					return err
				}
				if err := mgr.Save(cmd.Context(), args[0], list); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q with %d mods\n",
					args[0], len(list.EnabledInOrder()))
				return nil
			})
		},
	}
}

func newPresetListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *state.Store) error {
				mgr, err := ctx.presetManager(store)
				if err != nil {
					return err
				}
				presets, err := mgr.List(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(presets) == 0 {
					fmt.Fprintln(out, "No presets saved")
					return nil
				}
				rows := make([][]string, 0, len(presets))
				for _, p := range presets {
					rows = append(rows, []string{
						p.Name,
						strconv.Itoa(len(p.Mods)),
						strings.Join(p.Mods, ", "),
						p.UpdatedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"NAME", "MODS", "SELECTION", "UPDATED"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

func newPresetApplyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <name>",
		Short: "Replace the enabled set with a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *state.Store) error {
				mgr, err := ctx.presetManager(store)
				if err != nil {
					return err
				}
				cat, list, err := ctx.syncedList(cmd.Context(), store)
				if err != nil {
					return err
				}
				applied, dropped, err := mgr.Apply(cmd.Context(), args[0], cat, list)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Applied preset %q: %d mods enabled\n",
					args[0], len(applied.EnabledInOrder()))
				if len(dropped) > 0 {
					fmt.Fprintf(out, "Skipped mods no longer installed: %s\n",
						strings.Join(dropped, ", "))
				}
				return nil
			})
		},
	}
}

func newPresetDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *state.Store) error {
				mgr, err := ctx.presetManager(store)
				if err != nil {
					return err
				}
				if err := mgr.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", args[0])
				return nil
			})
		},
	}
}
