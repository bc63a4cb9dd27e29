package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newPrefsCommand(ctx *commandContext) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Launcher preferences",
	}

	prefsCmd.AddCommand(newPrefsListCommand(ctx))
	prefsCmd.AddCommand(newPrefsSetCommand(ctx))

	return prefsCmd
}

func newPrefsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show effective launcher preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := ctx.loadPrefs()
			if err != nil {
				return err
			}

			keys := prefs.Keys()
			names := make([]string, 0, len(keys))
			for name := range keys {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, keys[name]})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"PREFERENCE", "VALUE"}, rows, nil))
			return nil
		},
	}
}

func newPrefsSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a launcher preference",
		Long: `Set a launcher preference.

Known keys: update_time (game speed, higher is faster), realtime (raise
process priority), skipintro (hide the intro movies), and
merge_event_modifiers (rebuild the merged artifact before each launch).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := ctx.loadPrefs()
			if err != nil {
				return err
			}
			if err := prefs.Set(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], args[1])
			return nil
		},
	}
}
