package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tglauncher/internal/settings"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and patch the game's settings.txt",
	}

	settingsCmd.AddCommand(newSettingsGetCommand(ctx))
	settingsCmd.AddCommand(newSettingsSetCommand(ctx))

	return settingsCmd
}

func newSettingsGetCommand(ctx *commandContext) *cobra.Command {
	var userDir string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one settings value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			doc, err := settings.Load(cfg.SettingsPath(userDir))
			if err != nil {
				return err
			}
			value, err := doc.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&userDir, "user-dir", "", "Per-mod user directory (defaults to the shared root)")
	return cmd
}

func newSettingsSetCommand(ctx *commandContext) *cobra.Command {
	var userDir string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Patch one settings value, leaving the rest of the file untouched",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.SettingsPath(userDir)
			doc, err := settings.Load(path)
			if err != nil {
				return err
			}
			next, err := doc.Patch(args[0], args[1])
			if err != nil {
				return err
			}
			if err := next.Write(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&userDir, "user-dir", "", "Per-mod user directory (defaults to the shared root)")
	return cmd
}
