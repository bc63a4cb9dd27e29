package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tglauncher/internal/updater"
)

func newUpdatesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "updates",
		Short: "Check GitHub for newer mod releases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Updates.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Update checks are disabled in the configuration")
				return nil
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			cat, err := ctx.scanCatalog()
			if err != nil {
				return err
			}

			reports := updater.NewClient(cfg, logger).Check(cmd.Context(), cat)

			out := cmd.OutOrStdout()
			if len(reports) == 0 {
				fmt.Fprintln(out, "No mods declare a GitHub repository")
				return nil
			}

			rows := make([][]string, 0, len(reports))
			for _, report := range reports {
				status := "up to date"
				switch {
				case report.Error != "":
					status = "check failed: " + report.Error
				case report.UpdateAvailable:
					status = "update available"
				}
				rows = append(rows, []string{
					report.ModID,
					report.CurrentVersion,
					report.LatestVersion,
					status,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"MOD", "INSTALLED", "LATEST", "STATUS"}, rows, nil))

			for _, report := range reports {
				if report.UpdateAvailable && report.AssetURL != "" {
					fmt.Fprintf(out, "%s: %s\n", report.ModID, report.AssetURL)
				}
			}
			return nil
		},
	}
}
