package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tglauncher/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Run the launch preflight checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{
					passFail(result.Passed, colorize),
					result.Name,
					result.Detail,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"", "CHECK", "DETAIL"}, rows, nil))

			if !preflight.AllPassed(results) {
				return fmt.Errorf("preflight checks failed")
			}
			return nil
		},
	}
}
