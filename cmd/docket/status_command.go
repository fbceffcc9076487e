package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docket/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check directories, external tools, and LLM reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			colorize := shouldColorize(cmd.OutOrStdout())

			rows := make([][]string, 0, len(results))
			failures := 0
			for _, result := range results {
				if !result.Passed {
					failures++
				}
				rows = append(rows, []string{
					result.Name,
					renderCheckMark(result.Passed, colorize),
					result.Detail,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows))

			if failures > 0 {
				return fmt.Errorf("%d of %d checks failed", failures, len(results))
			}
			return nil
		},
	}
}
