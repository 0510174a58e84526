package main

import (
	"fmt"

	"worldcup-dash/worldcup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(a *app) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the normalized tables to a SQLite file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := worldcup.Default()
			if err := exportDataset(cmd.Context(), dbPath, d); err != nil {
				return err
			}
			a.logger.Info("exported dataset",
				zap.String("db", dbPath),
				zap.Int("winners", len(d.Winners())),
				zap.Int("runner_ups", len(d.RunnerUps())),
				zap.Int("year_results", len(d.Results())))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported dataset to %s\n", dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "worldcup.db", "SQLite file to write")
	return cmd
}
