package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillreport/internal/aggregate"
	"github.com/abhisek/drillreport/internal/classify"
	"github.com/abhisek/drillreport/internal/record"
	"github.com/abhisek/drillreport/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show school averages and per-student standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		records, _, err := record.LoadDir(cfg.InputDir, cfg.Pattern)
		if err != nil {
			return err
		}
		normalized, err := record.Normalize(records)
		if err != nil {
			return err
		}
		res, err := aggregate.Build(normalized)
		if err != nil {
			return fmt.Errorf("aggregate records: %w", err)
		}

		fmt.Println(report.PopulationTable(res.Population))
		fmt.Println()
		fmt.Println(report.CohortTable(classify.All(res)))
		return nil
	},
}
