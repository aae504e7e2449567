package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillreport/internal/aggregate"
	"github.com/abhisek/drillreport/internal/classify"
	"github.com/abhisek/drillreport/internal/record"
	"github.com/abhisek/drillreport/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate HTML report cards for every student",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

// runReport runs the full pipeline: discover, normalize, aggregate,
// classify, derive feedback, render.
func runReport(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	records, files, err := record.LoadDir(cfg.InputDir, cfg.Pattern)
	if err != nil {
		return err
	}
	log.Info("loaded records", "files", len(files), "rows", len(records))

	normalized, err := record.Normalize(records)
	if err != nil {
		return err
	}

	res, err := aggregate.Build(normalized)
	if err != nil {
		return fmt.Errorf("aggregate records: %w", err)
	}

	profiles := classify.All(res)
	cards := report.BuildCards(profiles)

	writer, err := report.NewWriter(cfg.OutputDir, log)
	if err != nil {
		return err
	}
	if _, err := writer.WriteAll(cards, cfg.Period, time.Now()); err != nil {
		return err
	}

	fmt.Println(report.PopulationTable(res.Population))
	fmt.Println()
	fmt.Println(report.RunSummary(len(cards), len(files), cfg.OutputDir))
	return nil
}
