package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillreport/internal/export"
	"github.com/abhisek/drillreport/internal/record"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge record CSVs into one flat CSV and an XLSX pivot workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		records, files, err := record.LoadDir(cfg.InputDir, cfg.Pattern)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no record files matching %q in %s", cfg.Pattern, cfg.InputDir)
		}
		log.Info("loaded records", "files", len(files), "rows", len(records))

		normalized, err := record.Normalize(records)
		if err != nil {
			return err
		}
		log.Info("normalized records", "rows", len(normalized))

		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := record.WriteFile(cfg.MergedCSVPath(), normalized); err != nil {
			return err
		}
		if err := export.Workbook(cfg.WorkbookPath(), normalized); err != nil {
			return err
		}

		fmt.Printf("Merged %d rows from %d files into %s and %s\n",
			len(normalized), len(files), cfg.MergedCSVPath(), cfg.WorkbookPath())
		return nil
	},
}
