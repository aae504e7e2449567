package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillreport/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "drillreport",
	Short: "Drill feedback report generator",
	Long:  "Drillreport — merges quiz-drill record CSVs and generates per-student HTML report cards with graded feedback from two teacher personas.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (default: drillreport.yaml if present)")
	rootCmd.PersistentFlags().String("input", "", "Input directory with record CSVs (overrides DRILLREPORT_INPUT)")
	rootCmd.PersistentFlags().String("output", "", "Output directory (overrides DRILLREPORT_OUTPUT)")
	rootCmd.PersistentFlags().String("period", "", "Period label shown on report cards")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings in priority order: flags, then env vars,
// then the config file, then defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.InputDir = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("period"); v != "" {
		cfg.Period = v
	}
	return cfg, nil
}

// newLogger builds the slog logger all commands share.
func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}
