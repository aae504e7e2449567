package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillreport/internal/aggregate"
	"github.com/abhisek/drillreport/internal/classify"
)

// Console palette — restrained, report-card-ish.
var (
	colPrimary = lipgloss.Color("#667EEA")
	colSuccess = lipgloss.Color("#27AE60")
	colWarn    = lipgloss.Color("#F39C12")
	colError   = lipgloss.Color("#E74C3C")
	colDim     = lipgloss.Color("#94A3B8")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colPrimary)
	labelStyle = lipgloss.NewStyle().Foreground(colDim)
	valueStyle = lipgloss.NewStyle().Bold(true)
)

func tierStyle(t classify.Tier) lipgloss.Style {
	switch t {
	case classify.TierExcellent:
		return lipgloss.NewStyle().Foreground(colSuccess).Bold(true)
	case classify.TierGood:
		return lipgloss.NewStyle().Foreground(colPrimary)
	case classify.TierCaution:
		return lipgloss.NewStyle().Foreground(colWarn)
	default:
		return lipgloss.NewStyle().Foreground(colError).Bold(true)
	}
}

// PopulationTable renders the school-wide averages for terminal output.
func PopulationTable(pop *aggregate.Population) string {
	lines := []string{titleStyle.Render("School Averages")}
	for _, topic := range pop.Topics() {
		lines = append(lines, fmt.Sprintf("  %s %s",
			labelStyle.Render(fmt.Sprintf("%-20s", topic)),
			valueStyle.Render(fmt.Sprintf("%5.1f%%", pop.Average(topic)))))
	}
	return strings.Join(lines, "\n")
}

// CohortTable renders one line per classified student: totals, accuracy,
// tier, and weak/strong counts.
func CohortTable(profiles []classify.Profile) string {
	lines := []string{titleStyle.Render("Students")}
	for _, p := range profiles {
		tier := tierStyle(p.Tier).Render(tierLabel(p.Tier))
		lines = append(lines, fmt.Sprintf("  %-10s %-16s %4d/%-4d %5.1f%%  %s  %s",
			p.ID, p.Name, p.TotalCorrect, p.TotalAttempted, p.TotalAccuracy(), tier,
			labelStyle.Render(fmt.Sprintf("(strong %d, weak %d)", len(p.StrongTopics), len(p.WeakTopics)))))
	}
	return strings.Join(lines, "\n")
}

// RunSummary renders the end-of-run line for the report command.
func RunSummary(students, files int, outDir string) string {
	return fmt.Sprintf("%s %s",
		titleStyle.Render("Done."),
		fmt.Sprintf("%d report cards from %d input files written to %s",
			students, files, outDir))
}
