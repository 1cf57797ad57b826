// summary.go powers 'iedash summary', printing a terminal-friendly scorecard.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/iedash/internal/metrics"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the key indicators as an ASCII summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSummary(cmd.OutOrStdout(), metrics.Generate())
			return nil
		},
	}
}

func renderSummary(w io.Writer, d metrics.Dataset) {
	years := metrics.AcademicYears()
	latest := len(years) - 1
	fmt.Fprintf(w, "Institutional Effectiveness Summary (%s)\n\n", years[latest])

	fmt.Fprintln(w, "=== Education ===")
	fmt.Fprintf(w, "  %-28s %d\n", "Total enrollment", d.Education.Enrollment[latest])
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "Step 1 pass rate", d.Education.Step1Pass[latest])
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "Step 2 CK pass rate", d.Education.Step2Pass[latest])
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "Residency match rate", d.Education.MatchRate[latest])
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "Attrition rate", d.Education.AttritionRate[latest])
	fmt.Fprintf(w, "  %-28s %.2f / 5\n\n", "MSQ satisfaction", d.Education.MSQSatisfaction[latest])

	fmt.Fprintln(w, "=== Research ===")
	fmt.Fprintf(w, "  %-28s $%.1fM (NIH $%.1fM)\n", "Total funding", d.Research.TotalFundingM[latest], d.Research.NIHFundingM[latest])
	fmt.Fprintf(w, "  %-28s %d\n", "Peer-reviewed publications", d.Research.FacultyPubs[latest])
	fmt.Fprintf(w, "  %-28s %d\n", "Active clinical trials", d.Research.ClinicalTrials[latest])
	fmt.Fprintf(w, "  %-28s %d\n\n", "Median faculty h-index", d.Research.HIndexMedian[latest])

	fmt.Fprintln(w, "=== Workforce ===")
	fmt.Fprintf(w, "  %-28s %d\n", "Total faculty", d.Workforce.TotalFaculty[latest])
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "Female faculty", d.Workforce.PctFemaleFaculty[latest])
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "URM faculty", d.Workforce.PctURMFaculty[latest])
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "Voluntary turnover", d.Workforce.VoluntaryTurnover[latest])
	fmt.Fprintln(w, "  Department satisfaction (1-5, low to high):")
	for _, entry := range d.Workforce.RankedDepartments() {
		line := fmt.Sprintf("    - %-22s %.2f", entry.Department, entry.Score)
		if entry.Score < metrics.LowScoreThreshold {
			line = color.RedString("%s  (below %.1f)", line, metrics.LowScoreThreshold)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Compliance ===")
	fmt.Fprintf(w, "  %-28s %s\n", "Accreditation", d.Compliance.AccreditationStatus)
	fmt.Fprintf(w, "  %-28s %d of %d\n", "LCME standards met", d.Compliance.StandardsMet, d.Compliance.TotalStandards)
	fmt.Fprintf(w, "  %-28s %d\n", "Open action items", d.Compliance.OpenActionItems)
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "ISA completion", d.Compliance.ISACompletion)
	fmt.Fprintf(w, "  %-28s %.1f%%\n", "Compliance training", d.Compliance.ComplianceTrainingPct)
	needsAttention := 0
	for _, cell := range d.Compliance.StandardsGrid {
		if cell.Status == metrics.StatusNeedsAttention {
			needsAttention++
		}
	}
	if needsAttention > 0 {
		fmt.Fprintf(w, "  %s\n", color.YellowString("%d grid element(s) need attention", needsAttention))
	}
}
