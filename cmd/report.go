package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LordUttam/go-usda/usda"
)

var reportType string

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <ndbno>...",
	Short: "Fetch nutrient reports for foods by NDB number",
	Long: `Fetch the nutrient report for one or more foods. Multiple NDB
numbers are fetched concurrently.

Report types: b (basic), f (full), s (stats).`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportType, "type", "t", "b", "report type (b/f/s)")
}

func runReport(cmd *cobra.Command, args []string) error {
	switch usda.ReportType(reportType) {
	case usda.ReportBasic, usda.ReportFull, usda.ReportStats:
	default:
		return fmt.Errorf("invalid report type: %s (must be b, f or s)", reportType)
	}

	ctx := context.Background()

	if len(args) == 1 {
		report, err := usdaClient.FoodReport(ctx, args[0], usda.ReportType(reportType))
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	}

	logger.Info().Int("count", len(args)).Msg("Fetching food reports")

	reports, err := usdaClient.FoodReports(ctx, args, usda.ReportType(reportType))
	if err != nil {
		return err
	}

	for _, ndbNo := range args {
		if report, ok := reports[ndbNo]; ok {
			printReport(report)
		}
	}
	return nil
}

func printReport(report *usda.FoodReport) {
	fmt.Printf("\n%s [%s]\n", report.Food.Name, report.Food.NDBNo)
	if report.Release != "" {
		fmt.Printf("Release: SR%s\n", report.Release)
	}
	fmt.Println(strings.Repeat("-", 80))

	for _, nutrient := range report.Food.Nutrients {
		fmt.Printf("%-40s %10s %-6s", nutrient.Name, nutrient.Value, nutrient.Unit)
		if len(nutrient.Measures) > 0 {
			m := nutrient.Measures[0]
			fmt.Printf("  (%s per %.4g %s)", m.Value, m.Quantity, m.Label)
		}
		fmt.Println()
	}

	for _, note := range report.Footnotes {
		fmt.Printf("  note %s: %s\n", note.ID, note.Description)
	}
}
