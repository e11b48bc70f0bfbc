package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LordUttam/go-usda/usda"
)

var (
	nutrientIDs  []string
	foodGroupIDs []string
	nutrientMax  int
)

// nutrientsCmd represents the nutrients command
var nutrientsCmd = &cobra.Command{
	Use:   "nutrients",
	Short: "Report foods by nutrient content",
	Long: `Fetch a nutrient report: foods ordered by their content of the
requested nutrients.

  go-usda nutrients --nutrient 208 --nutrient 204 --fg 0100`,
	PreRunE: initializeApp,
	RunE:    runNutrients,
}

func init() {
	rootCmd.AddCommand(nutrientsCmd)

	nutrientsCmd.Flags().StringArrayVarP(&nutrientIDs, "nutrient", "n", nil, "nutrient id (repeatable, max 20)")
	nutrientsCmd.Flags().StringArrayVar(&foodGroupIDs, "fg", nil, "restrict to food group id (repeatable)")
	nutrientsCmd.Flags().IntVar(&nutrientMax, "max", 50, "number of foods to report")
}

func runNutrients(cmd *cobra.Command, args []string) error {
	if len(nutrientIDs) == 0 {
		return fmt.Errorf("at least one --nutrient id is required")
	}

	report, err := usdaClient.NutrientReport(context.Background(), usda.NutrientReportOptions{
		NutrientIDs:  nutrientIDs,
		FoodGroupIDs: foodGroupIDs,
		Max:          nutrientMax,
	})
	if err != nil {
		return err
	}

	if len(report.Foods) == 0 {
		fmt.Println("No foods in report.")
		return nil
	}

	fmt.Printf("\n%d of %d foods:\n", len(report.Foods), report.Total)
	fmt.Println(strings.Repeat("-", 80))
	for _, food := range report.Foods {
		fmt.Printf("• %s [%s] (%s)\n", food.Name, food.NDBNo, food.Measure)
		for _, nutrient := range food.Nutrients {
			fmt.Printf("  %-30s %8s %-6s (%.4g per 100 g)\n",
				nutrient.Name, nutrient.Value, nutrient.Unit, nutrient.Per100G)
		}
	}

	return nil
}
