package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LordUttam/go-usda/filter"
	"github.com/LordUttam/go-usda/usda"
)

var (
	filterExpr   string
	preset       string
	searchMax    int
	searchOffset int
	dataSource   string
	foodGroup    string
	searchAll    bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by name",
	Long: `Search the NDB for foods matching a query.

Results can be narrowed server-side with --ds and --fg, and filtered
client-side with an expression:

  go-usda search butter --filter 'source == "SR" and contains(group, "dairy")'`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	searchCmd.Flags().IntVar(&searchMax, "max", 0, "page size (default from config)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "index of the first result")
	searchCmd.Flags().StringVar(&dataSource, "ds", "", "data source (Standard Reference or Branded Food Products)")
	searchCmd.Flags().StringVar(&foodGroup, "fg", "", "restrict to one food group id")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "fetch every page of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	opts := usda.SearchOptions{
		Query:       query,
		FoodGroupID: foodGroup,
		DataSource:  dataSource,
		Max:         searchMax,
		Offset:      searchOffset,
	}
	if opts.Max == 0 {
		opts.Max = cfg.Search.MaxResults
	}
	if opts.DataSource == "" {
		opts.DataSource = cfg.Search.DataSource
	}

	logger.Info().Str("query", query).Msg("Searching foods")

	ctx := context.Background()
	var items []usda.FoodItem
	var total int
	if searchAll {
		all, err := usdaClient.SearchPager(opts).All(ctx)
		if err != nil {
			return err
		}
		items = all
		total = len(all)
	} else {
		result, err := usdaClient.SearchFoods(ctx, opts)
		if err != nil {
			return err
		}
		items = result.Items
		total = result.Total
	}

	// Apply client-side filter if requested
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		compiled, err := filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		items, err = compiled.Apply(items)
		if err != nil {
			return err
		}
	}

	if len(items) == 0 {
		fmt.Println("No foods found.")
		return nil
	}

	fmt.Printf("\nShowing %d of %d foods:\n", len(items), total)
	fmt.Println(strings.Repeat("-", 80))
	for _, item := range items {
		fmt.Printf("• %s [%s]\n", item.Name, item.NDBNo)
		fmt.Printf("  Group: %s  Source: %s\n", item.Group, item.DataSource)
		if item.Manufacturer != "" && item.Manufacturer != "none" {
			fmt.Printf("  Manufacturer: %s\n", item.Manufacturer)
		}
	}

	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > config default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.Default, nil
}
