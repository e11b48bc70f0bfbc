package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LordUttam/go-usda/usda"
)

var (
	listMax    int
	listOffset int
	listSort   string
	listAll    bool
)

// listTypes maps the list argument to the API's list type codes.
var listTypes = map[string]usda.ListType{
	"foods":               usda.ListFood,
	"groups":              usda.ListFoodGroup,
	"nutrients":           usda.ListAllNutrients,
	"standard-nutrients":  usda.ListStandardNutrients,
	"specialty-nutrients": usda.ListSpecialtyNutrients,
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list {foods|groups|nutrients|standard-nutrients|specialty-nutrients}",
	Short:   "List foods, food groups, or nutrients",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listMax, "max", 50, "page size")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "index of the first entry")
	listCmd.Flags().StringVar(&listSort, "sort", "n", "sort by name (n) or id (id)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "fetch every page")
}

func runList(cmd *cobra.Command, args []string) error {
	listType, ok := listTypes[args[0]]
	if !ok {
		return fmt.Errorf("unknown list type: %s", args[0])
	}

	opts := usda.ListOptions{Max: listMax, Offset: listOffset, Sort: listSort}
	ctx := context.Background()

	var items []usda.ListItem
	if listAll {
		all, err := usdaClient.ListPager(listType, opts).All(ctx)
		if err != nil {
			return err
		}
		items = all
	} else {
		list, err := usdaClient.ListPager(listType, opts).Next(ctx)
		if err != nil {
			return err
		}
		items = list
	}

	if len(items) == 0 {
		fmt.Println("Nothing to list.")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%-10s %s\n", item.ID, item.Name)
	}
	fmt.Printf("\n%d entries\n", len(items))

	return nil
}
