// Package usda provides a client for the USDA National Nutrient Database
// (NDB) API on Data.gov.
//
// The client wraps the generic datagov request layer with typed access to
// the four NDB endpoints: lists (foods, food groups, nutrients), food
// reports, nutrient reports, and food search.
//
// # Usage
//
//	client, err := usda.NewClient(apiKey, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Search for foods
//	results, err := client.SearchFoods(ctx, usda.SearchOptions{Query: "butter"})
//
//	// Fetch a full report for one food
//	report, err := client.FoodReport(ctx, "01009", usda.ReportFull)
//
// # Pagination
//
// The list and search endpoints page their results. Pagers fetch one page
// per Next call:
//
//	pager := client.ListPager(usda.ListFood, usda.ListOptions{Max: 100})
//	for {
//	    items, err := pager.Next(ctx)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if items == nil {
//	        break
//	    }
//	    // process items
//	}
//
// Errors propagate from the datagov package unchanged; see its error
// taxonomy for classification.
package usda
