package usda

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// reportConcurrency bounds how many food reports are fetched in parallel.
const reportConcurrency = 5

// FoodReports fetches reports for several NDB numbers concurrently and
// returns them keyed by NDB number. Each report is still one independent
// request; the first classified error cancels the remaining fetches.
func (c *Client) FoodReports(ctx context.Context, ndbNos []string, reportType ReportType) (map[string]*FoodReport, error) {
	if len(ndbNos) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrency)

	var mu sync.Mutex
	results := make(map[string]*FoodReport, len(ndbNos))

	for _, ndbNo := range ndbNos {
		g.Go(func() error {
			report, err := c.FoodReport(ctx, ndbNo, reportType)
			if err != nil {
				return fmt.Errorf("food report %s: %w", ndbNo, err)
			}

			mu.Lock()
			results[ndbNo] = report
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
