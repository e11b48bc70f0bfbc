package usda

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/LordUttam/go-usda/datagov"
)

// uriPart is the path segment the NDB service lives under on Data.gov.
const uriPart = "usda/ndb"

// maxNutrientIDs is the API's cap on nutrient_id values per report.
const maxNutrientIDs = 20

// Client wraps the USDA National Nutrient Database API.
type Client struct {
	api    *datagov.Client
	logger zerolog.Logger
}

// NewClient creates an NDB client authenticated with key. Options are
// forwarded to the underlying Data.gov client.
func NewClient(key string, logger zerolog.Logger, opts ...datagov.Option) (*Client, error) {
	api, err := datagov.NewClient(uriPart, key, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create NDB client: %w", err)
	}

	return &Client{
		api:    api,
		logger: logger,
	}, nil
}

// ListOptions controls paging and ordering for the list endpoints.
type ListOptions struct {
	// Max is the page size; the API default is 50.
	Max int
	// Offset is the zero-based index of the first entry to return.
	Offset int
	// Sort orders by name ("n") or id ("id").
	Sort string
}

func (o ListOptions) values(lt ListType) url.Values {
	params := url.Values{}
	params.Set("lt", string(lt))
	if o.Max > 0 {
		params.Set("max", strconv.Itoa(o.Max))
	}
	if o.Offset > 0 {
		params.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Sort != "" {
		params.Set("sort", o.Sort)
	}
	return params
}

// list performs one request against the list endpoint.
func (c *Client) list(ctx context.Context, lt ListType, opts ListOptions) (*List, error) {
	var resp listResponse
	if err := c.api.Get(ctx, datagov.ActionList, opts.values(lt), &resp); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("list_type", string(lt)).
		Int("count", len(resp.List.Items)).
		Int("total", resp.List.Total).
		Msg("Retrieved list page from NDB")

	return &resp.List, nil
}

// ListFoods returns one page of foods.
func (c *Client) ListFoods(ctx context.Context, opts ListOptions) (*List, error) {
	return c.list(ctx, ListFood, opts)
}

// ListFoodGroups returns one page of food groups.
func (c *Client) ListFoodGroups(ctx context.Context, opts ListOptions) (*List, error) {
	return c.list(ctx, ListFoodGroup, opts)
}

// ListNutrients returns one page of all known nutrients.
func (c *Client) ListNutrients(ctx context.Context, opts ListOptions) (*List, error) {
	return c.list(ctx, ListAllNutrients, opts)
}

// ListStandardNutrients returns one page of standard release nutrients.
func (c *Client) ListStandardNutrients(ctx context.Context, opts ListOptions) (*List, error) {
	return c.list(ctx, ListStandardNutrients, opts)
}

// ListSpecialtyNutrients returns one page of specialty nutrients.
func (c *Client) ListSpecialtyNutrients(ctx context.Context, opts ListOptions) (*List, error) {
	return c.list(ctx, ListSpecialtyNutrients, opts)
}

// FoodReport fetches the nutrient report for a single food by its NDB
// number.
func (c *Client) FoodReport(ctx context.Context, ndbNo string, reportType ReportType) (*FoodReport, error) {
	if ndbNo == "" {
		return nil, fmt.Errorf("NDB number is required")
	}
	if reportType == "" {
		reportType = ReportBasic
	}

	params := url.Values{}
	params.Set("ndbno", ndbNo)
	params.Set("type", string(reportType))

	var resp foodReportResponse
	if err := c.api.Get(ctx, datagov.ActionFoodReport, params, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("ndbno", ndbNo).
		Str("food", resp.Report.Food.Name).
		Int("nutrients", len(resp.Report.Food.Nutrients)).
		Msg("Retrieved food report from NDB")

	return &resp.Report, nil
}

// NutrientReportOptions controls a nutrient report request.
type NutrientReportOptions struct {
	// NutrientIDs selects the nutrients to report on. At least one and
	// at most twenty are accepted.
	NutrientIDs []string
	// FoodGroupIDs restricts the report to the given food groups.
	FoodGroupIDs []string
	// Max is the page size; the API default is 50.
	Max int
	// Offset is the zero-based index of the first food to return.
	Offset int
}

// NutrientReport fetches foods and their values for a set of nutrients.
func (c *Client) NutrientReport(ctx context.Context, opts NutrientReportOptions) (*NutrientReport, error) {
	if len(opts.NutrientIDs) == 0 {
		return nil, fmt.Errorf("at least one nutrient ID is required")
	}
	if len(opts.NutrientIDs) > maxNutrientIDs {
		return nil, fmt.Errorf("at most %d nutrient IDs are accepted, got %d", maxNutrientIDs, len(opts.NutrientIDs))
	}

	params := url.Values{}
	for _, id := range opts.NutrientIDs {
		params.Add("nutrients", id)
	}
	for _, id := range opts.FoodGroupIDs {
		params.Add("fg", id)
	}
	if opts.Max > 0 {
		params.Set("max", strconv.Itoa(opts.Max))
	}
	if opts.Offset > 0 {
		params.Set("offset", strconv.Itoa(opts.Offset))
	}

	var resp nutrientReportResponse
	if err := c.api.Get(ctx, datagov.ActionNutrientReport, params, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Strs("nutrients", opts.NutrientIDs).
		Int("foods", len(resp.Report.Foods)).
		Msg("Retrieved nutrient report from NDB")

	return &resp.Report, nil
}

// SearchOptions controls a food search request.
type SearchOptions struct {
	// Query is the search term. Required.
	Query string
	// FoodGroupID restricts results to one food group.
	FoodGroupID string
	// DataSource restricts results to "Standard Reference" or "Branded
	// Food Products".
	DataSource string
	// Sort orders by name ("n") or relevance ("r").
	Sort string
	// Max is the page size; the API default is 50.
	Max int
	// Offset is the zero-based index of the first result to return.
	Offset int
}

func (o SearchOptions) values() url.Values {
	params := url.Values{}
	params.Set("q", o.Query)
	if o.FoodGroupID != "" {
		params.Set("fg", o.FoodGroupID)
	}
	if o.DataSource != "" {
		params.Set("ds", o.DataSource)
	}
	if o.Sort != "" {
		params.Set("sort", o.Sort)
	}
	if o.Max > 0 {
		params.Set("max", strconv.Itoa(o.Max))
	}
	if o.Offset > 0 {
		params.Set("offset", strconv.Itoa(o.Offset))
	}
	return params
}

// SearchFoods returns one page of foods matching the query.
func (c *Client) SearchFoods(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	if opts.Query == "" {
		return nil, fmt.Errorf("search query is required")
	}

	var resp searchResponse
	if err := c.api.Get(ctx, datagov.ActionSearch, opts.values(), &resp); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", opts.Query).
		Int("count", len(resp.List.Items)).
		Int("total", resp.List.Total).
		Msg("Retrieved search results from NDB")

	return &resp.List, nil
}
