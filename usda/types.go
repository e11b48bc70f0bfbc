package usda

// ListType selects which kind of list the list endpoint returns.
type ListType string

const (
	// ListFood lists foods.
	ListFood ListType = "f"
	// ListFoodGroup lists food groups.
	ListFoodGroup ListType = "g"
	// ListAllNutrients lists every nutrient.
	ListAllNutrients ListType = "n"
	// ListSpecialtyNutrients lists specialty nutrients only.
	ListSpecialtyNutrients ListType = "ns"
	// ListStandardNutrients lists standard release nutrients only.
	ListStandardNutrients ListType = "nr"
)

// ReportType selects how much detail a food report carries.
type ReportType string

const (
	// ReportBasic is the default report with the major nutrients.
	ReportBasic ReportType = "b"
	// ReportFull carries every nutrient the release tracks.
	ReportFull ReportType = "f"
	// ReportStats adds statistical details to the full report.
	ReportStats ReportType = "s"
)

// ListItem is a single entry from the list endpoint.
type ListItem struct {
	Offset int    `json:"offset"`
	ID     string `json:"id"`
	Name   string `json:"name"`
}

// List is one page of a list endpoint response.
type List struct {
	ListType ListType   `json:"lt"`
	Start    int        `json:"start"`
	End      int        `json:"end"`
	Total    int        `json:"total"`
	Sort     string     `json:"sort"`
	Items    []ListItem `json:"item"`
}

type listResponse struct {
	List List `json:"list"`
}

// HasMorePages reports whether the endpoint holds entries past this page.
func (l *List) HasMorePages() bool {
	return l.End < l.Total
}

// FoodItem is a single food from the search endpoint.
type FoodItem struct {
	Offset       int    `json:"offset"`
	Group        string `json:"group"`
	Name         string `json:"name"`
	NDBNo        string `json:"ndbno"`
	DataSource   string `json:"ds"`
	Manufacturer string `json:"manu"`
}

// SearchResult is one page of a search endpoint response.
type SearchResult struct {
	Query string     `json:"q"`
	Start int        `json:"start"`
	End   int        `json:"end"`
	Total int        `json:"total"`
	Items []FoodItem `json:"item"`
}

type searchResponse struct {
	List SearchResult `json:"list"`
}

// HasMorePages reports whether the search holds results past this page.
func (r *SearchResult) HasMorePages() bool {
	return r.End < r.Total
}

// Measure is a household measure of a nutrient within a food report.
type Measure struct {
	Label      string  `json:"label"`
	Equivalent float64 `json:"eqv"`
	Quantity   float64 `json:"qty"`
	// Value stays a string: the API returns numbers with inconsistent
	// precision here.
	Value string `json:"value"`
}

// Nutrient is one nutrient row of a food report.
type Nutrient struct {
	ID       string    `json:"nutrient_id"`
	Name     string    `json:"name"`
	Group    string    `json:"group"`
	Unit     string    `json:"unit"`
	Value    string    `json:"value"`
	Measures []Measure `json:"measures"`
}

// Food is the food block of a food report.
type Food struct {
	NDBNo      string     `json:"ndbno"`
	Name       string     `json:"name"`
	ReportUnit string     `json:"ru"`
	Nutrients  []Nutrient `json:"nutrients"`
}

// Footnote annotates a food report.
type Footnote struct {
	ID          string `json:"idv"`
	Description string `json:"desc"`
}

// FoodReport is the report endpoint response for a single food.
type FoodReport struct {
	Release   string     `json:"sr"`
	Type      string     `json:"type"`
	Food      Food       `json:"food"`
	Footnotes []Footnote `json:"footnotes"`
}

type foodReportResponse struct {
	Report FoodReport `json:"report"`
}

// FoodGroup describes one food group referenced by a nutrient report.
type FoodGroup struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// NutrientReportNutrient is one nutrient value within a nutrient report food.
type NutrientReportNutrient struct {
	ID      string  `json:"nutrient_id"`
	Name    string  `json:"nutrient"`
	Unit    string  `json:"unit"`
	Value   string  `json:"value"`
	Per100G float64 `json:"gm"`
}

// NutrientReportFood is one food row of a nutrient report.
type NutrientReportFood struct {
	NDBNo     string                   `json:"ndbno"`
	Name      string                   `json:"name"`
	Weight    float64                  `json:"weight"`
	Measure   string                   `json:"measure"`
	Nutrients []NutrientReportNutrient `json:"nutrients"`
}

// NutrientReport is the nutrients endpoint response.
type NutrientReport struct {
	Release string               `json:"sr"`
	Groups  []FoodGroup          `json:"groups"`
	Start   int                  `json:"start"`
	End     int                  `json:"end"`
	Total   int                  `json:"total"`
	Foods   []NutrientReportFood `json:"foods"`
}

type nutrientReportResponse struct {
	Report NutrientReport `json:"report"`
}
