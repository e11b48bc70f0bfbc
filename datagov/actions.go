package datagov

// Action identifies a logical Data.gov API operation. Each action maps to
// a fixed URI path suffix appended to the service's path segment.
type Action int

const (
	// ActionList addresses the list endpoint (foods, nutrients, groups).
	ActionList Action = iota
	// ActionFoodReport addresses the food report endpoint.
	ActionFoodReport
	// ActionNutrientReport addresses the nutrient report endpoint.
	ActionNutrientReport
	// ActionSearch addresses the food search endpoint.
	ActionSearch
)

// String returns the URI path suffix for the action.
func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionFoodReport:
		return "reports"
	case ActionNutrientReport:
		return "nutrients"
	case ActionSearch:
		return "search"
	default:
		return "unknown"
	}
}
