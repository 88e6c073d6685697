package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "famplan_http_requests_total"
	MetricNameHTTPRequestDuration  = "famplan_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "famplan_http_requests_in_flight"

	MetricNameMenusGenerated         = "famplan_menus_generated_total"
	MetricNameMealsAssigned          = "famplan_meals_assigned_total"
	MetricNameSlotsUnfilled          = "famplan_slots_unfilled_total"
	MetricNameShoppingListsGenerated = "famplan_shopping_lists_generated_total"
	MetricNameShoppingListItems      = "famplan_shopping_list_items"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextMenusGenerated         = "Total number of menu generation runs"
	HelpTextMealsAssigned          = "Total number of meal slots filled with a recipe"
	HelpTextSlotsUnfilled          = "Total number of meal slots left without an eligible recipe"
	HelpTextShoppingListsGenerated = "Total number of shopping list aggregation runs"
	HelpTextShoppingListItems      = "Item count of the most recent shopping lists"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// HTTPLatencyBuckets covers the expected latency range of CRUD and
// generation endpoints.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
