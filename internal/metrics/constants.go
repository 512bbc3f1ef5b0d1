package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "farmgame_http_requests_total"
	MetricNameHTTPRequestDuration  = "farmgame_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "farmgame_http_requests_in_flight"

	MetricNameClaimsTotal       = "farmgame_claims_total"
	MetricNameResourcesAccrued  = "farmgame_resources_accrued_total"
	MetricNameItemUpgradesTotal = "farmgame_item_upgrades_total"
	MetricNameSlotUpgradesTotal = "farmgame_slot_upgrades_total"
	MetricNameBlendsTotal       = "farmgame_blends_total"
	MetricNameSwapsTotal        = "farmgame_swaps_total"
	MetricNameStakesTotal       = "farmgame_stakes_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextClaimsTotal       = "Total number of successful claims"
	HelpTextResourcesAccrued  = "Total resource amounts credited by claims"
	HelpTextItemUpgradesTotal = "Total number of producing-item level upgrades"
	HelpTextSlotUpgradesTotal = "Total number of farming-item slot upgrades"
	HelpTextBlendsTotal       = "Total number of completed blends"
	HelpTextSwapsTotal        = "Total number of resource-to-token swaps"
	HelpTextStakesTotal       = "Total number of staking operations"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelResource = "resource"
	LabelKind     = "kind"
)

// Stake kind label values
const (
	StakeKindFarmingItem = "farming_item"
	StakeKindItems       = "items"
)

// HTTPLatencyBuckets are tuned for a local rules engine: most actions are a
// handful of milliseconds of SQL.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
