package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Progression metric names
const (
	MetricNameExperienceAwarded = "experience_awarded_total"
	MetricNameLevelUps          = "level_ups_total"
	MetricNameLevelUpCapReached = "level_up_cap_reached_total"
)

// Inventory metric names
const (
	MetricNameItemsAdded          = "inventory_items_added_total"
	MetricNameItemsRemoved        = "inventory_items_removed_total"
	MetricNameCapacityRejections  = "inventory_capacity_rejections_total"
	MetricNameQuestsCompleted     = "quests_completed_total"
	MetricNameLootDrops           = "loot_drops_total"
	MetricNameLootSkipped         = "loot_skipped_total"
	MetricNameGoldAwarded         = "gold_awarded_total"
	MetricNameLoginsTotal         = "logins_total"
	MetricNameRegistrationsTotal  = "registrations_total"
	MetricNameItemCacheOperations = "item_cache_operations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextExperienceAwarded   = "Total experience points awarded to characters"
	HelpTextLevelUps            = "Total number of character level-ups"
	HelpTextLevelUpCapReached   = "Number of experience awards stopped by the per-award level-up cap"
	HelpTextItemsAdded          = "Total item units added to inventories"
	HelpTextItemsRemoved        = "Total item units removed from inventories"
	HelpTextCapacityRejections  = "Total inventory additions rejected for lack of space or weight"
	HelpTextQuestsCompleted     = "Total number of quests completed"
	HelpTextLootDrops           = "Total item units granted as loot"
	HelpTextLootSkipped         = "Total loot item units skipped because the inventory was full"
	HelpTextGoldAwarded         = "Total gold awarded to characters"
	HelpTextLoginsTotal         = "Total login attempts by result"
	HelpTextRegistrationsTotal  = "Total number of registered accounts"
	HelpTextItemCacheOperations = "Item cache lookups by result"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
	LabelResult = "result"
	LabelSource = "source"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultHit     = "hit"
	ResultMiss    = "miss"

	SourceAdmin = "admin"
	SourceQuest = "quest"
	SourcePlay  = "play"

	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets covers fast API calls through slow database round trips
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
