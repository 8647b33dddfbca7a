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

// Business metric names
const (
	MetricNameInventoryBuilds          = "storefront_inventory_builds_total"
	MetricNameInventoryItems           = "storefront_inventory_items"
	MetricNameInventoryDroppedProducts = "storefront_inventory_dropped_products_total"
	MetricNameCheckoutSessionsCreated  = "storefront_checkout_sessions_created_total"
	MetricNameCheckoutLineItems        = "storefront_checkout_line_items"
	MetricNameSessionCacheLookups      = "storefront_session_cache_lookups_total"
	MetricNameProviderErrors           = "storefront_provider_errors_total"
	MetricNameNotificationsSent        = "storefront_notifications_total"
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
	HelpTextInventoryBuilds          = "Total number of inventory builds"
	HelpTextInventoryItems           = "Number of items in the most recent inventory build"
	HelpTextInventoryDroppedProducts = "Total number of products dropped for lacking a matching price"
	HelpTextCheckoutSessionsCreated  = "Total number of checkout sessions created"
	HelpTextCheckoutLineItems        = "Line items per created checkout session"
	HelpTextSessionCacheLookups      = "Checkout session cache lookups by result"
	HelpTextProviderErrors           = "Total number of failed payment provider calls"
	HelpTextNotificationsSent        = "Order notifications by result"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelResult    = "result"
	LabelOperation = "operation"
)

// Label values
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultSuccess = "success"
	ResultFailure = "failure"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	LineItemBuckets    = []float64{1, 2, 3, 5, 8, 13, 21}
)
