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

// Distribution metric names
const (
	MetricNameDistributionRuns  = "distribution_runs_total"
	MetricNamePayoutsTotal      = "payouts_total"
	MetricNameAmountDistributed = "amount_distributed_units_total"
	MetricNamePoolFundDuration  = "pool_funding_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextDistributionRuns  = "Total distribution runs by terminal status"
	HelpTextPayoutsTotal      = "Total recipient payout attempts by status"
	HelpTextAmountDistributed = "Total amount distributed to recipients in smallest units"
	HelpTextPoolFundDuration  = "Pool funding step latency in seconds"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// Run status label values not covered by domain.RunStatus
const (
	RunStatusRejected = "rejected"
	RunStatusAborted  = "aborted"
)

// HTTPLatencyBuckets are the histogram buckets for request duration
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
