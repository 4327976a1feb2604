package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Distribution Metrics
var (
	DistributionRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDistributionRuns,
			Help: HelpTextDistributionRuns,
		},
		[]string{LabelStatus},
	)

	PayoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayoutsTotal,
			Help: HelpTextPayoutsTotal,
		},
		[]string{LabelStatus},
	)

	AmountDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountDistributed,
			Help: HelpTextAmountDistributed,
		},
	)

	PoolFundDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePoolFundDuration,
			Help:    HelpTextPoolFundDuration,
			Buckets: prometheus.DefBuckets,
		},
	)
)
