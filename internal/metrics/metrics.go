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

// Catalog Metrics
var (
	InventoryBuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoryBuilds,
			Help: HelpTextInventoryBuilds,
		},
	)

	InventoryItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameInventoryItems,
			Help: HelpTextInventoryItems,
		},
	)

	InventoryDroppedProducts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoryDroppedProducts,
			Help: HelpTextInventoryDroppedProducts,
		},
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProviderErrors,
			Help: HelpTextProviderErrors,
		},
		[]string{LabelOperation},
	)
)

// Checkout Metrics
var (
	CheckoutSessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCheckoutSessionsCreated,
			Help: HelpTextCheckoutSessionsCreated,
		},
	)

	CheckoutLineItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCheckoutLineItems,
			Help:    HelpTextCheckoutLineItems,
			Buckets: LineItemBuckets,
		},
	)

	SessionCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionCacheLookups,
			Help: HelpTextSessionCacheLookups,
		},
		[]string{LabelResult},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelResult},
	)
)
