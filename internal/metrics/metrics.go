package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradejournal_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tradejournal_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradejournal_backend_requests_total",
			Help: "Total number of calls made to the REST backend",
		},
		[]string{"method", "endpoint", "outcome"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tradejournal_backend_request_duration_seconds",
			Help:    "REST backend call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	CheckoutOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradejournal_checkout_outcomes_total",
			Help: "Checkout runs by plan and final state",
		},
		[]string{"plan", "outcome"},
	)

	WidgetEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradejournal_payment_widget_events_total",
			Help: "Payment widget callbacks received",
		},
		[]string{"type"},
	)

	StatusPollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradejournal_status_polls_total",
			Help: "Transaction status checks issued by pollers",
		},
		[]string{"result"},
	)

	CouponsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradejournal_coupons_total",
			Help: "Coupon applications by result",
		},
		[]string{"result"},
	)

	FeatureDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradejournal_feature_denials_total",
			Help: "Gated feature checks that resolved to an upgrade prompt",
		},
		[]string{"feature"},
	)

	PendingWatchers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tradejournal_pending_watchers",
			Help: "Number of running pending-payment watchers",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBackendRequest(method, endpoint, outcome string, duration float64) {
	BackendRequestsTotal.WithLabelValues(method, endpoint, outcome).Inc()
	BackendRequestDuration.WithLabelValues(endpoint).Observe(duration)
}

func RecordCheckoutOutcome(plan, outcome string) {
	CheckoutOutcomesTotal.WithLabelValues(plan, outcome).Inc()
}

func RecordWidgetEvent(eventType string) {
	WidgetEventsTotal.WithLabelValues(eventType).Inc()
}

func RecordStatusPoll(result string) {
	StatusPollsTotal.WithLabelValues(result).Inc()
}

func RecordCoupon(result string) {
	CouponsTotal.WithLabelValues(result).Inc()
}

func RecordFeatureDenial(feature string) {
	FeatureDenialsTotal.WithLabelValues(feature).Inc()
}
