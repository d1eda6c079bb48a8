// Package metrics defines and registers all custom Prometheus metrics for the
// Workling portal. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workling"

// GatewayRequestsTotal counts round trips to the remote marketplace API.
// Labels:
//   - call: the gateway operation ("login", "list_jobs", "apply_job", ...)
//   - result: "ok", "remote_error" (server replied with a failure), or
//     "transport_error" (no usable response)
var GatewayRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of requests issued to the marketplace API.",
	},
	[]string{"call", "result"},
)

// GatewayRequestDuration measures a single round trip to the remote API.
// Label:
//   - call: the gateway operation
var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of marketplace API round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"call"},
)

// StaleFetchesDiscarded counts dashboard fetch completions dropped because a
// newer fetch had been issued for the same view before they finished.
// Label:
//   - view: "worker", "employer_workers", or "employer_applicants"
var StaleFetchesDiscarded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_fetches_discarded_total",
		Help:      "Total number of out-of-order fetch completions discarded.",
	},
	[]string{"view"},
)

// SessionsActive tracks the number of browser sessions currently held by the
// web portal.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of live browser sessions.",
	},
)
