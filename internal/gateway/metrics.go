package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auction_client"

// RequestsTotal counts gateway calls.
// Labels:
//   - op: the gateway operation (e.g. "login", "add_bid")
//   - outcome: "ok", "status", "unreachable", "malformed" or "unauthorized"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of gateway calls, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// RequestDuration measures gateway round trips, including body decoding.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of gateway calls from request to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)
