// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tippool"

var (
	// RPCRequests counts finished RPCs by procedure and Connect code ("ok" on success).
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_requests_total",
		Help:      "Connect RPCs handled, by procedure and result code.",
	}, []string{"procedure", "code"})

	// RPCDuration observes handler latency by procedure.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_duration_seconds",
		Help:      "Connect RPC handling latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	// RateLimited counts RPCs rejected by the rate limiter.
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "RPCs rejected with resource_exhausted by the rate limiter.",
	})

	// DanglingReferences counts shift staff IDs that no longer match an employee.
	DanglingReferences = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dangling_references_total",
		Help:      "Shift staff references skipped because the employee does not exist.",
	})

	// UndistributedTips sums bartender pools left unpaid because no hours were recorded.
	UndistributedTips = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "undistributed_tips_total",
		Help:      "Tip dollars left in a bartender pool with zero recorded hours.",
	})
)
