// Package metrics defines and registers all custom Prometheus metrics for the
// commerce services. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ── Authentication metrics ────────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "account_not_usable", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of password authentication attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts gateway token checks.
// Label:
//   - result: "valid", "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// ── Enrichment metrics ────────────────────────────────────────────────────────

// RemoteLookupsTotal counts cross-service reference lookups.
// Labels:
//   - target: the record kind fetched ("user", "product", "order")
//   - result: "ok", "error"
var RemoteLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_lookups_total",
		Help:      "Total number of remote reference lookups, by target and result.",
	},
	[]string{"target", "result"},
)

// RemoteLookupDuration measures how long a single reference lookup takes.
// Label:
//   - target: the record kind fetched ("user", "product", "order")
var RemoteLookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_lookup_duration_seconds",
		Help:      "Duration of remote reference lookups from request to decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"target"},
)

// ── Gateway metrics ───────────────────────────────────────────────────────────

// GatewayRejectionsTotal counts requests the gateway refused before proxying.
// Label:
//   - reason: "missing_token", "invalid_token", "rate_limited"
var GatewayRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_rejections_total",
		Help:      "Total number of requests rejected at the gateway, by reason.",
	},
	[]string{"reason"},
)
