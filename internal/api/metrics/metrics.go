// Package metrics defines and registers all custom Prometheus metrics for
// the Freelaverse web gateway. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at init; the /metrics endpoint
// is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "freelaverse_gateway"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsIssuedTotal counts sessions granted after login or email
// confirmation.
// Label:
//   - role: "1" (client) or "2" (professional)
var SessionsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of sessions granted, by role.",
	},
	[]string{"role"},
)

// GuardRedirectsTotal counts route-guard redirects.
// Label:
//   - reason: "unauthenticated", "wrong_role", or "root_dispatch"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of navigations redirected by the route guard.",
	},
	[]string{"reason"},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentUpdatesAppliedTotal counts hub payment updates applied to tracker
// state.
// Label:
//   - status: the payment status reported by the hub (e.g. "paid")
var PaymentUpdatesAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_updates_applied_total",
		Help:      "Total number of payment hub updates applied, by status.",
	},
	[]string{"status"},
)

// PixChargesTotal counts PIX charge requests relayed to the backend.
// Label:
//   - result: "ok" or "error"
var PixChargesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pix_charges_total",
		Help:      "Total number of PIX charge requests, by result.",
	},
	[]string{"result"},
)

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestDuration measures outbound backend calls end-to-end.
// Labels:
//   - operation: the client method name (e.g. "login", "search_services")
//   - outcome: "ok", "upstream_error", or "unavailable"
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of outbound backend API requests.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation", "outcome"},
)
