// Package metrics defines and registers the custom Prometheus metrics of the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All collectors are registered with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Authentication / authorization ───────────────────────────────────────────

// AuthAttemptsTotal counts Basic authentication attempts on protected resources.
// Label:
//   - result: "success", "missing" (no usable credentials), "invalid", or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of Basic authentication attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts authenticated requests rejected by a role check.
// Label:
//   - role: the caller's role
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests forbidden by role checks, by caller role.",
	},
	[]string{"role"},
)

// ── Users ─────────────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts that reached the service.
// Label:
//   - result: "created", "duplicate", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registrations, by result.",
	},
	[]string{"result"},
)

// UserMutationsTotal counts successful admin mutations of user records.
// Label:
//   - operation: "update_role" or "delete"
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of user records changed by admins, by operation.",
	},
	[]string{"operation"},
)
