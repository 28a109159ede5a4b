// Package metrics defines and registers all custom Prometheus metrics for the
// LMS API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Collectors are registered with the default Prometheus registry via promauto
// at package load; the /metrics endpoint is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lms"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "pending_approval", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations by requested role.
// Label:
//   - role: "student", "instructor", or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// ApprovalUpdatesTotal counts administrative account mutations.
// Label:
//   - action: "approve", "revoke", "role_change", or "delete"
var ApprovalUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approval_updates_total",
		Help:      "Total number of administrative account updates, by action.",
	},
	[]string{"action"},
)
