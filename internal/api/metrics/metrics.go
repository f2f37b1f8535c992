// Package metrics defines and registers all custom Prometheus metrics
// for the LaundryMart auth backend. It is the single source of truth
// for metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init
// via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "laundrymart"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate_username", "duplicate_email", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts. Failed credential checks are a
// single label value regardless of cause, mirroring the response
// contract that never distinguishes unknown user from wrong password.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result (success/failure).",
	},
	[]string{"result"},
)

// ProfileUpdatesTotal counts profile update attempts.
// Label:
//   - result: "success", "email_in_use", "not_found", or "error"
var ProfileUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_updates_total",
		Help:      "Total number of profile update attempts, by result.",
	},
	[]string{"result"},
)

// ProfileCacheTotal counts profile cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProfileCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_total",
		Help:      "Total number of profile cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
