// Package metrics defines the custom Prometheus metrics for the project
// management API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projectpulse"

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the access guard.
// Label:
//   - reason: "missing_token", "invalid_token", or "unknown_user"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the access guard.",
	},
	[]string{"reason"},
)

// ProjectsCreatedTotal counts created projects.
// Label:
//   - priority: "low", "medium", or "high"
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by priority.",
	},
	[]string{"priority"},
)
