// Package metrics defines and registers all custom Prometheus metrics for
// the task tracker API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tasktracker"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure" (all failure modes share one label so
//     the metric cannot be used to probe which check failed)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TasksCreatedTotal counts newly opened tasks.
// Label:
//   - urgency: "low", "medium", "high", or "critical"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by urgency.",
	},
	[]string{"urgency"},
)

// TasksUpdatedTotal counts task updates.
// Label:
//   - status: the status the task holds after the update
var TasksUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_updated_total",
		Help:      "Total number of task updates, by resulting status.",
	},
	[]string{"status"},
)

// TasksDeletedTotal counts task deletions.
var TasksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_deleted_total",
		Help:      "Total number of tasks deleted.",
	},
)

// StatsCacheTotal counts statistics cache lookups.
// Label:
//   - result: "hit" or "miss"
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of statistics cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
