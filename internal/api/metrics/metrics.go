// Package metrics defines all custom Prometheus metrics for the user
// directory API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// ── Lifecycle event metrics ───────────────────────────────────────────────────

// EventsProcessedTotal counts lifecycle events that completed processing.
// Label:
//   - type: "account.created" or "account.deleted"
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of account lifecycle events successfully processed.",
	},
	[]string{"type"},
)

// EventsErrorsTotal counts lifecycle events that failed processing and
// were left to the host retry policy.
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of account lifecycle events that failed processing.",
	},
	[]string{"type"},
)

// EventsQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Admin command metrics ─────────────────────────────────────────────────────

// RoleChangesTotal counts successful role-change commands, by new role.
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of successful role changes, by resulting role.",
	},
	[]string{"role"},
)

// StatusTogglesTotal counts successful status-change commands.
// Label:
//   - state: "enabled" or "disabled"
var StatusTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_toggles_total",
		Help:      "Total number of successful enable/disable commands, by resulting state.",
	},
	[]string{"state"},
)

// UsersDeletedTotal counts successful admin-issued account deletions.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of accounts deleted through the admin gateway.",
	},
)

// ── Page cache metrics ────────────────────────────────────────────────────────

// PageFetchTotal counts page fetches through the cache worker.
// Label:
//   - source: "cache", "origin", or "offline"
var PageFetchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_fetch_total",
		Help:      "Total number of page fetches, labelled by serving source.",
	},
	[]string{"source"},
)
