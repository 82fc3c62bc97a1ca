// Package metrics defines and registers all custom Prometheus metrics for
// the returns platform. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "returns"

// ── Lifecycle metrics ─────────────────────────────────────────────────────────

// ReturnsCreatedTotal counts newly created return requests.
// Label:
//   - reason: the return motive (e.g. "defective", "change_of_mind")
var ReturnsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of return requests created, by reason.",
	},
	[]string{"reason"},
)

// StatusTransitionsTotal counts successful lifecycle transitions.
// Label:
//   - status: the status the request moved to (e.g. "validated")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of successful status transitions, by target status.",
	},
	[]string{"status"},
)

// SatisfactionRatingsTotal counts satisfaction scores recorded after
// resolution.
// Label:
//   - score: "1" through "5"
var SatisfactionRatingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "satisfaction_ratings_total",
		Help:      "Total number of satisfaction ratings recorded, by score.",
	},
	[]string{"score"},
)

// ── Carrier event metrics ─────────────────────────────────────────────────────

// EventsProcessedTotal counts carrier events that completed processing.
// Labels:
//   - status: the status applied by the event (e.g. "in_transit")
//   - source: the event source reported by the carrier (e.g. "relay_hub")
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of carrier events successfully processed.",
	},
	[]string{"status", "source"},
)

// EventsErrorsTotal counts carrier events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "process_failed")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of carrier events that failed processing.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// EventsQueueDepth tracks the current number of events waiting in each
// worker channel.
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
