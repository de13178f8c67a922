// Package metrics defines and registers all custom Prometheus metrics for the
// applicant tracking API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ats"

// ApplicationsSubmittedTotal counts accepted application submissions.
// Label:
//   - scored: "true" when the AI fit score was computed, "false" when
//     scoring failed and the application was stored unscored
var ApplicationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of applications accepted, by scoring outcome.",
	},
	[]string{"scored"},
)

// StatusTransitionsTotal counts successful lifecycle transitions.
// Labels:
//   - from: the status before the change (e.g. "Submitted")
//   - to: the status after the change (e.g. "Interview")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of application status transitions applied.",
	},
	[]string{"from", "to"},
)

// ScoringFailuresTotal counts resume scoring attempts that did not yield
// a usable score. The submission itself still succeeds.
// Label:
//   - reason: "extract" (text extraction failed), "call" (scorer
//     unreachable or errored), or "range" (score outside 0-100)
var ScoringFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scoring_failures_total",
		Help:      "Total number of resume scoring attempts absorbed as failures.",
	},
	[]string{"reason"},
)

// ScoringDuration measures the end-to-end scoring call per submission,
// including text extraction.
var ScoringDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scoring_duration_seconds",
		Help:      "Duration of resume scoring from extraction to scorer response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// InterviewActionsTotal counts interview sub-record mutations.
// Label:
//   - action: "schedule", "update", or "cancel"
var InterviewActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "interview_actions_total",
		Help:      "Total number of interview schedule mutations, by action.",
	},
	[]string{"action"},
)

// AuditEventsDroppedTotal counts activity events discarded because the
// target worker's queue was full. The trail loses those events; the
// request that produced them is unaffected.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditEventsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of activity events dropped due to a full audit worker queue.",
	},
	[]string{"worker_id"},
)

// AuditQueueDepth tracks the events waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of activity events pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)
