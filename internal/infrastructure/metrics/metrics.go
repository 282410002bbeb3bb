package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Ledger metrics
	EntriesApplied *prometheus.CounterVec
	ApplyDuration  prometheus.Histogram
	ApplyConflicts prometheus.Counter
	EntryAmount    prometheus.Histogram
	LedgerErrors   *prometheus.CounterVec
	PartiesCreated *prometheus.CounterVec

	// Archival metrics
	SweepRuns     prometheus.Counter
	SweepArchived *prometheus.CounterVec
	SweepDuration prometheus.Histogram
	SweepErrors   prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Outbox metrics
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		EntriesApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_applied_total",
				Help: "Total number of ledger entries applied by source type and kind",
			},
			[]string{"source_type", "kind"},
		),
		ApplyDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_apply_duration_seconds",
			Help:    "Duration of atomic apply operations",
			Buckets: prometheus.DefBuckets,
		}),
		ApplyConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_apply_conflicts_total",
			Help: "Total number of applies rejected after exhausting retries",
		}),
		EntryAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_entry_amount",
			Help:    "Entry amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		LedgerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_errors_total",
				Help: "Total number of ledger errors by type",
			},
			[]string{"error_type"},
		),
		PartiesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_parties_created_total",
				Help: "Total number of parties created by role",
			},
			[]string{"role"},
		),

		// Archival metrics
		SweepRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_sweep_runs_total",
			Help: "Total number of archival sweeps executed",
		}),
		SweepArchived: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_sweep_archived_total",
				Help: "Total number of records archived by table",
			},
			[]string{"table"},
		),
		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_sweep_duration_seconds",
			Help:    "Duration of archival sweeps",
			Buckets: prometheus.DefBuckets,
		}),
		SweepErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_sweep_errors_total",
			Help: "Total number of failed archival sweeps",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Outbox metrics
		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_events_published_total",
			Help: "Total number of outbox events published",
		}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_publish_errors_total",
			Help: "Total number of outbox publish errors",
		}),
	}
}
