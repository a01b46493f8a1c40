package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compute paths. Aggregation,
// scoring, and snapshot builds are the latency-sensitive operations; export
// encoding is counted per format.
type Metrics struct {
	ScoreComputations     prometheus.Counter
	SnapshotBuilds        prometheus.Counter
	FieldsExported        *prometheus.CounterVec
	AggregationFailures   prometheus.Counter
	AggregateDuration     prometheus.Histogram
	ScoreDuration         prometheus.Histogram
	SnapshotBuildDuration prometheus.Histogram
}

// New creates a Metrics instance with all engine metrics registered.
func New() *Metrics {
	return &Metrics{
		ScoreComputations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "veritas_score_computations_total",
			Help: "Total number of compliance score computations",
		}),
		SnapshotBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "veritas_snapshot_builds_total",
			Help: "Total number of annual return snapshots built",
		}),
		FieldsExported: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veritas_fields_exported_total",
			Help: "Total field list exports by encoding",
		}, []string{"encoding"}),
		AggregationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "veritas_aggregation_failures_total",
			Help: "Total aggregations that failed on a domain read",
		}),
		AggregateDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "veritas_aggregate_duration_seconds",
			Help:    "Duration of the fan-out record aggregation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ScoreDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "veritas_score_duration_seconds",
			Help:    "Duration of full compliance score computations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		SnapshotBuildDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "veritas_snapshot_build_duration_seconds",
			Help:    "Duration of annual return snapshot builds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveAggregate records the duration of an aggregation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveAggregate(start time.Time) {
	m.AggregateDuration.Observe(time.Since(start).Seconds())
}

// ObserveScore records a completed score computation and its duration.
func (m *Metrics) ObserveScore(start time.Time) {
	m.ScoreComputations.Inc()
	m.ScoreDuration.Observe(time.Since(start).Seconds())
}

// ObserveSnapshotBuild records a completed snapshot build and its duration.
func (m *Metrics) ObserveSnapshotBuild(start time.Time) {
	m.SnapshotBuilds.Inc()
	m.SnapshotBuildDuration.Observe(time.Since(start).Seconds())
}

// IncrementExport records one export in the given encoding.
func (m *Metrics) IncrementExport(encoding string) {
	m.FieldsExported.WithLabelValues(encoding).Inc()
}

// IncrementAggregationFailure records a failed aggregation.
func (m *Metrics) IncrementAggregationFailure() {
	m.AggregationFailures.Inc()
}
