package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	exercisesRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "training_tracker",
		Subsystem: "recorder",
		Name:      "exercises_recorded_total",
		Help:      "Number of exercises recorded, by sport.",
	}, []string{"sport"})
	validationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "training_tracker",
		Subsystem: "recorder",
		Name:      "validation_failures_total",
		Help:      "Number of rejected exercise payloads, by reason.",
	}, []string{"reason"})
	lastRecordedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "training_tracker",
		Subsystem: "persistence",
		Name:      "last_exercise_recorded_timestamp_seconds",
		Help:      "Unix timestamp of the most recent exercise persisted to the store.",
	})
)

func init() {
	prometheus.MustRegister(exercisesRecorded, validationFailures, lastRecordedGauge)
}

// RecordExercisePersisted counts a successfully stored exercise and moves the
// persistence watermark.
func RecordExercisePersisted(sport string, ts time.Time) {
	exercisesRecorded.WithLabelValues(sport).Inc()
	if ts.IsZero() {
		return
	}
	lastRecordedGauge.Set(float64(ts.Unix()))
}

// RecordValidationFailure counts a rejected exercise payload.
func RecordValidationFailure(reason string) {
	validationFailures.WithLabelValues(reason).Inc()
}
