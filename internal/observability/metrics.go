package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutFoldedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "watch_service",
		Subsystem: "ingest",
		Name:      "last_workout_folded_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout folded into day buckets.",
	})
	heartRateGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "watch_service",
		Subsystem: "ingest",
		Name:      "last_heart_rate_sample_timestamp_seconds",
		Help:      "Unix timestamp of the most recent heart-rate reading recorded.",
	})
	workoutCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "watch_service",
		Subsystem: "ingest",
		Name:      "workouts_completed_total",
		Help:      "Number of workouts completed and folded into the stores.",
	})
)

func init() {
	prometheus.MustRegister(workoutFoldedGauge, heartRateGauge, workoutCounter)
}

// RecordWorkoutFolded updates the workout ingestion watermark.
func RecordWorkoutFolded(ts int64) {
	if ts <= 0 {
		return
	}
	workoutFoldedGauge.Set(float64(ts))
	workoutCounter.Inc()
}

// RecordHeartRateIngested updates the heart-rate ingestion watermark.
func RecordHeartRateIngested(ts int64) {
	if ts <= 0 {
		return
	}
	heartRateGauge.Set(float64(ts))
}
