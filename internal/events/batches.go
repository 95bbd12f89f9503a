// Package events defines the wire payloads emitted by simulated wearable devices.
package events

// WorkoutBatch represents one completed workout reported by a device: per-sample
// calorie and step readings collected between start and end.
type WorkoutBatch struct {
	WorkoutID       string    `json:"workout_id,omitempty"`
	WorkoutType     string    `json:"workout_type"`
	StartTime       int64     `json:"start_time"`
	EndTime         int64     `json:"end_time"`
	CaloriesSamples []float64 `json:"calories_samples"`
	StepSamples     []float64 `json:"step_samples"`
}

// HeartRateBatch carries heart-rate readings sampled at a fixed 60-second
// cadence starting at StartTime.
type HeartRateBatch struct {
	StartTime int64     `json:"start_time"`
	HeartRate []float64 `json:"heart_rate"`
}

// SampleCadenceSeconds is the spacing between consecutive heart-rate readings.
const SampleCadenceSeconds = 60
