// Package domain models a wearable-device wearer: workout sessions, per-day
// metric buckets, and heart-rate streams.
package domain

import (
	"errors"
	"fmt"
	"sync"
)

// MetricKind identifies one of the accumulated wearable metrics.
type MetricKind string

const (
	MetricSteps    MetricKind = "steps"
	MetricCalories MetricKind = "calories"
)

// ErrUnknownMetric is returned for metric names outside the known set.
var ErrUnknownMetric = errors.New("unknown metric")

// ParseMetricKind validates a metric name from the transport layer.
func ParseMetricKind(name string) (MetricKind, error) {
	switch MetricKind(name) {
	case MetricSteps:
		return MetricSteps, nil
	case MetricCalories:
		return MetricCalories, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Wearer is the aggregate root for one device wearer. It owns the workout
// session machine, one bucket store per metric, the heart-rate bucketer, and
// the resting flag that gates heart-rate classification.
//
// All mutation of a wearer goes through its mutex; the windowing queries
// assume a strictly ordered, non-interleaved bucket sequence and the lock is
// what guarantees it under concurrent callers.
type Wearer struct {
	mu sync.Mutex

	id        string
	session   *SessionMachine
	steps     *DayBucketStore
	calories  *DayBucketStore
	heartRate *HeartRateBucketer
	resting   bool
}

// NewWearer constructs a wearer with empty stores, at rest.
func NewWearer(id string) *Wearer {
	return &Wearer{
		id:        id,
		session:   NewSessionMachine(),
		steps:     NewDayBucketStore(),
		calories:  NewDayBucketStore(),
		heartRate: NewHeartRateBucketer(),
		resting:   true,
	}
}

// ID returns the wearer identifier.
func (w *Wearer) ID() string {
	return w.id
}

// store resolves a metric kind to its bucket store. Metric dispatch is an
// explicit switch; unknown kinds are a programming error upstream of here.
func (w *Wearer) store(kind MetricKind) *DayBucketStore {
	switch kind {
	case MetricCalories:
		return w.calories
	default:
		return w.steps
	}
}

// StartWorkout begins a workout session and marks the wearer active.
func (w *Wearer) StartWorkout(workoutType string, startTime int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.session.Start(workoutType, startTime); err != nil {
		return err
	}
	w.resting = false
	return nil
}

// AddWorkoutSample accumulates one calorie and one step reading into the
// running session totals. Readings while idle are dropped by the machine.
func (w *Wearer) AddWorkoutSample(calories, steps float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.session.AddCalories(calories)
	w.session.AddSteps(steps)
}

// EndWorkout completes the active session, folds its totals into the day
// buckets (steps untagged, calories tagged with the workout type, both on the
// start day), and marks the wearer resting again.
func (w *Wearer) EndWorkout(endTime int64) (WorkoutSummary, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	summary, err := w.session.Complete(endTime)
	if err != nil {
		return WorkoutSummary{}, err
	}
	w.resting = true

	w.steps.RecordSample(RawSample{
		Timestamp:   summary.StartTime,
		Value:       summary.Steps,
		WorkoutID:   summary.ID,
		WorkoutType: summary.Type,
	}, "")
	w.calories.RecordSample(RawSample{
		Timestamp:   summary.StartTime,
		Value:       summary.Calories,
		WorkoutID:   summary.ID,
		WorkoutType: summary.Type,
	}, summary.Type)

	return summary, nil
}

// RecordHeartRate classifies a heart-rate reading by the wearer's current
// resting state and appends it to the matching stream.
func (w *Wearer) RecordHeartRate(timestamp int64, bpm float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.heartRate.Record(timestamp, bpm, w.resting)
}

// Summary returns the ordered day buckets for one metric.
func (w *Wearer) Summary(kind MetricKind) []DayBucket {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.store(kind).Summary()
}

// RawSamples returns the retained sample log for one metric.
func (w *Wearer) RawSamples(kind MetricKind) []RawSample {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.store(kind).Raw()
}

// HeartRateStreams returns the resting and active heart-rate streams.
func (w *Wearer) HeartRateStreams() (resting, active []HeartRateSample) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.heartRate.Streams()
}

// Resting reports whether the wearer is currently at rest.
func (w *Wearer) Resting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.resting
}
