package domain

import (
	"fmt"

	"github.com/brandontiqui/fitness-tracking-watch/internal/events"
	"github.com/brandontiqui/fitness-tracking-watch/internal/observability"
)

// Service orchestrates wearer ingestion and exposes read access for queries.
type Service struct {
	registry *Registry
}

// NewService constructs a Service over the given registry.
func NewService(registry *Registry) *Service {
	return &Service{registry: registry}
}

// StartWorkout begins a workout for the wearer, creating the wearer on first
// contact. Returns ErrWorkoutInProgress if one is already recording.
func (s *Service) StartWorkout(wearerID, workoutType string, startTime int64) error {
	return s.registry.GetOrCreate(wearerID).StartWorkout(workoutType, startTime)
}

// StopWorkout completes the wearer's active workout and folds its totals into
// the day buckets. Returns ErrNoActiveWorkout if none is recording.
func (s *Service) StopWorkout(wearerID string, endTime int64) (WorkoutSummary, error) {
	wearer, err := s.registry.Get(wearerID)
	if err != nil {
		return WorkoutSummary{}, err
	}
	summary, err := wearer.EndWorkout(endTime)
	if err != nil {
		return WorkoutSummary{}, err
	}
	observability.RecordWorkoutFolded(summary.EndTime)
	return summary, nil
}

// IngestWorkoutBatch replays one device-reported workout: start the session,
// accumulate every sample pair, then complete and fold. The batch carries
// parallel calorie and step sample slices; ragged batches are accumulated to
// the longer length with missing readings treated as zero.
func (s *Service) IngestWorkoutBatch(wearerID string, batch events.WorkoutBatch) (WorkoutSummary, error) {
	wearer := s.registry.GetOrCreate(wearerID)

	if err := wearer.StartWorkout(batch.WorkoutType, batch.StartTime); err != nil {
		return WorkoutSummary{}, fmt.Errorf("start workout: %w", err)
	}

	n := len(batch.CaloriesSamples)
	if len(batch.StepSamples) > n {
		n = len(batch.StepSamples)
	}
	for i := 0; i < n; i++ {
		var calories, steps float64
		if i < len(batch.CaloriesSamples) {
			calories = batch.CaloriesSamples[i]
		}
		if i < len(batch.StepSamples) {
			steps = batch.StepSamples[i]
		}
		wearer.AddWorkoutSample(calories, steps)
	}

	summary, err := wearer.EndWorkout(batch.EndTime)
	if err != nil {
		return WorkoutSummary{}, fmt.Errorf("end workout: %w", err)
	}
	observability.RecordWorkoutFolded(summary.EndTime)
	return summary, nil
}

// IngestHeartRateBatch records a run of heart-rate readings taken at the
// fixed device cadence, classifying each by the wearer's resting state at
// that moment.
func (s *Service) IngestHeartRateBatch(wearerID string, batch events.HeartRateBatch) {
	wearer := s.registry.GetOrCreate(wearerID)
	for i, bpm := range batch.HeartRate {
		ts := batch.StartTime + int64(i)*events.SampleCadenceSeconds
		wearer.RecordHeartRate(ts, bpm)
	}
	if len(batch.HeartRate) > 0 {
		last := batch.StartTime + int64(len(batch.HeartRate)-1)*events.SampleCadenceSeconds
		observability.RecordHeartRateIngested(last)
	}
}

// Summary returns the ordered day buckets for one of the wearer's metrics.
func (s *Service) Summary(wearerID string, kind MetricKind) ([]DayBucket, error) {
	wearer, err := s.registry.Get(wearerID)
	if err != nil {
		return nil, err
	}
	return wearer.Summary(kind), nil
}

// RawSamples returns the audit log for one of the wearer's metrics.
func (s *Service) RawSamples(wearerID string, kind MetricKind) ([]RawSample, error) {
	wearer, err := s.registry.Get(wearerID)
	if err != nil {
		return nil, err
	}
	return wearer.RawSamples(kind), nil
}

// HeartRateStreams returns the wearer's resting and active streams.
func (s *Service) HeartRateStreams(wearerID string) (resting, active []HeartRateSample, err error) {
	wearer, err := s.registry.Get(wearerID)
	if err != nil {
		return nil, nil, err
	}
	resting, active = wearer.HeartRateStreams()
	return resting, active, nil
}
