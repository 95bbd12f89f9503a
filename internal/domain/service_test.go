package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandontiqui/fitness-tracking-watch/internal/events"
)

func TestIngestWorkoutBatchFoldsTotals(t *testing.T) {
	service := NewService(NewRegistry())

	start := int64(100 * SecondsPerDay)
	summary, err := service.IngestWorkoutBatch("wearer-1", events.WorkoutBatch{
		WorkoutType:     "run",
		StartTime:       start,
		EndTime:         start + 1800,
		CaloriesSamples: []float64{10, 20, 30},
		StepSamples:     []float64{100, 200, 130},
	})
	require.NoError(t, err)
	require.NotEmpty(t, summary.ID)
	require.Equal(t, float64(60), summary.Calories)
	require.Equal(t, float64(430), summary.Steps)

	steps, err := service.Summary("wearer-1", MetricSteps)
	require.NoError(t, err)
	require.Equal(t, []DayBucket{{Day: 100, Value: 430}}, steps)

	calories, err := service.Summary("wearer-1", MetricCalories)
	require.NoError(t, err)
	require.Equal(t, []DayBucket{{Day: 100, Value: 60, Tag: "run"}}, calories)

	raw, err := service.RawSamples("wearer-1", MetricCalories)
	require.NoError(t, err)
	require.Len(t, raw, 1)
	require.Equal(t, summary.ID, raw[0].WorkoutID)
	require.Equal(t, "run", raw[0].WorkoutType)
}

func TestIngestWorkoutBatchRaggedSamples(t *testing.T) {
	service := NewService(NewRegistry())

	start := int64(50 * SecondsPerDay)
	summary, err := service.IngestWorkoutBatch("wearer-1", events.WorkoutBatch{
		WorkoutType:     "bike",
		StartTime:       start,
		EndTime:         start + 600,
		CaloriesSamples: []float64{5, 5},
		StepSamples:     []float64{10, 10, 10, 10},
	})
	require.NoError(t, err)
	require.Equal(t, float64(10), summary.Calories)
	require.Equal(t, float64(40), summary.Steps)
}

func TestTwoWorkoutsSameDayMergeBuckets(t *testing.T) {
	service := NewService(NewRegistry())

	start := int64(200 * SecondsPerDay)
	_, err := service.IngestWorkoutBatch("wearer-1", events.WorkoutBatch{
		WorkoutType: "run",
		StartTime:   start,
		EndTime:     start + 600,
		StepSamples: []float64{430},
	})
	require.NoError(t, err)

	_, err = service.IngestWorkoutBatch("wearer-1", events.WorkoutBatch{
		WorkoutType: "run",
		StartTime:   start + 7200,
		EndTime:     start + 7800,
		StepSamples: []float64{1160},
	})
	require.NoError(t, err)

	steps, err := service.Summary("wearer-1", MetricSteps)
	require.NoError(t, err)
	require.Equal(t, []DayBucket{{Day: 200, Value: 1590}}, steps)
}

func TestStartStopWorkoutConflicts(t *testing.T) {
	service := NewService(NewRegistry())

	require.NoError(t, service.StartWorkout("wearer-1", "run", 1000))
	require.ErrorIs(t, service.StartWorkout("wearer-1", "bike", 2000), ErrWorkoutInProgress)

	_, err := service.StopWorkout("wearer-1", 3000)
	require.NoError(t, err)

	_, err = service.StopWorkout("wearer-1", 4000)
	require.ErrorIs(t, err, ErrNoActiveWorkout)

	_, err = service.StopWorkout("nobody", 5000)
	require.ErrorIs(t, err, ErrWearerNotFound)
}

func TestHeartRateClassification(t *testing.T) {
	service := NewService(NewRegistry())

	start := int64(10 * SecondsPerDay)

	// At rest: every reading lands on the resting stream.
	service.IngestHeartRateBatch("wearer-1", events.HeartRateBatch{
		StartTime: start,
		HeartRate: []float64{60, 62, 64},
	})

	// During a workout the wearer is active.
	require.NoError(t, service.StartWorkout("wearer-1", "run", start+3600))
	service.IngestHeartRateBatch("wearer-1", events.HeartRateBatch{
		StartTime: start + 3600,
		HeartRate: []float64{140, 150},
	})
	_, err := service.StopWorkout("wearer-1", start+5400)
	require.NoError(t, err)

	resting, active, err := service.HeartRateStreams("wearer-1")
	require.NoError(t, err)
	require.Len(t, resting, 3)
	require.Len(t, active, 2)
	require.Equal(t, int64(10), resting[0].Day)
	require.True(t, resting[0].Resting)
	require.False(t, active[0].Resting)

	// Cadence is fixed at 60 seconds.
	require.Equal(t, resting[0].Timestamp+60, resting[1].Timestamp)
}

func TestQueriesForUnknownWearer(t *testing.T) {
	service := NewService(NewRegistry())

	_, err := service.Summary("ghost", MetricSteps)
	require.ErrorIs(t, err, ErrWearerNotFound)

	_, _, err = service.HeartRateStreams("ghost")
	require.ErrorIs(t, err, ErrWearerNotFound)
}

func TestParseMetricKind(t *testing.T) {
	kind, err := ParseMetricKind("steps")
	require.NoError(t, err)
	require.Equal(t, MetricSteps, kind)

	kind, err = ParseMetricKind("calories")
	require.NoError(t, err)
	require.Equal(t, MetricCalories, kind)

	_, err = ParseMetricKind("altitude")
	require.ErrorIs(t, err, ErrUnknownMetric)
}
