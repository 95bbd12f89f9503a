package consumer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandontiqui/fitness-tracking-watch/internal/domain"
	"github.com/brandontiqui/fitness-tracking-watch/internal/events"
)

func TestIngestHandlerWorkoutBatch(t *testing.T) {
	service := domain.NewService(domain.NewRegistry())
	handler := NewIngestHandler(service)

	batch := events.WorkoutBatch{
		WorkoutType:     "run",
		StartTime:       100 * domain.SecondsPerDay,
		EndTime:         100*domain.SecondsPerDay + 1800,
		CaloriesSamples: []float64{10, 20},
		StepSamples:     []float64{500, 700},
	}
	payload, err := json.Marshal(batch)
	require.NoError(t, err)

	err = handler.Handle(context.Background(), Message{
		EventType: EventWorkoutBatch,
		WearerID:  "wearer-1",
		Payload:   payload,
	})
	require.NoError(t, err)

	steps, err := service.Summary("wearer-1", domain.MetricSteps)
	require.NoError(t, err)
	require.Equal(t, []domain.DayBucket{{Day: 100, Value: 1200}}, steps)

	calories, err := service.Summary("wearer-1", domain.MetricCalories)
	require.NoError(t, err)
	require.Equal(t, []domain.DayBucket{{Day: 100, Value: 30, Tag: "run"}}, calories)
}

func TestIngestHandlerHeartRateBatch(t *testing.T) {
	service := domain.NewService(domain.NewRegistry())
	handler := NewIngestHandler(service)

	batch := events.HeartRateBatch{
		StartTime: 50 * domain.SecondsPerDay,
		HeartRate: []float64{58, 59, 61},
	}
	payload, err := json.Marshal(batch)
	require.NoError(t, err)

	err = handler.Handle(context.Background(), Message{
		EventType: EventHeartRateBatch,
		WearerID:  "wearer-1",
		Payload:   payload,
	})
	require.NoError(t, err)

	resting, active, err := service.HeartRateStreams("wearer-1")
	require.NoError(t, err)
	require.Len(t, resting, 3)
	require.Empty(t, active)
}

func TestIngestHandlerRejectsInvalidBatches(t *testing.T) {
	service := domain.NewService(domain.NewRegistry())
	handler := NewIngestHandler(service)

	cases := []struct {
		name      string
		eventType string
		payload   string
	}{
		{"unknown event type", "watch.unknown", `{}`},
		{"workout missing type", EventWorkoutBatch, `{"start_time":100,"end_time":200}`},
		{"workout inverted range", EventWorkoutBatch, `{"workout_type":"run","start_time":200,"end_time":100}`},
		{"heart rate missing start", EventHeartRateBatch, `{"heart_rate":[60]}`},
		{"workout malformed json", EventWorkoutBatch, `{"workout_type":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := handler.Handle(context.Background(), Message{
				EventType: tc.eventType,
				WearerID:  "wearer-1",
				Payload:   json.RawMessage(tc.payload),
			})
			require.Error(t, err)
		})
	}
}
