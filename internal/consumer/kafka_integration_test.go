//go:build integration

package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkaContainer "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/brandontiqui/fitness-tracking-watch/internal/domain"
	"github.com/brandontiqui/fitness-tracking-watch/internal/events"
)

func TestKafkaBatchesFoldIntoDayBuckets(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	kafkaC, err := kafkaContainer.RunContainer(ctx, testcontainers.WithEnv(map[string]string{
		"KAFKA_AUTO_CREATE_TOPICS_ENABLE": "true",
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kafkaC.Terminate(context.Background()) })

	brokers, err := kafkaC.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	broker := brokers[0]

	topic := "watch.batches"

	conn, err := kafka.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		GroupID:     "watch-integration",
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	service := domain.NewService(domain.NewRegistry())
	handler := NewIngestHandler(service)

	consumerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	proc := NewProcessor(reader, handler)
	go func() {
		_ = proc.Run(consumerCtx)
	}()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	startDay := int64(20000)
	workout := events.WorkoutBatch{
		WorkoutType:     "run",
		StartTime:       startDay * domain.SecondsPerDay,
		EndTime:         startDay*domain.SecondsPerDay + 1800,
		CaloriesSamples: []float64{10, 20, 30},
		StepSamples:     []float64{500, 700, 400},
	}
	workoutPayload, err := json.Marshal(workout)
	require.NoError(t, err)

	heartRate := events.HeartRateBatch{
		StartTime: startDay*domain.SecondsPerDay + 3600,
		HeartRate: []float64{60, 62, 64},
	}
	heartRatePayload, err := json.Marshal(heartRate)
	require.NoError(t, err)

	err = writer.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte("wearer-int"),
			Value: workoutPayload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(EventWorkoutBatch)},
				{Key: "wearer_id", Value: []byte("wearer-int")},
			},
		},
		kafka.Message{
			Key:   []byte("wearer-int"),
			Value: heartRatePayload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(EventHeartRateBatch)},
				{Key: "wearer_id", Value: []byte("wearer-int")},
			},
		},
	)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		buckets, err := service.Summary("wearer-int", domain.MetricSteps)
		return err == nil && len(buckets) == 1
	}, 30*time.Second, 500*time.Millisecond)

	steps, err := service.Summary("wearer-int", domain.MetricSteps)
	require.NoError(t, err)
	require.Equal(t, []domain.DayBucket{{Day: startDay, Value: 1600}}, steps)

	calories, err := service.Summary("wearer-int", domain.MetricCalories)
	require.NoError(t, err)
	require.Equal(t, []domain.DayBucket{{Day: startDay, Value: 60, Tag: "run"}}, calories)

	require.Eventually(t, func() bool {
		resting, _, err := service.HeartRateStreams("wearer-int")
		return err == nil && len(resting) == 3
	}, 30*time.Second, 500*time.Millisecond)

	resting, active, err := service.HeartRateStreams("wearer-int")
	require.NoError(t, err)
	require.Len(t, resting, 3)
	require.Empty(t, active)
	require.Equal(t, startDay, resting[0].Day)
}
