package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brandontiqui/fitness-tracking-watch/internal/domain"
	"github.com/brandontiqui/fitness-tracking-watch/internal/events"
)

// IngestHandler folds decoded device batches into the wearer aggregates.
type IngestHandler struct {
	service *domain.Service
}

// NewIngestHandler constructs an IngestHandler over the domain service.
func NewIngestHandler(service *domain.Service) *IngestHandler {
	return &IngestHandler{service: service}
}

// Handle implements Handler. Workout batches replay the session lifecycle and
// fold the totals; heart-rate batches classify each reading by the wearer's
// resting state. Unknown event types are an error so the processor leaves the
// message uncommitted and the mistake shows up in the handler error counter.
func (h *IngestHandler) Handle(_ context.Context, msg Message) error {
	switch msg.EventType {
	case EventWorkoutBatch:
		var batch events.WorkoutBatch
		if err := json.Unmarshal(msg.Payload, &batch); err != nil {
			return fmt.Errorf("unmarshal workout batch: %w", err)
		}
		if err := validateWorkoutBatch(batch); err != nil {
			return err
		}
		if _, err := h.service.IngestWorkoutBatch(msg.WearerID, batch); err != nil {
			return fmt.Errorf("ingest workout batch (wearer=%s): %w", msg.WearerID, err)
		}
		return nil

	case EventHeartRateBatch:
		var batch events.HeartRateBatch
		if err := json.Unmarshal(msg.Payload, &batch); err != nil {
			return fmt.Errorf("unmarshal heart-rate batch: %w", err)
		}
		if batch.StartTime <= 0 {
			return errors.New("heart-rate batch missing start_time")
		}
		h.service.IngestHeartRateBatch(msg.WearerID, batch)
		return nil

	default:
		return fmt.Errorf("unknown event type %q", msg.EventType)
	}
}

func validateWorkoutBatch(batch events.WorkoutBatch) error {
	if batch.WorkoutType == "" {
		return errors.New("workout batch missing workout_type")
	}
	if batch.StartTime <= 0 || batch.EndTime < batch.StartTime {
		return fmt.Errorf("workout batch has invalid time range [%d, %d]", batch.StartTime, batch.EndTime)
	}
	return nil
}
