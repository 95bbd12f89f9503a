package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrWorkoutInProgress is returned when a workout start is requested while
	// another workout is still recording.
	ErrWorkoutInProgress = errors.New("workout already in progress")
	// ErrNoActiveWorkout is returned when a workout stop is requested with no
	// workout recording.
	ErrNoActiveWorkout = errors.New("no workout in progress")
)

// WorkoutSummary is the immutable result of a completed workout. The ID is
// assigned only at completion.
type WorkoutSummary struct {
	ID        string  `json:"workout_id"`
	Type      string  `json:"workout_type"`
	StartTime int64   `json:"start_time"`
	EndTime   int64   `json:"end_time"`
	Calories  float64 `json:"calories_burned"`
	Steps     float64 `json:"steps"`
}

// SessionMachine tracks at most one in-progress workout. Transitions that
// conflict with the current state return typed errors instead of mutating
// anything, so callers can branch on the outcome.
type SessionMachine struct {
	recording   bool
	workoutType string
	startTime   int64
	calories    float64
	steps       float64
}

// NewSessionMachine constructs a machine in the idle state.
func NewSessionMachine() *SessionMachine {
	return &SessionMachine{}
}

// Recording reports whether a workout is currently in progress.
func (m *SessionMachine) Recording() bool {
	return m.recording
}

// Start transitions idle -> recording, capturing the workout type and start
// time. Returns ErrWorkoutInProgress if a workout is already recording.
func (m *SessionMachine) Start(workoutType string, startTime int64) error {
	if m.recording {
		return ErrWorkoutInProgress
	}
	m.recording = true
	m.workoutType = workoutType
	m.startTime = startTime
	m.calories = 0
	m.steps = 0
	return nil
}

// AddCalories accumulates a calorie reading into the running total.
// Readings outside a recording window are dropped.
func (m *SessionMachine) AddCalories(value float64) {
	if !m.recording {
		return
	}
	m.calories += value
}

// AddSteps accumulates a step reading into the running total.
func (m *SessionMachine) AddSteps(value float64) {
	if !m.recording {
		return
	}
	m.steps += value
}

// Complete transitions recording -> idle, assigning the workout its ID and
// end time and yielding the immutable summary. The machine retains nothing;
// folding the summary into the stores is the caller's job. Returns
// ErrNoActiveWorkout when called while idle.
func (m *SessionMachine) Complete(endTime int64) (WorkoutSummary, error) {
	if !m.recording {
		return WorkoutSummary{}, ErrNoActiveWorkout
	}
	summary := WorkoutSummary{
		ID:        uuid.NewString(),
		Type:      m.workoutType,
		StartTime: m.startTime,
		EndTime:   endTime,
		Calories:  m.calories,
		Steps:     m.steps,
	}
	*m = SessionMachine{}
	return summary, nil
}
