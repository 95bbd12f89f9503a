// Package api exposes HTTP handlers for the watch service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/brandontiqui/fitness-tracking-watch/internal/auth"
	"github.com/brandontiqui/fitness-tracking-watch/internal/domain"
	"github.com/brandontiqui/fitness-tracking-watch/internal/events"
	"github.com/brandontiqui/fitness-tracking-watch/internal/stats"
)

const defaultWindowDays = 2

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service       *domain.Service
	restingHRDays int
}

// NewHandler builds a Handler. restingHRDays is the default span for
// resting heart-rate queries when the request does not name one.
func NewHandler(service *domain.Service, restingHRDays int) *Handler {
	if restingHRDays <= 0 {
		restingHRDays = 7
	}
	return &Handler{service: service, restingHRDays: restingHRDays}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/wearers/", h.wearers)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// wearers dispatches /v1/wearers/{id}/{action...} requests.
func (h *Handler) wearers(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/wearers/")
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" || len(parts) < 2 {
		writeError(w, http.StatusNotFound, "not_found", "unknown resource")
		return
	}
	wearerID, action := parts[0], parts[1]

	switch {
	case action == "workout/start" && r.Method == http.MethodPost:
		h.startWorkout(w, r, wearerID)
	case action == "workout/stop" && r.Method == http.MethodPost:
		h.stopWorkout(w, r, wearerID)
	case action == "batches/workout" && r.Method == http.MethodPost:
		h.ingestWorkoutBatch(w, r, wearerID)
	case action == "batches/heartrate" && r.Method == http.MethodPost:
		h.ingestHeartRateBatch(w, r, wearerID)
	case action == "summary" && r.Method == http.MethodGet:
		h.summary(w, r, wearerID)
	case action == "raw" && r.Method == http.MethodGet:
		h.rawSamples(w, r, wearerID)
	case action == "heartrate" && r.Method == http.MethodGet:
		h.heartRate(w, r, wearerID)
	case action == "stats" && r.Method == http.MethodGet:
		h.windowStats(w, r, wearerID)
	case action == "stats/resting-heart-rate" && r.Method == http.MethodGet:
		h.restingHeartRate(w, r, wearerID)
	case action == "stats/calories-per-workout" && r.Method == http.MethodGet:
		h.caloriesPerWorkout(w, r, wearerID)
	case action == "charts" && r.Method == http.MethodGet:
		h.chart(w, r, wearerID)
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown resource")
	}
}

func (h *Handler) startWorkout(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireScope(w, r, auth.ScopeWearersWrite) {
		return
	}

	var req StartWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.service.StartWorkout(wearerID, req.WorkoutType, req.StartTime); err != nil {
		if errors.Is(err, domain.ErrWorkoutInProgress) {
			writeError(w, http.StatusConflict, "workout_in_progress", "a workout is already recording")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "recording"})
}

func (h *Handler) stopWorkout(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireScope(w, r, auth.ScopeWearersWrite) {
		return
	}

	var req StopWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if req.EndTime <= 0 {
		writeError(w, http.StatusBadRequest, "validation_failed", "end_time is required")
		return
	}

	summary, err := h.service.StopWorkout(wearerID, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveWorkout):
			writeError(w, http.StatusConflict, "no_active_workout", "no workout is recording")
		case errors.Is(err, domain.ErrWearerNotFound):
			writeError(w, http.StatusNotFound, "not_found", "wearer not found")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, toWorkoutView(summary))
}

func (h *Handler) ingestWorkoutBatch(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireScope(w, r, auth.ScopeWearersWrite) {
		return
	}

	var batch events.WorkoutBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if batch.WorkoutType == "" || batch.StartTime <= 0 || batch.EndTime < batch.StartTime {
		writeError(w, http.StatusBadRequest, "validation_failed", "workout_type and a valid time range are required")
		return
	}

	summary, err := h.service.IngestWorkoutBatch(wearerID, batch)
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutInProgress) {
			writeError(w, http.StatusConflict, "workout_in_progress", "a workout is already recording")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, toWorkoutView(summary))
}

func (h *Handler) ingestHeartRateBatch(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireScope(w, r, auth.ScopeWearersWrite) {
		return
	}

	var batch events.HeartRateBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if batch.StartTime <= 0 {
		writeError(w, http.StatusBadRequest, "validation_failed", "start_time is required")
		return
	}

	h.service.IngestHeartRateBatch(wearerID, batch)
	writeJSON(w, http.StatusAccepted, map[string]int{"samples": len(batch.HeartRate)})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireReadScope(w, r) {
		return
	}

	kind, err := domain.ParseMetricKind(r.URL.Query().Get("metric"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "metric must be steps or calories")
		return
	}

	buckets, err := h.service.Summary(wearerID, kind)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "wearer not found")
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Metric: string(kind), Buckets: buckets})
}

func (h *Handler) rawSamples(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireReadScope(w, r) {
		return
	}

	kind, err := domain.ParseMetricKind(r.URL.Query().Get("metric"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "metric must be steps or calories")
		return
	}

	samples, err := h.service.RawSamples(wearerID, kind)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "wearer not found")
		return
	}

	writeJSON(w, http.StatusOK, RawSamplesResponse{Metric: string(kind), Samples: samples})
}

func (h *Handler) heartRate(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireReadScope(w, r) {
		return
	}

	resting, active, err := h.service.HeartRateStreams(wearerID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "wearer not found")
		return
	}

	writeJSON(w, http.StatusOK, HeartRateResponse{Resting: resting, Active: active})
}

func (h *Handler) windowStats(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireReadScope(w, r) {
		return
	}

	kind, err := domain.ParseMetricKind(r.URL.Query().Get("metric"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "metric must be steps or calories")
		return
	}

	op := r.URL.Query().Get("op")
	window := queryInt(r, "window", defaultWindowDays)
	if window < 2 {
		writeError(w, http.StatusBadRequest, "validation_failed", "window must be >= 2")
		return
	}

	buckets, err := h.service.Summary(wearerID, kind)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "wearer not found")
		return
	}
	if workoutType := r.URL.Query().Get("workout_type"); workoutType != "" {
		buckets = stats.FilterByTag(buckets, workoutType)
	}

	var value float64
	switch op {
	case "min":
		value = stats.MinOverWindow(buckets, window)
	case "max":
		value = stats.MaxOverWindow(buckets, window)
	case "avg":
		value = stats.AverageOverWindow(buckets, window)
	default:
		writeError(w, http.StatusBadRequest, "validation_failed", "op must be min, max or avg")
		return
	}

	writeJSON(w, http.StatusOK, StatResponse{Metric: string(kind), Op: op, WindowDays: window, Value: value})
}

func (h *Handler) restingHeartRate(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireReadScope(w, r) {
		return
	}

	days := queryInt(r, "days", h.restingHRDays)

	resting, _, err := h.service.HeartRateStreams(wearerID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "wearer not found")
		return
	}

	value := stats.AverageRestingHeartRate(resting, days)
	writeJSON(w, http.StatusOK, StatResponse{Metric: "resting_heart_rate", Op: "avg", WindowDays: days, Value: value})
}

func (h *Handler) caloriesPerWorkout(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireReadScope(w, r) {
		return
	}

	window := queryInt(r, "window", defaultWindowDays)
	if window < 2 {
		writeError(w, http.StatusBadRequest, "validation_failed", "window must be >= 2")
		return
	}

	buckets, err := h.service.Summary(wearerID, domain.MetricCalories)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "wearer not found")
		return
	}
	if workoutType := r.URL.Query().Get("workout_type"); workoutType != "" {
		buckets = stats.FilterByTag(buckets, workoutType)
	}

	value := stats.AverageCaloriesPerWorkout(buckets, window)
	writeJSON(w, http.StatusOK, StatResponse{Metric: "calories", Op: "avg_per_workout", WindowDays: window, Value: value})
}

func requireScope(w http.ResponseWriter, r *http.Request, scope string) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasScope(scope) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+scope+" required")
		return false
	}
	return true
}

func requireReadScope(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return false
	}
	if !claims.HasScope(auth.ScopeWearersRead) && !claims.HasScope(auth.ScopeWearersWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope wearers:read required")
		return false
	}
	return true
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

// StartWorkoutRequest is the payload for POST workout/start.
type StartWorkoutRequest struct {
	WorkoutType string `json:"workout_type"`
	StartTime   int64  `json:"start_time"`
}

// Validate ensures request correctness.
func (r StartWorkoutRequest) Validate() error {
	if strings.TrimSpace(r.WorkoutType) == "" {
		return errors.New("workout_type is required")
	}
	if r.StartTime <= 0 {
		return errors.New("start_time is required")
	}
	return nil
}

// StopWorkoutRequest is the payload for POST workout/stop.
type StopWorkoutRequest struct {
	EndTime int64 `json:"end_time"`
}

// WorkoutView exposes a completed workout summary.
type WorkoutView struct {
	WorkoutID   string  `json:"workout_id"`
	WorkoutType string  `json:"workout_type"`
	StartTime   int64   `json:"start_time"`
	EndTime     int64   `json:"end_time"`
	Calories    float64 `json:"calories_burned"`
	Steps       float64 `json:"steps"`
}

// SummaryResponse packages the ordered day buckets for one metric.
type SummaryResponse struct {
	Metric  string             `json:"metric"`
	Buckets []domain.DayBucket `json:"buckets"`
}

// RawSamplesResponse exposes the audit log behind one metric's buckets.
type RawSamplesResponse struct {
	Metric  string             `json:"metric"`
	Samples []domain.RawSample `json:"samples"`
}

// HeartRateResponse exposes the raw classified streams.
type HeartRateResponse struct {
	Resting []domain.HeartRateSample `json:"resting"`
	Active  []domain.HeartRateSample `json:"active"`
}

// StatResponse carries one scalar query result.
type StatResponse struct {
	Metric     string  `json:"metric"`
	Op         string  `json:"op"`
	WindowDays int     `json:"window_days"`
	Value      float64 `json:"value"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toWorkoutView(summary domain.WorkoutSummary) WorkoutView {
	return WorkoutView{
		WorkoutID:   summary.ID,
		WorkoutType: summary.Type,
		StartTime:   summary.StartTime,
		EndTime:     summary.EndTime,
		Calories:    summary.Calories,
		Steps:       summary.Steps,
	}
}
