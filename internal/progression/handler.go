package progression

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/internal/workouts"
	"github.com/velolab/paceline/internal/zones"
	"github.com/velolab/paceline/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type progressionService interface {
	ApplyOutcome(ctx context.Context, workoutID int64, outcome Outcome) (*ProgressionLevel, error)
	Levels(ctx context.Context, userID string) ([]ProgressionLevel, error)
	History(ctx context.Context, userID string, zone zones.Zone, limit int) ([]HistoryEntry, error)
}

type seedService interface {
	Seed(ctx context.Context, userID string) (*SeedResult, error)
}

type LevelsResponse struct {
	Levels []ProgressionLevel `json:"levels"`
}

type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int            `json:"total"`
}

type Handler struct {
	service progressionService
	seeder  seedService
}

func NewHandler(service progressionService, seeder seedService) *Handler {
	return &Handler{
		service: service,
		seeder:  seeder,
	}
}

func (handler *Handler) HandleLevels(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.levels")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	levels, err := handler.service.Levels(ctx, userID)
	if err != nil {
		log.Errorf("failed to get progression levels for [%s]: %s", userID, err)
		http.Error(w, "failed to get progression levels", http.StatusInternalServerError)
		return
	}

	levelsJson, err := json.Marshal(LevelsResponse{Levels: levels})
	if err != nil {
		log.Errorf("failed to marshal progression levels: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, levelsJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.history")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	zone := zones.Zone(vars["zone"])
	if !zone.IsValid() {
		http.Error(w, "error, unknown zone", http.StatusBadRequest)
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit (has to be a positive number)", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := handler.service.History(ctx, userID, zone, limit)
	if err != nil {
		log.Errorf("failed to get progression history for [%s/%s]: %s", userID, zone, err)
		http.Error(w, "failed to get progression history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(HistoryResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("failed to marshal progression history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

func (handler *Handler) HandleOutcome(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.outcome")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	workoutIDStr := vars["workoutId"]
	if workoutIDStr == "" {
		http.Error(w, "error, workout id empty", http.StatusBadRequest)
		return
	}
	workoutID, err := strconv.ParseInt(workoutIDStr, 10, 64)
	if err != nil {
		http.Error(w, "error, workout id NaN", http.StatusBadRequest)
		return
	}

	var outcome Outcome
	if err := json.NewDecoder(r.Body).Decode(&outcome); err != nil {
		log.Errorf("apply outcome, unmarshal json params: %s", err)
		http.Error(w, "apply outcome failed", http.StatusBadRequest)
		return
	}
	if err := outcome.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	level, err := handler.service.ApplyOutcome(ctx, workoutID, outcome)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to apply outcome for workout %d: %s", workoutID, err)
		http.Error(w, "failed to apply outcome", http.StatusInternalServerError)
		return
	}

	log.Debugf("outcome applied for workout %d: [%s/%s] now at %.2f",
		workoutID, level.UserID, level.Zone, level.Level)

	levelJson, err := json.Marshal(level)
	if err != nil {
		log.Errorf("failed to marshal progression level: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, levelJson, http.StatusOK)
}

func (handler *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.seed")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.seeder.Seed(ctx, userID)
	if err != nil {
		log.Errorf("failed to seed progression levels for [%s]: %s", userID, err)
		http.Error(w, "failed to seed progression levels", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal seed result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}
