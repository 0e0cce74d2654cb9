package adaptation

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=adaptation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/internal/workouts"
	"github.com/velolab/paceline/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type adaptationService interface {
	EvaluateWorkout(ctx context.Context, workoutID int64) (*DecisionRecord, error)
	Respond(ctx context.Context, decisionID string, accept bool, feedback *string) (*DecisionRecord, error)
	Decisions(ctx context.Context, userID string, limit int) ([]DecisionRecord, error)
	RunBatch(ctx context.Context, userID string) ([]DecisionRecord, error)
}

type settingsStore interface {
	Get(ctx context.Context, userID string) (Settings, error)
	Upsert(ctx context.Context, s Settings) error
}

type RespondRequest struct {
	Accept   bool    `json:"accept"`
	Feedback *string `json:"feedback,omitempty"`
}

type DecisionsResponse struct {
	Decisions []DecisionRecord `json:"decisions"`
	Total     int              `json:"total"`
}

type Handler struct {
	service  adaptationService
	settings settingsStore
}

func NewHandler(service adaptationService, settings settingsStore) *Handler {
	return &Handler{
		service:  service,
		settings: settings,
	}
}

func (handler *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adaptation.evaluate")
	defer span.End()

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

	rec, err := handler.service.EvaluateWorkout(ctx, workoutID)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to evaluate workout %d: %s", workoutID, err)
		http.Error(w, "failed to evaluate workout", http.StatusInternalServerError)
		return
	}

	recJson, err := json.Marshal(rec)
	if err != nil {
		log.Errorf("failed to marshal decision: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recJson, http.StatusOK)
}

func (handler *Handler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adaptation.respond")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	decisionID := vars["decisionId"]
	if decisionID == "" {
		http.Error(w, "error, decision id empty", http.StatusBadRequest)
		return
	}

	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("respond to decision, unmarshal json params: %s", err)
		http.Error(w, "respond to decision failed", http.StatusBadRequest)
		return
	}

	rec, err := handler.service.Respond(ctx, decisionID, req.Accept, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, ErrDecisionNotFound):
			http.Error(w, "decision not found", http.StatusNotFound)
		case errors.Is(err, ErrAlreadyResponded):
			http.Error(w, "decision already responded to", http.StatusConflict)
		default:
			log.Errorf("failed to respond to decision %s: %s", decisionID, err)
			http.Error(w, "failed to respond to decision", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("decision %s responded to: accept=%t", decisionID, req.Accept)

	recJson, err := json.Marshal(rec)
	if err != nil {
		log.Errorf("failed to marshal decision: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recJson, http.StatusOK)
}

func (handler *Handler) HandleDecisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adaptation.decisions")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
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

	decisions, err := handler.service.Decisions(ctx, userID, limit)
	if err != nil {
		log.Errorf("failed to list decisions for [%s]: %s", userID, err)
		http.Error(w, "failed to list decisions", http.StatusInternalServerError)
		return
	}

	decisionsJson, err := json.Marshal(DecisionsResponse{
		Decisions: decisions,
		Total:     len(decisions),
	})
	if err != nil {
		log.Errorf("failed to marshal decisions: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, decisionsJson, http.StatusOK)
}

func (handler *Handler) HandleRunBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adaptation.runbatch")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	decisions, err := handler.service.RunBatch(ctx, userID)
	if err != nil {
		log.Errorf("failed to run adaptation batch for [%s]: %s", userID, err)
		http.Error(w, "failed to run adaptation batch", http.StatusInternalServerError)
		return
	}

	decisionsJson, err := json.Marshal(DecisionsResponse{
		Decisions: decisions,
		Total:     len(decisions),
	})
	if err != nil {
		log.Errorf("failed to marshal batch decisions: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, decisionsJson, http.StatusOK)
}

func (handler *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adaptation.getsettings")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	settings, err := handler.settings.Get(ctx, userID)
	if err != nil {
		log.Errorf("failed to get settings for [%s]: %s", userID, err)
		http.Error(w, "failed to get settings", http.StatusInternalServerError)
		return
	}

	settingsJson, err := json.Marshal(settings)
	if err != nil {
		log.Errorf("failed to marshal settings: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, settingsJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.adaptation.updatesettings")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Errorf("update settings, unmarshal json params: %s", err)
		http.Error(w, "update settings failed", http.StatusBadRequest)
		return
	}
	if settings.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if err := settings.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.settings.Upsert(ctx, settings); err != nil {
		log.Errorf("failed to update settings for [%s]: %s", settings.UserID, err)
		http.Error(w, "failed to update settings", http.StatusInternalServerError)
		return
	}

	log.Debugf("settings updated for [%s]", settings.UserID)
	pkg.WriteTextResponseOK(w, "updated")
}
