package progression

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progression_test

import (
	"context"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/telemetry/metrics"
	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/internal/workouts"
	"github.com/velolab/paceline/internal/zones"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type workoutsRepo interface {
	Get(ctx context.Context, id int64) (*workouts.Workout, error)
	RecordOutcome(ctx context.Context, id int64, completionPct float64, rpe int) error
}

type levelStore interface {
	Get(ctx context.Context, userID string, zone zones.Zone) (*ProgressionLevel, error)
	Update(ctx context.Context, userID string, zone zones.Zone, delta float64, reason string, refs UpdateRefs) (*ProgressionLevel, error)
	IncrementWorkoutCount(ctx context.Context, userID string, zone zones.Zone, date time.Time) error
	ListForUser(ctx context.Context, userID string) ([]ProgressionLevel, error)
	History(ctx context.Context, userID string, zone zones.Zone, limit int) ([]HistoryEntry, error)
}

// Service moves progression levels in response to workout outcomes.
type Service struct {
	workouts workoutsRepo
	store    levelStore
	metrics  *metrics.Manager
}

func NewService(workoutsRepo workoutsRepo, store levelStore, metricsManager *metrics.Manager) *Service {
	return &Service{
		workouts: workoutsRepo,
		store:    store,
		metrics:  metricsManager,
	}
}

// Outcome is the reported result of a planned workout.
type Outcome struct {
	CompletionPct float64 `json:"completionPct"`
	RPE           int     `json:"rpe"`
}

func (o Outcome) Validate() error {
	if o.CompletionPct < 0 || o.CompletionPct > 150 {
		return fmt.Errorf("completion pct out of range: %.1f", o.CompletionPct)
	}
	if o.RPE < 1 || o.RPE > 10 {
		return fmt.Errorf("rpe out of range: %d", o.RPE)
	}
	return nil
}

// ApplyOutcome records a workout outcome and moves the user's level in the
// workout's zone by the adjustment the outcome earns. A zero adjustment
// still records the outcome and counts the workout.
func (s *Service) ApplyOutcome(ctx context.Context, workoutID int64, outcome Outcome) (_ *ProgressionLevel, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.applyoutcome")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout_id", workoutID))

	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	workout, err := s.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	if workout.IsRestDay {
		return nil, fmt.Errorf("workout %d is a rest day, no outcome to apply", workoutID)
	}

	level, err := s.store.Get(ctx, workout.UserID, workout.Zone)
	if err != nil {
		return nil, fmt.Errorf("get progression level: %w", err)
	}

	if err := s.workouts.RecordOutcome(ctx, workoutID, outcome.CompletionPct, outcome.RPE); err != nil {
		return nil, fmt.Errorf("record outcome: %w", err)
	}

	delta := CalculateLevelAdjustment(outcome.CompletionPct, outcome.RPE, workout.Level, level.Level)
	if delta != 0 {
		reason := fmt.Sprintf("outcome: completed %.0f%% at rpe %d", outcome.CompletionPct, outcome.RPE)
		level, err = s.store.Update(ctx, workout.UserID, workout.Zone, delta, reason, UpdateRefs{
			WorkoutID: &workoutID,
		})
		if err != nil {
			return nil, fmt.Errorf("update progression level: %w", err)
		}
		s.metrics.CounterProgressionUpdates.Inc()
	}

	if err := s.store.IncrementWorkoutCount(ctx, workout.UserID, workout.Zone, workout.Date); err != nil {
		// level already moved, count drift is acceptable here
		log.Errorf("increment workout count for [%s/%s]: %s", workout.UserID, workout.Zone, err)
	}

	return level, nil
}

// Levels returns all progression levels of a user.
func (s *Service) Levels(ctx context.Context, userID string) ([]ProgressionLevel, error) {
	return s.store.ListForUser(ctx, userID)
}

// History returns the newest level changes for a (user, zone).
func (s *Service) History(ctx context.Context, userID string, zone zones.Zone, limit int) ([]HistoryEntry, error) {
	return s.store.History(ctx, userID, zone, limit)
}
