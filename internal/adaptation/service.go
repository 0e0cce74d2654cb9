package adaptation

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=adaptation_test

import (
	"context"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/progression"
	"github.com/velolab/paceline/internal/telemetry/metrics"
	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/internal/trainingload"
	"github.com/velolab/paceline/internal/workouts"
	"github.com/velolab/paceline/internal/zones"
	"github.com/velolab/paceline/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// recent-performance metrics are computed over the trailing week
const recentMetricsWindowDays = 7

type workoutsRepo interface {
	Get(ctx context.Context, id int64) (*workouts.Workout, error)
	ListAdaptable(ctx context.Context, userID string, from, to time.Time) ([]workouts.Workout, error)
	ApplyAdaptation(ctx context.Context, id int64, newLevel *float64, reason string) error
	RecentMetrics(ctx context.Context, userID string, from, to time.Time) (*workouts.RecentMetrics, error)
}

type settingsRepo interface {
	Get(ctx context.Context, userID string) (Settings, error)
	ListEnabledUserIDs(ctx context.Context) ([]string, error)
}

type decisionsRepo interface {
	Add(ctx context.Context, rec *DecisionRecord) error
	Get(ctx context.Context, id string) (*DecisionRecord, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]DecisionRecord, error)
	MarkAccepted(ctx context.Context, id string, at time.Time, feedback *string) error
	MarkRejected(ctx context.Context, id string, at time.Time, feedback *string) error
}

type loadSnapshotter interface {
	Snapshot(ctx context.Context, userID string, asOf time.Time) (trainingload.Snapshot, error)
}

type progressionGetter interface {
	Get(ctx context.Context, userID string, zone zones.Zone) (*progression.ProgressionLevel, error)
}

// Service wraps the pure engine with everything it must not do itself:
// fetching the inputs, persisting the decision, and mutating the workout.
type Service struct {
	workouts    workoutsRepo
	settings    settingsRepo
	decisions   decisionsRepo
	load        loadSnapshotter
	progression progressionGetter
	metrics     *metrics.Manager
	now         func() time.Time
}

func NewService(
	workoutsRepo workoutsRepo,
	settingsRepo settingsRepo,
	decisionsRepo decisionsRepo,
	load loadSnapshotter,
	progressionStore progressionGetter,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		workouts:    workoutsRepo,
		settings:    settingsRepo,
		decisions:   decisionsRepo,
		load:        load,
		progression: progressionStore,
		metrics:     metricsManager,
		now:         time.Now,
	}
}

// EvaluateWorkout gathers the engine's inputs for one upcoming workout, runs
// the rule tree, and persists the resulting decision. With autoApply on, an
// adapt decision is accepted and applied to the workout right away;
// otherwise it stays pending for the user to respond to. A no_change
// decision is returned but not persisted.
func (s *Service) EvaluateWorkout(ctx context.Context, workoutID int64) (_ *DecisionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "adaptation.evaluateworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout_id", workoutID))

	workout, err := s.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}

	return s.evaluate(ctx, workout)
}

func (s *Service) evaluate(ctx context.Context, workout *workouts.Workout) (*DecisionRecord, error) {
	now := s.now()

	settings, err := s.settings.Get(ctx, workout.UserID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	loadSnapshot, err := s.load.Snapshot(ctx, workout.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("get training load snapshot: %w", err)
	}

	recentMetrics, err := s.workouts.RecentMetrics(
		ctx, workout.UserID, now.AddDate(0, 0, -recentMetricsWindowDays), now,
	)
	if err != nil {
		return nil, fmt.Errorf("get recent metrics: %w", err)
	}

	level, err := s.progression.Get(ctx, workout.UserID, workout.Zone)
	if err != nil {
		return nil, fmt.Errorf("get progression level: %w", err)
	}

	decision := Evaluate(EvaluateInput{
		Workout:       workout,
		DaysUntil:     pkg.CalendarDaysBetween(now, workout.Date),
		Settings:      settings,
		Load:          loadSnapshot,
		RecentMetrics: *recentMetrics,
		Progression:   level.Level,
	})
	s.metrics.CounterDecisions.WithLabelValues(decision.Type.String()).Inc()

	rec := &DecisionRecord{
		ID:        uuid.NewString(),
		UserID:    workout.UserID,
		WorkoutID: workout.ID,
		Zone:      workout.Zone,
		OldLevel:  workout.Level,
		Decision:  decision,
		Metrics: MetricsSnapshot{
			TSB:                  loadSnapshot.TSB,
			CompletionRate:       recentMetrics.CompletionRate,
			AvgRPE:               recentMetrics.AvgRPE,
			ZoneProgressionLevel: level.Level,
		},
		Acceptance: AcceptancePending,
		CreatedAt:  now,
	}

	if !decision.ShouldAdapt {
		return rec, nil
	}

	if err := s.decisions.Add(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist decision: %w", err)
	}

	if settings.AutoApply {
		if err := s.accept(ctx, rec, nil); err != nil {
			return nil, fmt.Errorf("auto apply decision %s: %w", rec.ID, err)
		}
		log.Debugf("decision %s auto-applied to workout %d: %s", rec.ID, workout.ID, decision.Reason)
	}

	return rec, nil
}

// Respond resolves a pending decision: accepting mutates the workout the
// same way autoApply would have, rejecting only stamps the record. A second
// response to the same decision is an error.
func (s *Service) Respond(ctx context.Context, decisionID string, accept bool, feedback *string) (_ *DecisionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "adaptation.respond")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("decision_id", decisionID))
	span.SetAttributes(attribute.Bool("accept", accept))

	rec, err := s.decisions.Get(ctx, decisionID)
	if err != nil {
		return nil, err
	}
	if rec.Acceptance != AcceptancePending {
		return nil, fmt.Errorf("%w: %s is %s", ErrAlreadyResponded, decisionID, rec.Acceptance)
	}

	if accept {
		if err := s.accept(ctx, rec, feedback); err != nil {
			return nil, err
		}
	} else {
		if err := s.decisions.MarkRejected(ctx, rec.ID, s.now(), feedback); err != nil {
			return nil, fmt.Errorf("mark decision rejected: %w", err)
		}
	}

	return s.decisions.Get(ctx, decisionID)
}

// accept applies the decision's mutation to the workout, then flips the
// record to accepted. A skip keeps the level and only flags the workout.
func (s *Service) accept(ctx context.Context, rec *DecisionRecord, feedback *string) error {
	var newLevel *float64
	if rec.Decision.Type != TypeSkip {
		target := rec.Decision.NewLevel
		if target == nil {
			workout, err := s.workouts.Get(ctx, rec.WorkoutID)
			if err != nil {
				return fmt.Errorf("get workout: %w", err)
			}
			adjusted := pkg.Clamp(workout.Level+rec.Decision.Delta, progression.MinLevel, progression.MaxLevel)
			target = &adjusted
		}
		newLevel = target
	}

	if err := s.workouts.ApplyAdaptation(ctx, rec.WorkoutID, newLevel, rec.Decision.Reason); err != nil {
		return fmt.Errorf("apply adaptation to workout: %w", err)
	}
	if err := s.decisions.MarkAccepted(ctx, rec.ID, s.now(), feedback); err != nil {
		return fmt.Errorf("mark decision accepted: %w", err)
	}
	s.metrics.CounterAdaptationsApplied.Inc()

	return nil
}

// Decisions returns the user's newest persisted decisions.
func (s *Service) Decisions(ctx context.Context, userID string, limit int) ([]DecisionRecord, error) {
	return s.decisions.ListForUser(ctx, userID, limit)
}
