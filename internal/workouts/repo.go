package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, date, zone, level, is_rest_day,
				completion_pct, rpe, was_adapted, adaptation_reason
			FROM workout
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(found) != 1 {
		return nil, ErrWorkoutNotFound
	}

	return &found[0], nil
}

// ListAdaptable returns the user's workouts in [from, to] that the batch
// runner may still touch: not rest days, not already adapted, oldest first.
func (r *Repo) ListAdaptable(ctx context.Context, userID string, from, to time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listadaptable")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, date, zone, level, is_rest_day,
				completion_pct, rpe, was_adapted, adaptation_reason
			FROM workout
				WHERE user_id = $1
				AND date >= $2
				AND date <= $3
				AND is_rest_day IS FALSE
				AND was_adapted IS FALSE
			ORDER BY date ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2workouts(rows)
}

// ApplyAdaptation marks the workout adapted. A nil newLevel leaves the
// planned level untouched (skip decisions).
func (r *Repo) ApplyAdaptation(ctx context.Context, id int64, newLevel *float64, reason string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.applyadaptation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE workout SET
				level = COALESCE($1, level),
				was_adapted = TRUE,
				adaptation_reason = $2
			WHERE id = $3;`,
		newLevel, reason, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// RecordOutcome stores the athlete's completion percentage and RPE for a
// finished workout.
func (r *Repo) RecordOutcome(ctx context.Context, id int64, completionPct float64, rpe int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recordoutcome")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET completion_pct = $1, rpe = $2 WHERE id = $3;`,
		completionPct, rpe, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// RecentMetrics aggregates the user's workout outcomes in [from, to].
// Workouts with a recorded outcome count as completed when they reached at
// least half of the plan; past workouts without any outcome count as missed.
func (r *Repo) RecentMetrics(ctx context.Context, userID string, from, to time.Time) (_ *RecentMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recentmetrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	var (
		completionRate *float64
		avgRPE         *float64
		completed      int
		missed         int
	)
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				AVG(COALESCE(completion_pct, 0)),
				AVG(rpe),
				COUNT(*) FILTER (WHERE completion_pct >= 50),
				COUNT(*) FILTER (WHERE completion_pct IS NULL OR completion_pct < 50)
			FROM workout
				WHERE user_id = $1
				AND date >= $2
				AND date <= $3
				AND is_rest_day IS FALSE;`,
		userID, from, to,
	).Scan(&completionRate, &avgRPE, &completed, &missed)
	if err != nil {
		return nil, fmt.Errorf("query row: %w", err)
	}

	metrics := &RecentMetrics{
		Completed: completed,
		Missed:    missed,
		HasData:   completed+missed > 0,
	}
	if completionRate != nil {
		metrics.CompletionRate = *completionRate
	}
	if avgRPE != nil {
		metrics.AvgRPE = *avgRPE
	}

	return metrics, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	result := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Date, &w.Zone, &w.Level, &w.IsRestDay,
			&w.CompletionPct, &w.RPE, &w.WasAdapted, &w.AdaptationReason,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result = append(result, w)
	}
	return result, nil
}
