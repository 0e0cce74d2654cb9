package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/internal/zones"
	"github.com/velolab/paceline/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// how many times a conflicting level update is retried before giving up
const updateMaxAttempts = 3

type Store struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db:  db,
		now: time.Now,
	}
}

// Get returns the user's progression level for a zone, lazily creating it at
// DefaultLevel on first read. The created row is persisted, so two
// concurrent first reads still end up with exactly one row.
func (s *Store) Get(ctx context.Context, userID string, zone zones.Zone) (_ *ProgressionLevel, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.progression.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("zone", zone.String()))

	if !zone.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}

	level, err := s.selectLevel(ctx, s.db, userID, zone)
	if err == nil {
		return level, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// first read for this (user, zone): create the row, tolerating a
	// concurrent creation winning the race
	if _, err := s.db.Exec(
		ctx,
		`INSERT INTO progression_level (user_id, zone, level, workouts_completed)
			VALUES ($1, $2, $3, 0)
			ON CONFLICT (user_id, zone) DO NOTHING;`,
		userID, zone.String(), DefaultLevel,
	); err != nil {
		return nil, fmt.Errorf("lazy create progression level: %w", err)
	}

	return s.selectLevel(ctx, s.db, userID, zone)
}

// ListForUser returns all progression levels the user has so far.
func (s *Store) ListForUser(ctx context.Context, userID string) (_ []ProgressionLevel, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.progression.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := s.db.Query(
		ctx,
		`
			SELECT user_id, zone, level, workouts_completed, last_change, last_change_at
			FROM progression_level
			WHERE user_id = $1
			ORDER BY zone;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	levels := make([]ProgressionLevel, 0)
	for rows.Next() {
		var l ProgressionLevel
		if err := rows.Scan(
			&l.UserID, &l.Zone, &l.Level, &l.WorkoutsCompleted, &l.LastChange, &l.LastChangeAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		levels = append(levels, l)
	}

	return levels, nil
}

// Update applies a delta to the user's level in a zone, clamped to
// [MinLevel, MaxLevel], and appends the matching history entry in the same
// transaction. Concurrent updates to the same row are serialized by a row
// lock; serialization failures are retried.
func (s *Store) Update(
	ctx context.Context,
	userID string,
	zone zones.Zone,
	delta float64,
	reason string,
	refs UpdateRefs,
) (_ *ProgressionLevel, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.progression.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("zone", zone.String()))
	span.SetAttributes(attribute.Float64("delta", delta))

	if !zone.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}

	// make sure the row exists before locking it
	if _, err := s.Get(ctx, userID, zone); err != nil {
		return nil, err
	}

	var updated *ProgressionLevel
	for attempt := 1; attempt <= updateMaxAttempts; attempt++ {
		updated, err = s.updateInTx(ctx, userID, zone, delta, reason, refs)
		if err == nil {
			return updated, nil
		}
		if !isRetryableTxError(err) {
			return nil, err
		}
		log.Warnf("progression update conflict for [%s/%s] (attempt %d/%d): %s",
			userID, zone, attempt, updateMaxAttempts, err)
	}

	return nil, fmt.Errorf("progression update kept conflicting: %w", err)
}

func (s *Store) updateInTx(
	ctx context.Context,
	userID string,
	zone zones.Zone,
	delta float64,
	reason string,
	refs UpdateRefs,
) (*ProgressionLevel, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var oldLevel float64
	if err := tx.QueryRow(
		ctx,
		`SELECT level FROM progression_level WHERE user_id = $1 AND zone = $2 FOR UPDATE;`,
		userID, zone.String(),
	).Scan(&oldLevel); err != nil {
		return nil, fmt.Errorf("lock progression level: %w", err)
	}

	newLevel := pkg.Clamp(oldLevel+delta, MinLevel, MaxLevel)
	changedAt := s.now().UTC()

	if _, err := tx.Exec(
		ctx,
		`
			UPDATE progression_level SET
				level = $1,
				last_change = $2,
				last_change_at = $3
			WHERE user_id = $4 AND zone = $5;`,
		newLevel, newLevel-oldLevel, changedAt, userID, zone.String(),
	); err != nil {
		return nil, fmt.Errorf("update progression level: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`
			INSERT INTO progression_history
				(user_id, zone, old_level, new_level, delta, reason, related_ride_id, related_workout_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		userID, zone.String(), oldLevel, newLevel, newLevel-oldLevel, reason,
		refs.RideID, refs.WorkoutID, changedAt,
	); err != nil {
		return nil, fmt.Errorf("insert progression history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return s.selectLevel(ctx, s.db, userID, zone)
}

// SeedLevel creates the (user, zone) row at the given initial level, with a
// history entry, but only when no row exists yet. Reports whether it seeded.
func (s *Store) SeedLevel(
	ctx context.Context,
	userID string,
	zone zones.Zone,
	level float64,
	reason string,
) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.progression.seedlevel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("zone", zone.String()))

	if !zone.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	level = pkg.Clamp(level, MinLevel, MaxLevel)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(
		ctx,
		`INSERT INTO progression_level (user_id, zone, level, workouts_completed)
			VALUES ($1, $2, $3, 0)
			ON CONFLICT (user_id, zone) DO NOTHING;`,
		userID, zone.String(), level,
	)
	if err != nil {
		return false, fmt.Errorf("insert progression level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// already exists, seeding never overwrites
		return false, nil
	}

	if _, err := tx.Exec(
		ctx,
		`
			INSERT INTO progression_history
				(user_id, zone, old_level, new_level, delta, reason, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		userID, zone.String(), level, level, 0.0, reason, s.now().UTC(),
	); err != nil {
		return false, fmt.Errorf("insert progression history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit tx: %w", err)
	}

	return true, nil
}

// IncrementWorkoutCount bumps the completed-workouts counter of a zone after
// an outcome was applied.
func (s *Store) IncrementWorkoutCount(ctx context.Context, userID string, zone zones.Zone, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.progression.incrementworkoutcount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("zone", zone.String()))

	if !zone.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}

	tag, err := s.db.Exec(
		ctx,
		`UPDATE progression_level SET workouts_completed = workouts_completed + 1
			WHERE user_id = $1 AND zone = $2;`,
		userID, zone.String(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("progression level for [%s/%s] not found", userID, zone)
	}
	return nil
}

// History returns the newest history entries for a (user, zone).
func (s *Store) History(ctx context.Context, userID string, zone zones.Zone, limit int) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.progression.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("zone", zone.String()))

	if !zone.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	if limit < 1 {
		limit = 50
	}

	rows, err := s.db.Query(
		ctx,
		`
			SELECT id, user_id, zone, old_level, new_level, delta, reason,
				related_ride_id, related_workout_id, created_at
			FROM progression_history
				WHERE user_id = $1 AND zone = $2
			ORDER BY created_at DESC
			LIMIT $3;`,
		userID, zone.String(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Zone, &e.OldLevel, &e.NewLevel, &e.Delta, &e.Reason,
			&e.RelatedRideID, &e.RelatedWorkoutID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (s *Store) selectLevel(ctx context.Context, q queryRower, userID string, zone zones.Zone) (*ProgressionLevel, error) {
	var l ProgressionLevel
	err := q.QueryRow(
		ctx,
		`
			SELECT user_id, zone, level, workouts_completed, last_change, last_change_at
			FROM progression_level
			WHERE user_id = $1 AND zone = $2;`,
		userID, zone.String(),
	).Scan(&l.UserID, &l.Zone, &l.Level, &l.WorkoutsCompleted, &l.LastChange, &l.LastChangeAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// serialization failure / deadlock detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
