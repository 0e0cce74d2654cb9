package adaptation

import (
	"context"
	"errors"
	"fmt"

	"github.com/velolab/paceline/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type SettingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepo(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get returns the user's adaptation settings, falling back to the defaults
// when no row was ever stored. Missing settings are not an error.
func (r *SettingsRepo) Get(ctx context.Context, userID string) (_ Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adaptationsettings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	var s Settings
	err = r.db.QueryRow(
		ctx,
		`
			SELECT user_id, adaptive_enabled, auto_apply, sensitivity,
				tsb_fatigued_threshold, tsb_fresh_threshold, min_days_before_workout,
				notify_on_adaptation
			FROM adaptation_settings
			WHERE user_id = $1;`,
		userID,
	).Scan(
		&s.UserID, &s.AdaptiveEnabled, &s.AutoApply, &s.Sensitivity,
		&s.TSBFatiguedThreshold, &s.TSBFreshThreshold, &s.MinDaysBeforeWorkout,
		&s.NotifyOnAdaptation,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultSettings(userID), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("query settings: %w", err)
	}

	return s, nil
}

// Upsert stores the user's settings, overwriting the previous row.
func (r *SettingsRepo) Upsert(ctx context.Context, s Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adaptationsettings.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", s.UserID))

	if err := s.Validate(); err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO adaptation_settings
				(user_id, adaptive_enabled, auto_apply, sensitivity,
				tsb_fatigued_threshold, tsb_fresh_threshold, min_days_before_workout,
				notify_on_adaptation)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_id) DO UPDATE SET
				adaptive_enabled = EXCLUDED.adaptive_enabled,
				auto_apply = EXCLUDED.auto_apply,
				sensitivity = EXCLUDED.sensitivity,
				tsb_fatigued_threshold = EXCLUDED.tsb_fatigued_threshold,
				tsb_fresh_threshold = EXCLUDED.tsb_fresh_threshold,
				min_days_before_workout = EXCLUDED.min_days_before_workout,
				notify_on_adaptation = EXCLUDED.notify_on_adaptation;`,
		s.UserID, s.AdaptiveEnabled, s.AutoApply, s.Sensitivity.String(),
		s.TSBFatiguedThreshold, s.TSBFreshThreshold, s.MinDaysBeforeWorkout,
		s.NotifyOnAdaptation,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	return nil
}

// ListEnabledUserIDs returns the IDs of all users with adaptive training
// switched on, for the nightly batch.
func (r *SettingsRepo) ListEnabledUserIDs(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adaptationsettings.listenabled")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id FROM adaptation_settings WHERE adaptive_enabled ORDER BY user_id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	userIDs := make([]string, 0)
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	return userIDs, nil
}
