package adaptation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDecisionNotFound = errors.New("adaptation decision not found")
	ErrAlreadyResponded = errors.New("adaptation decision already responded to")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, rec *DecisionRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adaptation.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", rec.UserID))
	span.SetAttributes(attribute.String("decision_id", rec.ID))

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO adaptation_decision
				(id, user_id, workout_id, zone, old_level, should_adapt, decision_type,
				new_level, delta, reason, confidence, tsb, completion_rate, avg_rpe,
				zone_progression_level, acceptance, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`,
		rec.ID, rec.UserID, rec.WorkoutID, rec.Zone.String(), rec.OldLevel,
		rec.Decision.ShouldAdapt, rec.Decision.Type.String(), rec.Decision.NewLevel,
		rec.Decision.Delta, rec.Decision.Reason, rec.Decision.Confidence,
		rec.Metrics.TSB, rec.Metrics.CompletionRate, rec.Metrics.AvgRPE,
		rec.Metrics.ZoneProgressionLevel, string(rec.Acceptance), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *DecisionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adaptation.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("decision_id", id))

	rows, err := r.db.Query(ctx, decisionSelect+` WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	records, err := rows2decisions(rows)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, ErrDecisionNotFound
	}

	return &records[0], nil
}

// ListForUser returns the user's newest decisions, the audit trail behind
// what the engine did (or declined to do).
func (r *Repo) ListForUser(ctx context.Context, userID string, limit int) (_ []DecisionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adaptation.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	if limit < 1 {
		limit = 50
	}

	rows, err := r.db.Query(
		ctx,
		decisionSelect+` WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return rows2decisions(rows)
}

// MarkAccepted flips a pending decision to accepted. A decision that was
// already responded to stays as it is.
func (r *Repo) MarkAccepted(ctx context.Context, id string, at time.Time, feedback *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adaptation.markaccepted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("decision_id", id))

	return r.respond(ctx, id, AcceptanceAccepted, at, feedback)
}

// MarkRejected flips a pending decision to rejected.
func (r *Repo) MarkRejected(ctx context.Context, id string, at time.Time, feedback *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.adaptation.markrejected")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("decision_id", id))

	return r.respond(ctx, id, AcceptanceRejected, at, feedback)
}

func (r *Repo) respond(ctx context.Context, id string, to Acceptance, at time.Time, feedback *string) error {
	var stampColumn string
	switch to {
	case AcceptanceAccepted:
		stampColumn = "accepted_at"
	case AcceptanceRejected:
		stampColumn = "rejected_at"
	default:
		return fmt.Errorf("cannot respond with acceptance %q", to)
	}

	tag, err := r.db.Exec(
		ctx,
		fmt.Sprintf(`
			UPDATE adaptation_decision SET
				acceptance = $1,
				%s = $2,
				user_feedback = COALESCE($3, user_feedback)
			WHERE id = $4 AND acceptance = 'pending';`, stampColumn),
		string(to), at, feedback, id,
	)
	if err != nil {
		return fmt.Errorf("update decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// either the id is unknown or the decision was responded to before
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return getErr
		}
		return ErrAlreadyResponded
	}

	return nil
}

const decisionSelect = `
	SELECT
		id, user_id, workout_id, zone, old_level, should_adapt, decision_type,
		new_level, delta, reason, confidence, tsb, completion_rate, avg_rpe,
		zone_progression_level, acceptance, user_feedback, created_at,
		accepted_at, rejected_at
	FROM adaptation_decision`

func rows2decisions(rows pgx.Rows) ([]DecisionRecord, error) {
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	records := make([]DecisionRecord, 0)
	for rows.Next() {
		var rec DecisionRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.WorkoutID, &rec.Zone, &rec.OldLevel,
			&rec.Decision.ShouldAdapt, &rec.Decision.Type, &rec.Decision.NewLevel,
			&rec.Decision.Delta, &rec.Decision.Reason, &rec.Decision.Confidence,
			&rec.Metrics.TSB, &rec.Metrics.CompletionRate, &rec.Metrics.AvgRPE,
			&rec.Metrics.ZoneProgressionLevel, &rec.Acceptance, &rec.UserFeedback,
			&rec.CreatedAt, &rec.AcceptedAt, &rec.RejectedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
