package rides

import (
	"context"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/internal/trainingload"

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

// TSSSamples returns the per-day TSS sums for a user in [from, to],
// ordered by day. Days without rides produce no sample.
func (r *Repo) TSSSamples(ctx context.Context, userID string, from, to time.Time) (_ []trainingload.Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.tsssamples")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT date_trunc('day', started_at) AS day, SUM(tss) AS tss
			FROM ride
				WHERE user_id = $1
				AND started_at >= $2
				AND started_at <= $3
				AND tss > 0
			GROUP BY day
			ORDER BY day;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	samples := make([]trainingload.Sample, 0)
	for rows.Next() {
		var s trainingload.Sample
		if err := rows.Scan(&s.Date, &s.TSS); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, nil
}

// ListWithPower returns the user's rides since the given date that carry any
// power data, newest first. Used for seeding progression levels.
func (r *Repo) ListWithPower(ctx context.Context, userID string, since time.Time) (_ []Ride, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rides.listwithpower")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, started_at, avg_watts, normalized_power, duration_seconds, tss
			FROM ride
				WHERE user_id = $1
				AND started_at >= $2
				AND (avg_watts > 0 OR normalized_power > 0)
			ORDER BY started_at DESC;`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2rides(rows)
}

func (r *Repo) rows2rides(rows pgx.Rows) ([]Ride, error) {
	rides := make([]Ride, 0)
	for rows.Next() {
		var ride Ride
		if err := rows.Scan(
			&ride.ID, &ride.UserID, &ride.StartedAt,
			&ride.AvgWatts, &ride.NormalizedPower, &ride.DurationSeconds, &ride.TSS,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rides = append(rides, ride)
	}
	return rides, nil
}
