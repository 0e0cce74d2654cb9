package ftp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	latestCacheSize       = 1024 * 1024 // 1MB, entries are tiny
	latestCacheExpirySecs = 15 * 60
)

type Repo struct {
	db          *pgxpool.Pool
	latestCache *freecache.Cache
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:          db,
		latestCache: freecache.NewCache(latestCacheSize),
	}
}

// Add appends a new FTP entry. History is append-only; nothing is updated.
func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ftp.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", entry.UserID))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO ftp_history
				(user_id, ftp, lthr, effective_date, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		entry.UserID, entry.FTP, entry.LTHR, entry.EffectiveDate, entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	if err := rows.Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	// a fresh entry may supersede the cached one
	r.latestCache.Del(latestCacheKey(entry.UserID))

	return &entry, nil
}

// Latest returns the FTP entry in effect at asOf: the one with the highest
// effective date not after asOf. ErrNoFTP when the user has no history yet.
func (r *Repo) Latest(ctx context.Context, userID string, asOf time.Time) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ftp.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	cacheKey := latestCacheKey(userID)
	if cachedBytes, cacheErr := r.latestCache.Get(cacheKey); cacheErr == nil {
		var cached Entry
		if err := json.Unmarshal(cachedBytes, &cached); err == nil && !cached.EffectiveDate.After(asOf) {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return &cached, nil
		}
	}

	var entry Entry
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, ftp, lthr, effective_date, created_at
			FROM ftp_history
				WHERE user_id = $1
				AND effective_date <= $2
			ORDER BY effective_date DESC
			LIMIT 1;`,
		userID, asOf,
	).Scan(&entry.ID, &entry.UserID, &entry.FTP, &entry.LTHR, &entry.EffectiveDate, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoFTP
		}
		return nil, fmt.Errorf("query row: %w", err)
	}

	if entryBytes, marshalErr := json.Marshal(entry); marshalErr == nil {
		if cacheErr := r.latestCache.Set(cacheKey, entryBytes, latestCacheExpirySecs); cacheErr != nil {
			log.Tracef("failed to cache latest ftp for [%s]: %s", userID, cacheErr)
		}
	}

	return &entry, nil
}

func latestCacheKey(userID string) []byte {
	return []byte("ftp::latest::" + userID)
}
