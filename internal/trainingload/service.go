package trainingload

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=trainingload_test

const historyWindowDays = 90

type tssSource interface {
	TSSSamples(ctx context.Context, userID string, from, to time.Time) ([]Sample, error)
}

// Service computes training load snapshots from the athlete's ride history,
// with a short-lived redis cache in front since the load balance for a given
// day only changes when new rides come in.
type Service struct {
	tssSource   tssSource
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewService(tssSource tssSource, redisClient *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{
		tssSource:   tssSource,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func (s *Service) Snapshot(ctx context.Context, userID string, asOf time.Time) (_ Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainingload.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	cacheKey := snapshotCacheKey(userID, asOf)
	if cached, ok := s.cachedSnapshot(ctx, cacheKey); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	from := asOf.AddDate(0, 0, -historyWindowDays)
	samples, err := s.tssSource.TSSSamples(ctx, userID, from, asOf)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get tss samples: %w", err)
	}

	snapshot := Calculate(samples, asOf)
	s.cacheSnapshot(ctx, cacheKey, snapshot)

	return snapshot, nil
}

func (s *Service) cachedSnapshot(ctx context.Context, key string) (Snapshot, bool) {
	if s.redisClient == nil {
		return Snapshot{}, false
	}

	cmd := s.redisClient.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if err != redis.Nil {
			log.Errorf("failed to get training load snapshot from redis for [%s]: %s", key, err)
		}
		return Snapshot{}, false
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(cmd.Val()), &snapshot); err != nil {
		log.Errorf("failed to unmarshal cached training load snapshot for [%s]: %s", key, err)
		return Snapshot{}, false
	}
	return snapshot, true
}

func (s *Service) cacheSnapshot(ctx context.Context, key string, snapshot Snapshot) {
	if s.redisClient == nil {
		return
	}

	snapshotBytes, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal training load snapshot for [%s]: %s", key, err)
		return
	}

	if err := s.redisClient.Set(ctx, key, snapshotBytes, s.cacheTTL).Err(); err != nil {
		log.Errorf("failed to cache training load snapshot for [%s]: %s", key, err)
	}
}

func snapshotCacheKey(userID string, asOf time.Time) string {
	return fmt.Sprintf("paceline::tl::%s::%s", userID, asOf.Format("2006-01-02"))
}
