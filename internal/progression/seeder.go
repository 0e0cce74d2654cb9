package progression

//go:generate mockgen -source=$GOFILE -destination=seeder_mocks_test.go -package=progression_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velolab/paceline/internal/ftp"
	"github.com/velolab/paceline/internal/rides"
	"github.com/velolab/paceline/internal/telemetry/metrics"
	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/internal/zones"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// how far back the seeder looks for rides with power data
const seedLookbackDays = 90

type ridesLister interface {
	ListWithPower(ctx context.Context, userID string, since time.Time) ([]rides.Ride, error)
}

type ftpSource interface {
	Latest(ctx context.Context, userID string, asOf time.Time) (*ftp.Entry, error)
}

type seedStore interface {
	SeedLevel(ctx context.Context, userID string, zone zones.Zone, level float64, reason string) (bool, error)
}

// Seeder derives initial progression levels from a user's ride history, so a
// new user does not start every zone at the flat default.
type Seeder struct {
	rides   ridesLister
	ftp     ftpSource
	store   seedStore
	metrics *metrics.Manager
	now     func() time.Time
}

func NewSeeder(ridesRepo ridesLister, ftpRepo ftpSource, store seedStore, metricsManager *metrics.Manager) *Seeder {
	return &Seeder{
		rides:   ridesRepo,
		ftp:     ftpRepo,
		store:   store,
		metrics: metricsManager,
		now:     time.Now,
	}
}

// SeedResult says which zones got seeded, and at what level.
type SeedResult struct {
	Seeded map[zones.Zone]float64 `json:"seeded"`
	// RidesUsed is how many rides with power data fed the estimate.
	RidesUsed int `json:"ridesUsed"`
}

// Seed estimates a starting level per zone from the user's recent rides and
// writes it for every zone that has no level yet. Zones the user never rides
// in, and users without an FTP or without rides, are simply left for the
// lazy default. Existing levels are never overwritten.
func (s *Seeder) Seed(ctx context.Context, userID string) (_ *SeedResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	result := &SeedResult{Seeded: map[zones.Zone]float64{}}

	ftpEntry, err := s.ftp.Latest(ctx, userID, s.now())
	if err != nil {
		if errors.Is(err, ftp.ErrNoFTP) {
			log.Debugf("seed [%s]: no ftp set, nothing to estimate from", userID)
			return result, nil
		}
		return nil, fmt.Errorf("get latest ftp: %w", err)
	}

	since := s.now().AddDate(0, 0, -seedLookbackDays)
	userRides, err := s.rides.ListWithPower(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}
	if len(userRides) == 0 {
		log.Debugf("seed [%s]: no rides with power data since %s", userID, since.Format(time.DateOnly))
		return result, nil
	}

	rpeSums := map[zones.Zone]float64{}
	rpeCounts := map[zones.Zone]int{}
	for _, ride := range userRides {
		zone := zones.Classify(ride.AvgWatts, ride.NormalizedPower, ftpEntry.FTP, ride.DurationSeconds)
		if zone == zones.ZoneNone {
			continue
		}
		rpe := zones.EstimateRPE(ride.AvgWatts, ride.NormalizedPower, ftpEntry.FTP, ride.DurationSeconds, ride.TSS)
		rpeSums[zone] += float64(rpe)
		rpeCounts[zone]++
		result.RidesUsed++
	}

	for zone, count := range rpeCounts {
		avgRPE := rpeSums[zone] / float64(count)
		level := zones.SeedLevelForAvgRPE(avgRPE)
		seeded, err := s.store.SeedLevel(ctx, userID, zone, level,
			fmt.Sprintf("seeded from %d rides, avg rpe %.1f", count, avgRPE))
		if err != nil {
			return nil, fmt.Errorf("seed level for zone %s: %w", zone, err)
		}
		if seeded {
			result.Seeded[zone] = level
			s.metrics.CounterProgressionSeeds.Inc()
		}
	}

	log.Debugf("seed [%s]: seeded %d zones from %d rides", userID, len(result.Seeded), result.RidesUsed)

	return result, nil
}
