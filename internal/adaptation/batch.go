package adaptation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/velolab/paceline/internal/telemetry/tracing"
	"github.com/velolab/paceline/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// how far ahead the batch looks for workouts to adapt
const batchHorizonDays = 14

// RunBatch evaluates every adaptable workout of one user in the next two
// weeks, oldest date first. Each decision is fully applied before the next
// workout is evaluated, so an auto-applied change is visible downstream.
func (s *Service) RunBatch(ctx context.Context, userID string) (_ []DecisionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "adaptation.runbatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	started := s.now()
	defer func() {
		s.metrics.HistogramBatchDuration.Observe(time.Since(started).Seconds())
	}()

	// window starts at midnight so a workout dated today is still in scope
	from := pkg.DateOnly(started)
	to := from.AddDate(0, 0, batchHorizonDays)
	upcoming, err := s.workouts.ListAdaptable(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list adaptable workouts: %w", err)
	}

	decisions := make([]DecisionRecord, 0, len(upcoming))
	for _, workout := range upcoming {
		// re-read, earlier applies in this run may have touched state
		rec, err := s.EvaluateWorkout(ctx, workout.ID)
		if err != nil {
			return nil, fmt.Errorf("evaluate workout %d: %w", workout.ID, err)
		}
		decisions = append(decisions, *rec)
	}

	s.metrics.CounterBatchRuns.Inc()
	log.Debugf("batch for [%s]: %d workouts evaluated", userID, len(decisions))

	return decisions, nil
}

// RunBatchForAllEnabled runs the batch for every user with adaptive training
// on. Users run in parallel; a failing user does not stop the others.
func (s *Service) RunBatchForAllEnabled(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "adaptation.runbatchforallenabled")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userIDs, err := s.settings.ListEnabledUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("list enabled users: %w", err)
	}

	log.Debugf("running adaptation batch for %d users", len(userIDs))

	var wg sync.WaitGroup
	for _, userID := range userIDs {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			if _, err := s.RunBatch(ctx, userID); err != nil {
				log.Errorf("adaptation batch for [%s]: %s", userID, err)
			}
		}(userID)
	}
	wg.Wait()

	return nil
}
