package adaptation

import (
	"context"
	"fmt"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

// Scheduler runs the nightly adaptation batch on a cron spec.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
}

func NewScheduler(service *Service) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		service: service,
	}
}

// Start registers the batch job and starts ticking. The spec uses the
// 6-field cron format with seconds, e.g. "0 0 3 * * *" for 3 AM daily.
func (s *Scheduler) Start(scheduleSpec string) error {
	err := s.cron.AddFunc(scheduleSpec, func() {
		log.Debugln("scheduled adaptation batch starting ...")
		if err := s.service.RunBatchForAllEnabled(context.Background()); err != nil {
			log.Errorf("scheduled adaptation batch: %s", err)
		}
	})
	if err != nil {
		return fmt.Errorf("add batch cron func for spec %q: %w", scheduleSpec, err)
	}

	s.cron.Start()
	log.Debugf("adaptation batch scheduled: %s", scheduleSpec)

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
