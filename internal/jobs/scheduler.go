package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"brandhub/api/internal/service"
)

// Scheduler keeps the category-stats cache warm so the public stats endpoint
// rarely has to touch the database.
type Scheduler struct {
	cron    *cron.Cron
	catalog *service.CatalogService
	log     zerolog.Logger
}

func NewScheduler(catalog *service.CatalogService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		catalog: catalog,
		log:     log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 */10 * * * *", s.refreshStats); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for a running job to finish, up to a short grace period.
func (s *Scheduler) Stop() {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) refreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.catalog.RefreshCategoryStats(ctx); err != nil {
		s.log.Error().Err(err).Msg("refresh category stats failed")
	}
}
