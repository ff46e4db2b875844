package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"CycleAnalyzer/internal/universe"
)

// Scheduler manages the periodic maintenance tasks.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New creates a new Scheduler.
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterUniverseReload schedules a periodic reload of the symbol-search
// universe, so an updated instrument database is picked up without a
// restart.
func (s *Scheduler) RegisterUniverseReload(spec string, store *universe.Store) error {
	if _, err := s.cron.AddFunc(spec, func() {
		if err := store.Reload(); err != nil {
			s.log.Warn().Err(err).Msg("universe reload failed")
			return
		}
	}); err != nil {
		return fmt.Errorf("register universe reload: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}
