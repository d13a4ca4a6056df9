package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/vburkalo/city-temperature-api/internal/domain"
	"github.com/vburkalo/city-temperature-api/internal/service"
	"github.com/vburkalo/city-temperature-api/pkg/logger"
)

// Scheduler runs the temperature refresh workflow on a fixed interval, so
// readings accumulate even when nobody calls the refresh endpoint.
type Scheduler struct {
	scheduler    *gocron.Scheduler
	temperatures service.Temperatures
	interval     time.Duration
}

func New(temperatures service.Temperatures, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler:    gocron.NewScheduler(time.UTC),
		temperatures: temperatures,
		interval:     interval,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		summary, err := s.temperatures.Refresh(ctx)
		if err != nil {
			// An empty city table is normal on a fresh install, not a fault.
			if errors.Is(err, domain.ErrNoCities) {
				logger.Debug("scheduled refresh skipped, no cities configured")
				return
			}
			logger.Error("scheduled temperature refresh failed", zap.Error(err))
			return
		}

		logger.Info("scheduled temperature refresh completed",
			zap.Int("inserted", summary.Inserted),
			zap.Int("failed", summary.Failed),
			zap.Int("skipped", summary.Skipped),
		)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
