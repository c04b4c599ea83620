// Package scheduler runs the polling loop that fires due scheduled
// notifications.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"pulse/config"
	"pulse/internal/delivery"
	"pulse/internal/usecase"

	"go.uber.org/fx"
)

const defaultPollInterval = time.Minute

// ServerParams holds dependencies for the scheduler loop
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Schedules usecase.ScheduleUsecase
}

type schedulerServer struct {
	logger       *slog.Logger
	schedules    usecase.ScheduleUsecase
	pollInterval time.Duration
	stop         chan struct{}
	done         chan struct{}
}

// NewServer creates the scheduler polling loop.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	pollInterval := defaultPollInterval
	if params.Cfg.Scheduler != nil && params.Cfg.Scheduler.PollInterval > 0 {
		pollInterval = params.Cfg.Scheduler.PollInterval
	}

	srv := &schedulerServer{
		logger:       params.Logger,
		schedules:    params.Schedules,
		pollInterval: pollInterval,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.shutdown,
	})

	return srv, nil
}

// Serve polls for due schedules until stopped. A failing sweep is logged and
// the loop keeps going; the next tick retries whatever is still pending.
func (s *schedulerServer) Serve(ctx context.Context) error {
	defer close(s.done)

	s.logger.Info("Starting schedule processor",
		slog.Duration("poll_interval", s.pollInterval),
	)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *schedulerServer) sweep(ctx context.Context) {
	processed, err := s.schedules.ProcessDueSchedules(ctx)
	if err != nil {
		s.logger.Error("Schedule sweep failed", slog.Any("error", err))

		return
	}

	if processed > 0 {
		s.logger.Info("Processed due schedules", slog.Int("count", processed))
	}
}

func (s *schedulerServer) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down schedule processor")
	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
