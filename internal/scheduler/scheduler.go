package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type holdSweeper interface {
	SweepExpiredHolds(ctx context.Context) (int, error)
}

type referralReconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

// Scheduler периодически освобождает истекшие hold и добирает реферальные триггеры.
// Корректность от него не зависит, только свежесть листингов.
type Scheduler struct {
	holds     holdSweeper
	referrals referralReconciler
	interval  time.Duration
	logger    logger.Logger
}

func New(
	holds holdSweeper,
	referrals referralReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		holds:     holds,
		referrals: referrals,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	released, err := s.holds.SweepExpiredHolds(ctx)
	if err != nil {
		s.logger.Error("failed to release expired holds",
			logger.String("error", err.Error()),
		)
	} else if released > 0 {
		s.logger.Debug("expired holds swept", logger.Int("count", released))
	}

	advanced, err := s.referrals.Reconcile(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile referrals",
			logger.String("error", err.Error()),
		)
		return
	}
	if advanced > 0 {
		s.logger.Debug("referrals advanced", logger.Int("count", advanced))
	}
}
