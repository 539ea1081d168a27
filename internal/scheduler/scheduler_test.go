package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SweepsHoldsAndReconcilesReferrals(t *testing.T) {
	sweeper := mocks.NewMockHoldSweeper(t)
	reconciler := mocks.NewMockReferralReconciler(t)
	log := newTestLogger(t)

	s := New(sweeper, reconciler, 50*time.Millisecond, log)

	sweeper.EXPECT().SweepExpiredHolds(mock.Anything).Return(2, nil)
	reconciler.EXPECT().Reconcile(mock.Anything).Return(1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
	assert.GreaterOrEqual(t, len(reconciler.Calls), 1)
}

func TestScheduler_Tick_SweepErrorDoesNotStopReconcile(t *testing.T) {
	sweeper := mocks.NewMockHoldSweeper(t)
	reconciler := mocks.NewMockReferralReconciler(t)
	log := newTestLogger(t)

	s := New(sweeper, reconciler, 50*time.Millisecond, log)

	sweeper.EXPECT().SweepExpiredHolds(mock.Anything).Return(0, errors.New("db error"))
	reconciler.EXPECT().Reconcile(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reconciler.Calls), 1)
}

func TestScheduler_Tick_HandlesReconcileError(t *testing.T) {
	sweeper := mocks.NewMockHoldSweeper(t)
	reconciler := mocks.NewMockReferralReconciler(t)
	log := newTestLogger(t)

	s := New(sweeper, reconciler, 50*time.Millisecond, log)

	sweeper.EXPECT().SweepExpiredHolds(mock.Anything).Return(0, nil)
	reconciler.EXPECT().Reconcile(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reconciler.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockHoldSweeper(t)
	reconciler := mocks.NewMockReferralReconciler(t)
	log := newTestLogger(t)

	s := New(sweeper, reconciler, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sweeper := mocks.NewMockHoldSweeper(t)
	reconciler := mocks.NewMockReferralReconciler(t)
	log := newTestLogger(t)

	s := New(sweeper, reconciler, 30*time.Millisecond, log)

	sweeper.EXPECT().SweepExpiredHolds(mock.Anything).Return(0, nil).Times(3)
	reconciler.EXPECT().Reconcile(mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 3)
}
