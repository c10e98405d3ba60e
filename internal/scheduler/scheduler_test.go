package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsletter_sync/internal/domain"
)

type countingSyncer struct {
	runs atomic.Int32
}

func (c *countingSyncer) Sync(ctx context.Context) (*domain.SyncStats, error) {
	c.runs.Add(1)
	return &domain.SyncStats{}, nil
}

func TestScheduler_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	syncer := &countingSyncer{}
	sched := NewScheduler(syncer, time.Hour, time.Minute, logger)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- sched.Start(ctx)
	}()

	// The first run fires before the first tick.
	assert.Eventually(t, func() bool {
		return syncer.runs.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
