package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/config"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls    atomic.Int64
	deadline atomic.Bool
}

func (r *countingRunner) Run(ctx context.Context) usecase.RunResult {
	r.calls.Add(1)
	_, hasDeadline := ctx.Deadline()
	r.deadline.Store(hasDeadline)
	return usecase.RunResult{RunID: "r-1", State: usecase.StateSucceeded}
}

func TestRunJob_BoundsEachRun(t *testing.T) {
	runner := &countingRunner{}
	job := runJob(context.Background(), runner, time.Minute, logging.NewNop())

	job()
	job()

	require.EqualValues(t, 2, runner.calls.Load())
	require.True(t, runner.deadline.Load(), "each run must carry the scheduler timeout")
}

func TestRunJob_SkipsAfterShutdown(t *testing.T) {
	runner := &countingRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runJob(ctx, runner, time.Minute, logging.NewNop())()

	require.Zero(t, runner.calls.Load())
}

func TestNewScheduler(t *testing.T) {
	scheduler, err := newScheduler(config.Config{SchedulerTimezone: "Europe/London"}, logging.NewNop())
	require.NoError(t, err)

	_, err = scheduler.AddFunc("*/2 * * * *", func() {})
	require.NoError(t, err)

	_, err = newScheduler(config.Config{SchedulerTimezone: "Mars/Olympus"}, logging.NewNop())
	require.Error(t, err)
}
