package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/app"
	"github.com/riskibarqy/fpl-livesync/internal/config"
	"github.com/riskibarqy/fpl-livesync/internal/observability"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("scheduler stopped", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, observability.RoleScheduler, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}()

	service, err := app.NewLiveSync(cfg, logger, observability.NewRunMetrics(cfg, logger))
	if err != nil {
		return fmt.Errorf("build live sync: %w", err)
	}

	scheduler, err := newScheduler(cfg, logger)
	if err != nil {
		return err
	}
	if _, err := scheduler.AddFunc(cfg.SchedulerSpec, runJob(ctx, service, cfg.SchedulerRunTimeout, logger)); err != nil {
		return fmt.Errorf("schedule %q: %w", cfg.SchedulerSpec, err)
	}

	scheduler.Start()
	logger.Info("scheduler started", "spec", cfg.SchedulerSpec, "timezone", cfg.SchedulerTimezone)

	<-ctx.Done()
	logger.Info("shutdown requested, waiting for the active run")
	<-scheduler.Stop().Done()
	logger.Info("scheduler stopped")

	return nil
}

func newScheduler(cfg config.Config, logger *logging.Logger) (*cron.Cron, error) {
	location, err := time.LoadLocation(cfg.SchedulerTimezone)
	if err != nil {
		return nil, fmt.Errorf("load scheduler timezone %q: %w", cfg.SchedulerTimezone, err)
	}

	cronLog := cronLogger{logger: logger}
	return cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	), nil
}

type liveSyncRunner interface {
	Run(ctx context.Context) usecase.RunResult
}

// runJob starts one fresh pipeline run per tick. A tick that fires while a
// run is still active is dropped by the SkipIfStillRunning wrapper.
func runJob(ctx context.Context, service liveSyncRunner, timeout time.Duration, logger *logging.Logger) func() {
	return func() {
		if ctx.Err() != nil {
			return
		}

		runCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		result := service.Run(runCtx)
		if result.ExitCode() != 0 {
			logger.Warn("scheduled run failed", "run_id", result.RunID, "summary", result.Summary())
			return
		}
		logger.Info("scheduled run finished", "run_id", result.RunID, "summary", result.Summary())
	}
}

// cronLogger adapts the process logger to cron.Logger.
type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
