package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/app"
	"github.com/riskibarqy/fpl-livesync/internal/config"
	"github.com/riskibarqy/fpl-livesync/internal/observability"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed: load config: %v\n", err)
		return 1
	}

	logger := app.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, observability.RoleLiveSync, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	service, err := app.NewLiveSync(cfg, logger, observability.NewRunMetrics(cfg, logger))
	if err != nil {
		logger.Error("build live sync", "error", err)
		fmt.Fprintf(os.Stderr, "failed: %v\n", err)
		return 1
	}

	return report(service.Run(ctx), os.Stdout, os.Stderr)
}

// report prints the final line of a run and returns the process exit code.
func report(result usecase.RunResult, stdout, stderr io.Writer) int {
	out := stdout
	if result.ExitCode() != 0 {
		out = stderr
	}
	fmt.Fprintln(out, result.Summary())
	return result.ExitCode()
}
