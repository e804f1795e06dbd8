package observability

import (
	"context"
	"net/url"
	"strings"

	"github.com/riskibarqy/fpl-livesync/internal/config"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// Process roles reported on the tracing resource.
const (
	RoleLiveSync  = "livesync"
	RoleScheduler = "scheduler"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace. The
// resource carries the process role along with the run settings.
func InitUptrace(cfg config.Config, role string, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if reason := uptraceDisabledReason(cfg); reason != "" {
		logging.SetMirror(nil)
		logger.Debug("tracing disabled", "reason", reason, "role", role)
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(livesyncResourceAttributes(cfg, role)...),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)
	if cfg.UptraceLogsEnabled {
		logging.SetMirror(newUptraceLogMirror(cfg.ServiceVersion))
	} else {
		logging.SetMirror(nil)
	}

	logger.Debug("tracing enabled", "role", role, "logs_enabled", cfg.UptraceLogsEnabled)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}

func uptraceDisabledReason(cfg config.Config) string {
	switch {
	case !cfg.UptraceEnabled:
		return "UPTRACE_ENABLED=false"
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		return "UPTRACE_DSN empty"
	default:
		return ""
	}
}

func livesyncResourceAttributes(cfg config.Config, role string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("livesync.role", role),
		attribute.Bool("livesync.dry_run", cfg.DryRun),
	}
	if u, err := url.Parse(cfg.FPLBaseURL); err == nil && u.Host != "" {
		attrs = append(attrs, attribute.String("livesync.source.host", u.Host))
	}
	if cfg.SchedulerSpec != "" && role == RoleScheduler {
		attrs = append(attrs, attribute.String("livesync.scheduler.spec", cfg.SchedulerSpec))
	}
	return attrs
}
