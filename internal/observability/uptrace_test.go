package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/fpl-livesync/internal/config"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "fpl-livesync",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, RoleLiveSync, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSN(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		ServiceName:    "fpl-livesync",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, RoleScheduler, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "disabled", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev/1"}, want: "UPTRACE_ENABLED=false"},
		{name: "missing dsn", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "  "}, want: "UPTRACE_DSN empty"},
		{name: "enabled", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev/1"}, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uptraceDisabledReason(tc.cfg); got != tc.want {
				t.Fatalf("uptraceDisabledReason()=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestLivesyncResourceAttributes(t *testing.T) {
	cfg := config.Config{
		DryRun:        true,
		FPLBaseURL:    "https://fantasy.premierleague.com/api",
		SchedulerSpec: "*/2 * * * *",
	}

	scheduler := attributeMap(livesyncResourceAttributes(cfg, RoleScheduler))
	if scheduler["livesync.role"].AsString() != RoleScheduler {
		t.Fatalf("unexpected role: %v", scheduler["livesync.role"])
	}
	if !scheduler["livesync.dry_run"].AsBool() {
		t.Fatalf("expected dry run attribute")
	}
	if scheduler["livesync.source.host"].AsString() != "fantasy.premierleague.com" {
		t.Fatalf("unexpected source host: %v", scheduler["livesync.source.host"])
	}
	if scheduler["livesync.scheduler.spec"].AsString() != "*/2 * * * *" {
		t.Fatalf("unexpected scheduler spec: %v", scheduler["livesync.scheduler.spec"])
	}

	oneShot := attributeMap(livesyncResourceAttributes(cfg, RoleLiveSync))
	if _, ok := oneShot["livesync.scheduler.spec"]; ok {
		t.Fatalf("one-shot runs must not report a scheduler spec")
	}
}

func attributeMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}
