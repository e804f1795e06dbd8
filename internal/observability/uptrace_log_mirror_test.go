package observability

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog(logging.LevelDebug) {
		t.Fatalf("expected debug entries to be skipped")
	}
	if shouldSkipUptraceLog(logging.LevelInfo) || shouldSkipUptraceLog(logging.LevelError) {
		t.Fatalf("did not expect info or error entries to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"run_id", "r-1", "gameweek_id", int64(5), "error", errors.New("boom"), "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "run_id" || attrs[0].Value.AsString() != "r-1" {
		t.Fatalf("unexpected run_id attribute")
	}
	if attrs[1].Key != "gameweek_id" || attrs[1].Value.AsInt64() != 5 {
		t.Fatalf("unexpected gameweek_id attribute")
	}
	if attrs[2].Value.AsString() != "boom" {
		t.Fatalf("unexpected error attribute")
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestToOTelLogValue_RunState(t *testing.T) {
	v := toOTelLogValue(usecase.StatePersisting, 0)
	if v.Kind() != otellog.KindString || v.AsString() != "persisting" {
		t.Fatalf("unexpected run state value: %v", v)
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{"minutes": 90, "bps": 31}, 0)
	if v.Kind() != otellog.KindMap || len(v.AsMap()) != 2 {
		t.Fatalf("expected map value with 2 items, got %v", v)
	}
}
