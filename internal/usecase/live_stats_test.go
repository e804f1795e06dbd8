package usecase

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseLiveStats_MapsFields(t *testing.T) {
	t.Parallel()

	got, err := ParseLiveStats(5, ExternalLiveElement{
		ID: 7,
		Stats: map[string]any{
			"minutes":      json.Number("67"),
			"goals_scored": float64(2),
			"bonus":        3,
			"influence":    "45.6",
			"ict_index":    json.Number("9.8"),
			"total_points": json.Number("15"),
		},
	})
	if err != nil {
		t.Fatalf("parse live stats: %v", err)
	}
	if got.PlayerID != 7 || got.GameweekID != 5 {
		t.Fatalf("unexpected keys: %+v", got)
	}
	if got.Minutes != 67 || got.GoalsScored != 2 || got.Bonus != 3 || got.EventPoints != 15 {
		t.Fatalf("unexpected integer fields: %+v", got)
	}
	if got.Influence.String() != "45.6" || got.ICTIndex.String() != "9.8" {
		t.Fatalf("unexpected decimal fields: influence=%s ict=%s", got.Influence, got.ICTIndex)
	}
}

func TestParseLiveStats_AbsentFieldsDefaultToZero(t *testing.T) {
	t.Parallel()

	got, err := ParseLiveStats(5, ExternalLiveElement{ID: 3, Stats: map[string]any{"assists": nil}})
	if err != nil {
		t.Fatalf("parse live stats: %v", err)
	}
	if got.Minutes != 0 || got.Assists != 0 || got.BPS != 0 || !got.Threat.IsZero() {
		t.Fatalf("expected zero values, got %+v", got)
	}
}

func TestParseLiveStats_MalformedIntegerFailsRow(t *testing.T) {
	t.Parallel()

	cases := map[string]any{
		"string":   "ninety",
		"fraction": float64(45.5),
		"number":   json.Number("12.5"),
		"bool":     true,
	}
	for name, value := range cases {
		_, err := ParseLiveStats(5, ExternalLiveElement{ID: 3, Stats: map[string]any{"minutes": value}})
		if !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("%s: expected ErrMalformedRecord, got %v", name, err)
		}
	}
}

func TestParseLiveStats_BadDecimalFallsBackToZero(t *testing.T) {
	t.Parallel()

	got, err := ParseLiveStats(5, ExternalLiveElement{ID: 3, Stats: map[string]any{"creativity": "n/a", "threat": []any{}}})
	if err != nil {
		t.Fatalf("decimal parse failures must not fail the row: %v", err)
	}
	if !got.Creativity.IsZero() || !got.Threat.IsZero() {
		t.Fatalf("expected zero decimals, got creativity=%s threat=%s", got.Creativity, got.Threat)
	}
}

func TestParseLiveStats_RejectsMissingID(t *testing.T) {
	t.Parallel()

	if _, err := ParseLiveStats(5, ExternalLiveElement{}); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	if got := ParseDecimal(" 12.30 "); got.String() != "12.3" {
		t.Fatalf("unexpected decimal: %s", got)
	}
	if got := ParseDecimal(""); !got.IsZero() {
		t.Fatalf("expected zero for empty input, got %s", got)
	}
	if got := ParseDecimal("abc"); !got.IsZero() {
		t.Fatalf("expected zero for invalid input, got %s", got)
	}
}
