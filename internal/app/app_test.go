package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/config"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
)

type recordedRuns struct {
	results []usecase.RunResult
}

func (r *recordedRuns) RecordRun(result usecase.RunResult) {
	r.results = append(r.results, result)
}

func newFakeFPL(t *testing.T, fixtureStarted bool) *httptest.Server {
	t.Helper()

	teams := []map[string]any{
		{"id": 1, "code": 3, "name": "Arsenal", "short_name": "ARS"},
		{"id": 2, "code": 7, "name": "Aston Villa", "short_name": "AVL"},
	}
	elementTypes := []map[string]any{
		{"id": 1, "singular_name": "Goalkeeper", "singular_name_short": "GKP", "plural_name": "Goalkeepers", "plural_name_short": "GKP"},
	}
	events := []map[string]any{
		{"id": 4, "name": "Gameweek 4", "finished": true, "is_previous": true},
		{"id": 5, "name": "Gameweek 5", "is_current": true, "deadline_time": "2026-10-03T10:00:00Z"},
	}
	elements := make([]map[string]any, 0, 6)
	liveElements := make([]map[string]any, 0, 6)
	for id := 1; id <= 6; id++ {
		elements = append(elements, map[string]any{
			"id": id, "web_name": "Player", "team": 1 + id%2, "element_type": 1,
			"now_cost": 55, "form": "3.5", "selected_by_percent": "12.1",
		})
		liveElements = append(liveElements, map[string]any{
			"id":    id,
			"stats": map[string]any{"minutes": 45, "total_points": 2, "bps": 10, "ict_index": "1.2"},
		})
	}
	fixtures := []map[string]any{
		{"id": 41, "code": 2444, "event": 5, "team_h": 1, "team_a": 2, "started": fixtureStarted, "finished": false, "minutes": 45},
	}

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, payload any) {
		w.Header().Set("content-type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encode payload: %v", err)
		}
	}
	mux.HandleFunc("/bootstrap-static/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"teams": teams, "element_types": elementTypes, "events": events, "elements": elements})
	})
	mux.HandleFunc("/fixtures/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, fixtures)
	})
	mux.HandleFunc("/event/5/live/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"elements": liveElements})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func dryRunConfig(baseURL string) config.Config {
	return config.Config{
		AppEnv:                      config.EnvDev,
		ServiceName:                 "fpl-livesync",
		FPLBaseURL:                  baseURL,
		FPLTimeout:                  5 * time.Second,
		DryRun:                      true,
		ValidationMinPlayers:        5,
		ValidationExpectedTeams:     2,
		ValidationExpectedGameweeks: 2,
	}
}

func TestNewLiveSync_DryRunLivePath(t *testing.T) {
	server := newFakeFPL(t, true)
	recorder := &recordedRuns{}

	service, err := NewLiveSync(dryRunConfig(server.URL), logging.NewNop(), recorder)
	if err != nil {
		t.Fatalf("wire live sync: %v", err)
	}

	result := service.Run(context.Background())
	if result.State != usecase.StateSucceeded || result.ExitCode() != 0 {
		t.Fatalf("expected success, got state=%s err=%v", result.State, result.Err)
	}
	if result.GameweekID != 5 {
		t.Fatalf("unexpected gameweek: %d", result.GameweekID)
	}
	if got := result.Report.Count(usecase.KindLiveStats).Succeeded; got != 6 {
		t.Fatalf("expected 6 live rows, got %d", got)
	}
	if len(recorder.results) != 1 {
		t.Fatalf("expected recorder to see one run, got %d", len(recorder.results))
	}
}

func TestNewLiveSync_DryRunSkipsWithoutLiveFixture(t *testing.T) {
	server := newFakeFPL(t, false)

	service, err := NewLiveSync(dryRunConfig(server.URL), logging.NewNop(), nil)
	if err != nil {
		t.Fatalf("wire live sync: %v", err)
	}

	result := service.Run(context.Background())
	if !result.NoLiveGames() || result.ExitCode() != 0 {
		t.Fatalf("expected skip, got state=%s history=%v", result.State, result.History)
	}
	if len(result.Report.Counts) != 0 {
		t.Fatalf("skip must not write anything: %+v", result.Report.Counts)
	}
}

func TestNewLiveSync_RequiresDatabaseOutsideDryRun(t *testing.T) {
	cfg := dryRunConfig("http://127.0.0.1:1")
	cfg.DryRun = false

	if _, err := NewLiveSync(cfg, logging.NewNop(), nil); err == nil {
		t.Fatalf("expected error without database settings")
	}
}
