package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/riskibarqy/fpl-livesync/internal/domain/positiontype"
	"github.com/riskibarqy/fpl-livesync/internal/domain/team"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
)

func TestStore_EnforcesForeignKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()

	if err := store.UpsertPlayer(ctx, player.Player{ID: 1, TeamID: 1, PositionTypeID: 1}); err == nil {
		t.Fatalf("expected player write to fail without team and position type")
	}

	gw := int64(5)
	if err := store.UpsertFixture(ctx, fixture.Fixture{ID: 10, GameweekID: &gw, TeamHomeID: 1, TeamAwayID: 2}); err == nil {
		t.Fatalf("expected fixture write to fail without gameweek")
	}

	_ = store.UpsertTeam(ctx, team.Team{ID: 1, Name: "Arsenal"})
	_ = store.UpsertTeam(ctx, team.Team{ID: 2, Name: "Aston Villa"})
	_ = store.UpsertPositionType(ctx, positiontype.PositionType{ID: 1, SingularName: "Goalkeeper"})
	_ = store.UpsertGameweek(ctx, gameweek.Gameweek{ID: 5, Name: "Gameweek 5"})

	if err := store.UpsertPlayer(ctx, player.Player{ID: 1, TeamID: 1, PositionTypeID: 1}); err != nil {
		t.Fatalf("upsert player: %v", err)
	}
	if err := store.UpsertFixture(ctx, fixture.Fixture{ID: 10, GameweekID: &gw, TeamHomeID: 1, TeamAwayID: 2}); err != nil {
		t.Fatalf("upsert fixture: %v", err)
	}
	if err := store.UpsertFixture(ctx, fixture.Fixture{ID: 11, TeamHomeID: 2, TeamAwayID: 1}); err != nil {
		t.Fatalf("unscheduled fixture must not need a gameweek: %v", err)
	}
}

func TestStore_UpdatePlayerLiveStatsRequiresExistingPlayer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	_ = store.UpsertGameweek(ctx, gameweek.Gameweek{ID: 5, Name: "Gameweek 5"})

	err := store.UpdatePlayerLiveStats(ctx, player.LiveStats{PlayerID: 99, GameweekID: 5})
	if !errors.Is(err, usecase.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if _, ok := store.LiveStats(99); ok {
		t.Fatalf("live stats must not be inserted for an unknown player")
	}
	if store.Writes() != 1 {
		t.Fatalf("unexpected write count: %d", store.Writes())
	}
}

func TestStore_UpsertReplacesRowAndTouchesTimestamp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	store := NewStore().WithClock(func() time.Time { return clock })

	_ = store.UpsertTeam(ctx, team.Team{ID: 1, Name: "Arsenal", ShortName: "ARS"})
	clock = clock.Add(2 * time.Minute)
	_ = store.UpsertTeam(ctx, team.Team{ID: 1, Name: "Arsenal", ShortName: "ARS", Strength: 5})

	rows := store.Teams()
	if len(rows) != 1 {
		t.Fatalf("expected one team row, got %d", len(rows))
	}
	if rows[0].Value.Strength != 5 {
		t.Fatalf("expected row to be updated in place: %+v", rows[0].Value)
	}
	if !rows[0].UpdatedAt.Equal(clock) {
		t.Fatalf("expected updated_at=%s, got %s", clock, rows[0].UpdatedAt)
	}
}

func TestConnector_CountsOpens(t *testing.T) {
	t.Parallel()

	connector := NewConnector(nil)
	if _, err := connector.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := connector.Connect(ctx); err == nil {
		t.Fatalf("expected cancelled context to fail connect")
	}
	if connector.Opens() != 1 {
		t.Fatalf("unexpected open count: %d", connector.Opens())
	}
}
