package usecase

import (
	"context"

	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/riskibarqy/fpl-livesync/internal/domain/positiontype"
	"github.com/riskibarqy/fpl-livesync/internal/domain/team"
)

// SourceProvider fetches typed snapshots from the FPL API. Each call is a
// single request; retrying is left to whoever schedules the run.
type SourceProvider interface {
	FetchReferenceSnapshot(ctx context.Context) (ReferenceSnapshot, error)
	// FetchFixtures returns every fixture of the season when gameweekID is nil.
	FetchFixtures(ctx context.Context, gameweekID *int64) ([]fixture.Fixture, error)
	FetchLiveStats(ctx context.Context, gameweekID int64) (LiveSnapshot, error)
}

// ReferenceSnapshot is the bootstrap payload: the slowly changing data every
// live update depends on.
type ReferenceSnapshot struct {
	Teams         []team.Team
	Players       []player.Player
	Gameweeks     []gameweek.Gameweek
	PositionTypes []positiontype.PositionType
}

// LiveSnapshot holds the per-player statistics of one gameweek.
type LiveSnapshot struct {
	GameweekID  int64
	PlayerStats []ExternalLiveElement
}

// ExternalLiveElement keeps the raw stats object so a malformed value fails
// only its own row.
type ExternalLiveElement struct {
	ID    int64
	Stats map[string]any
}
