package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/riskibarqy/fpl-livesync/internal/domain/positiontype"
	"github.com/riskibarqy/fpl-livesync/internal/domain/team"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
)

// Row is a stored record with its last-modified time.
type Row[T any] struct {
	Value     T
	UpdatedAt time.Time
}

type LiveRow struct {
	Stats     player.LiveStats
	UpdatedAt time.Time
}

// Store keeps the sync tables in memory and enforces the same foreign keys
// as the postgres schema. It backs dry runs and tests.
type Store struct {
	mu sync.RWMutex

	teams         map[int64]Row[team.Team]
	positionTypes map[int64]Row[positiontype.PositionType]
	gameweeks     map[int64]Row[gameweek.Gameweek]
	fixtures      map[int64]Row[fixture.Fixture]
	players       map[int64]Row[player.Player]
	live          map[int64]LiveRow
	metadata      map[string]string

	writes int
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		teams:         make(map[int64]Row[team.Team]),
		positionTypes: make(map[int64]Row[positiontype.PositionType]),
		gameweeks:     make(map[int64]Row[gameweek.Gameweek]),
		fixtures:      make(map[int64]Row[fixture.Fixture]),
		players:       make(map[int64]Row[player.Player]),
		live:          make(map[int64]LiveRow),
		metadata:      make(map[string]string),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the timestamp source used for updated_at.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *Store) UpsertTeam(_ context.Context, item team.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams[item.ID] = Row[team.Team]{Value: item, UpdatedAt: s.now()}
	s.writes++
	return nil
}

func (s *Store) UpsertPositionType(_ context.Context, item positiontype.PositionType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.positionTypes[item.ID] = Row[positiontype.PositionType]{Value: item, UpdatedAt: s.now()}
	s.writes++
	return nil
}

func (s *Store) UpsertGameweek(_ context.Context, item gameweek.Gameweek) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gameweeks[item.ID] = Row[gameweek.Gameweek]{Value: item, UpdatedAt: s.now()}
	s.writes++
	return nil
}

func (s *Store) UpsertFixture(_ context.Context, item fixture.Fixture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.GameweekID != nil {
		if _, ok := s.gameweeks[*item.GameweekID]; !ok {
			return fmt.Errorf("fixture id=%d references missing gameweek id=%d", item.ID, *item.GameweekID)
		}
	}
	for _, teamID := range []int64{item.TeamHomeID, item.TeamAwayID} {
		if _, ok := s.teams[teamID]; !ok {
			return fmt.Errorf("fixture id=%d references missing team id=%d", item.ID, teamID)
		}
	}

	s.fixtures[item.ID] = Row[fixture.Fixture]{Value: item, UpdatedAt: s.now()}
	s.writes++
	return nil
}

func (s *Store) UpsertPlayer(_ context.Context, item player.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[item.TeamID]; !ok {
		return fmt.Errorf("player id=%d references missing team id=%d", item.ID, item.TeamID)
	}
	if _, ok := s.positionTypes[item.PositionTypeID]; !ok {
		return fmt.Errorf("player id=%d references missing position type id=%d", item.ID, item.PositionTypeID)
	}

	s.players[item.ID] = Row[player.Player]{Value: item, UpdatedAt: s.now()}
	s.writes++
	return nil
}

func (s *Store) UpdatePlayerLiveStats(_ context.Context, stats player.LiveStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[stats.PlayerID]; !ok {
		return fmt.Errorf("update live stats player id=%d: %w", stats.PlayerID, usecase.ErrPlayerNotFound)
	}
	if _, ok := s.gameweeks[stats.GameweekID]; !ok {
		return fmt.Errorf("update live stats player id=%d references missing gameweek id=%d", stats.PlayerID, stats.GameweekID)
	}

	s.live[stats.PlayerID] = LiveRow{Stats: stats, UpdatedAt: s.now()}
	s.writes++
	return nil
}

func (s *Store) SetMetadata(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metadata[key] = value
	s.writes++
	return nil
}

// Close is a no-op; the data outlives any single run.
func (s *Store) Close() error {
	return nil
}

// Writes counts every successful write since the store was created.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

func (s *Store) Metadata(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.metadata[key]
	return value, ok
}

func (s *Store) LiveStats(playerID int64) (LiveRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.live[playerID]
	return row, ok
}

// Counts returns the number of stored rows per table.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"teams":          len(s.teams),
		"position_types": len(s.positionTypes),
		"gameweeks":      len(s.gameweeks),
		"fixtures":       len(s.fixtures),
		"players":        len(s.players),
		"live_stats":     len(s.live),
	}
}

func (s *Store) Teams() []Row[team.Team] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedRows(s.teams)
}

func (s *Store) Players() []Row[player.Player] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedRows(s.players)
}

func (s *Store) Fixtures() []Row[fixture.Fixture] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedRows(s.fixtures)
}

func sortedRows[T any](rows map[int64]Row[T]) []Row[T] {
	ids := make([]int64, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Row[T], 0, len(ids))
	for _, id := range ids {
		out = append(out, rows[id])
	}
	return out
}
