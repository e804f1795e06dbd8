package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/riskibarqy/fpl-livesync/internal/domain/positiontype"
	"github.com/riskibarqy/fpl-livesync/internal/domain/team"
	qb "github.com/riskibarqy/fpl-livesync/internal/platform/querybuilder"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
)

const defaultQueryTimeout = 60 * time.Second

// Store writes one sync batch through a single database handle.
type Store struct {
	db           *sqlx.DB
	queryTimeout time.Duration
	now          func() time.Time
}

var _ usecase.SyncStore = (*Store)(nil)

func NewStore(db *sqlx.DB, queryTimeout time.Duration) *Store {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &Store{
		db:           db,
		queryTimeout: queryTimeout,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) UpsertTeam(ctx context.Context, item team.Team) error {
	return s.upsert(ctx, tableTeams, item.ID, newTeamInsertModel(item, s.now()))
}

func (s *Store) UpsertPositionType(ctx context.Context, item positiontype.PositionType) error {
	return s.upsert(ctx, tablePositionTypes, item.ID, newPositionTypeInsertModel(item, s.now()))
}

func (s *Store) UpsertGameweek(ctx context.Context, item gameweek.Gameweek) error {
	return s.upsert(ctx, tableGameweeks, item.ID, newGameweekInsertModel(item, s.now()))
}

func (s *Store) UpsertFixture(ctx context.Context, item fixture.Fixture) error {
	return s.upsert(ctx, tableFixtures, item.ID, newFixtureInsertModel(item, s.now()))
}

func (s *Store) UpsertPlayer(ctx context.Context, item player.Player) error {
	return s.upsert(ctx, tablePlayers, item.ID, newPlayerInsertModel(item, s.now()))
}

// UpdatePlayerLiveStats only touches an existing player row. A missing
// player is reported as ErrPlayerNotFound rather than inserted.
func (s *Store) UpdatePlayerLiveStats(ctx context.Context, stats player.LiveStats) error {
	query, args, err := qb.UpdateModel(tablePlayers, newPlayerLiveUpdateModel(stats, s.now()), qb.Eq("id", stats.PlayerID))
	if err != nil {
		return fmt.Errorf("build update live stats query: %w", err)
	}

	result, err := s.exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update live stats player id=%d: %w", stats.PlayerID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows player id=%d: %w", stats.PlayerID, markStorageError(err))
	}
	if affected == 0 {
		return crerr.Wrapf(usecase.ErrPlayerNotFound, "update live stats player id=%d", stats.PlayerID)
	}

	return nil
}

func (s *Store) SetMetadata(ctx context.Context, key, value string) error {
	query, args, err := qb.UpsertModel(tableMetadata, metadataInsertModel{
		Key:       key,
		Value:     value,
		UpdatedAt: s.now(),
	}, "key")
	if err != nil {
		return fmt.Errorf("build upsert metadata query: %w", err)
	}

	if _, err := s.exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert metadata key=%s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) upsert(ctx context.Context, table string, id int64, model any) error {
	query, args, err := qb.UpsertModel(table, model, "id")
	if err != nil {
		return fmt.Errorf("build upsert %s query: %w", table, err)
	}

	if _, err := s.exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s id=%d: %w", table, id, err)
	}
	return nil
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, markStorageError(err)
	}
	return result, nil
}
