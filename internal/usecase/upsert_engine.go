package usecase

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/riskibarqy/fpl-livesync/internal/domain/positiontype"
	"github.com/riskibarqy/fpl-livesync/internal/domain/team"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel/attribute"
)

const (
	KindTeam         = "team"
	KindPositionType = "position_type"
	KindGameweek     = "gameweek"
	KindFixture      = "fixture"
	KindPlayer       = "player"
	KindLiveStats    = "live_stats"
)

// SyncStore is everything the pipeline writes. Implementations are not safe
// for concurrent use.
type SyncStore interface {
	team.Writer
	positiontype.Writer
	gameweek.Writer
	fixture.Writer
	player.Writer
	SetMetadata(ctx context.Context, key, value string) error
	Close() error
}

// StoreConnector opens one store per run.
type StoreConnector interface {
	Connect(ctx context.Context) (SyncStore, error)
}

// SyncBatch is the data fetched for one run.
type SyncBatch struct {
	Reference ReferenceSnapshot
	Fixtures  []fixture.Fixture
	Live      LiveSnapshot
}

type KindCount struct {
	Kind      string
	Succeeded int
	Failed    int
}

func (c KindCount) Attempted() int {
	return c.Succeeded + c.Failed
}

// BatchReport aggregates per-kind outcomes in write order.
type BatchReport struct {
	Counts    []KindCount
	RowErrors []RowError
}

func (r BatchReport) Failed() int {
	return len(r.RowErrors)
}

func (r BatchReport) Count(kind string) KindCount {
	for _, item := range r.Counts {
		if item.Kind == kind {
			return item
		}
	}
	return KindCount{Kind: kind}
}

type UpsertEngine struct {
	logger *logging.Logger
}

func NewUpsertEngine(logger *logging.Logger) *UpsertEngine {
	if logger == nil {
		logger = logging.Default()
	}
	return &UpsertEngine{logger: logger}
}

// Persist writes the batch in referential order: teams and position types,
// gameweeks, fixtures, players, then live stats. Row failures are collected
// and surface as a PartialBatchError once every record was attempted.
// Connection-level failures stop the run at once.
func (e *UpsertEngine) Persist(ctx context.Context, store SyncStore, batch SyncBatch) (report BatchReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UpsertEngine.Persist",
		attribute.Int64("gameweek.id", batch.Live.GameweekID),
	)
	defer func() { endUsecaseSpan(span, err) }()

	phases := []func() error{
		func() error {
			return upsertEach(ctx, e, &report, KindTeam, batch.Reference.Teams,
				func(item team.Team) int64 { return item.ID }, store.UpsertTeam)
		},
		func() error {
			return upsertEach(ctx, e, &report, KindPositionType, batch.Reference.PositionTypes,
				func(item positiontype.PositionType) int64 { return item.ID }, store.UpsertPositionType)
		},
		func() error {
			return upsertEach(ctx, e, &report, KindGameweek, batch.Reference.Gameweeks,
				func(item gameweek.Gameweek) int64 { return item.ID }, store.UpsertGameweek)
		},
		func() error {
			return upsertEach(ctx, e, &report, KindFixture, batch.Fixtures,
				func(item fixture.Fixture) int64 { return item.ID }, store.UpsertFixture)
		},
		func() error {
			return upsertEach(ctx, e, &report, KindPlayer, batch.Reference.Players,
				func(item player.Player) int64 { return item.ID }, store.UpsertPlayer)
		},
		func() error {
			gameweekID := batch.Live.GameweekID
			return upsertEach(ctx, e, &report, KindLiveStats, batch.Live.PlayerStats,
				func(item ExternalLiveElement) int64 { return item.ID },
				func(ctx context.Context, item ExternalLiveElement) error {
					stats, err := ParseLiveStats(gameweekID, item)
					if err != nil {
						return err
					}
					return store.UpdatePlayerLiveStats(ctx, stats)
				})
		},
	}

	for _, phase := range phases {
		if err := phase(); err != nil {
			return report, err
		}
	}

	if failed := report.Failed(); failed > 0 {
		return report, &PartialBatchError{Failed: failed, Rows: report.RowErrors}
	}
	return report, nil
}

// upsertEach applies one record kind in order. Each record is attempted on
// its own; a panic inside the store is converted into that row's error.
func upsertEach[T any](
	ctx context.Context,
	e *UpsertEngine,
	report *BatchReport,
	kind string,
	items []T,
	idOf func(T) int64,
	apply func(context.Context, T) error,
) error {
	count := KindCount{Kind: kind}
	defer func() { report.Counts = append(report.Counts, count) }()

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %s phase interrupted: %v", ErrUnexpectedStorage, kind, err)
		}

		id := idOf(item)
		var applyErr error
		if recovered := panics.Try(func() { applyErr = apply(ctx, item) }); recovered != nil {
			applyErr = recovered.AsError()
		}
		if applyErr == nil {
			count.Succeeded++
			continue
		}

		if isConnectionLevel(applyErr) {
			e.logger.ErrorContext(ctx, "storage failure, aborting batch", "kind", kind, "id", id, "error", applyErr)
			return fmt.Errorf("%w: %s id=%d: %v", ErrUnexpectedStorage, kind, id, applyErr)
		}

		count.Failed++
		report.RowErrors = append(report.RowErrors, RowError{Kind: kind, ID: id, Err: applyErr})
		e.logger.WarnContext(ctx, "record write failed", "kind", kind, "id", id, "error", applyErr)
	}

	e.logger.InfoContext(ctx, "records written", "kind", kind, "succeeded", count.Succeeded, "failed", count.Failed)
	return nil
}

func isConnectionLevel(err error) bool {
	return crerr.Is(err, ErrUnexpectedStorage) ||
		crerr.Is(err, context.Canceled) ||
		crerr.Is(err, context.DeadlineExceeded) ||
		crerr.Is(err, driver.ErrBadConn) ||
		crerr.Is(err, sql.ErrConnDone)
}
