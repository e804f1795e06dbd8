package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type RunState string

const (
	StateIdle          RunState = "idle"
	StateDetectingLive RunState = "detecting_live"
	StateNoLiveGames   RunState = "no_live_games"
	StateFetchingData  RunState = "fetching_data"
	StateValidating    RunState = "validating"
	StateSkipped       RunState = "skipped"
	StatePersisting    RunState = "persisting"
	StateSucceeded     RunState = "succeeded"
	StateFailed        RunState = "failed"
)

// MetadataLastLiveUpdate is the metadata key stamped after a successful write.
const MetadataLastLiveUpdate = "last_live_update"

// RunResult describes one finished pipeline run.
type RunResult struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	State      RunState
	History    []RunState
	GameweekID int64
	Validation *ValidationResult
	Report     BatchReport
	Err        error
}

func (r RunResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// NoLiveGames reports whether the run stopped early because nothing is live.
func (r RunResult) NoLiveGames() bool {
	for _, state := range r.History {
		if state == StateNoLiveGames {
			return true
		}
	}
	return false
}

func (r RunResult) ExitCode() int {
	if r.State == StateSucceeded {
		return 0
	}
	return 1
}

// Summary is the final human-readable line of a run.
func (r RunResult) Summary() string {
	switch {
	case r.State == StateSucceeded && r.NoLiveGames():
		return fmt.Sprintf("skipped: no live fixtures (run %s)", r.RunID)
	case r.State == StateSucceeded:
		written := 0
		for _, item := range r.Report.Counts {
			written += item.Succeeded
		}
		return fmt.Sprintf("updated: gameweek %d, %d live player rows, %d rows written in %s (run %s)",
			r.GameweekID, r.Report.Count(KindLiveStats).Succeeded, written, r.Duration().Round(time.Millisecond), r.RunID)
	default:
		return fmt.Sprintf("failed in state %s: %v (run %s)", r.lastStateBeforeFailure(), r.Err, r.RunID)
	}
}

func (r RunResult) lastStateBeforeFailure() RunState {
	if len(r.History) < 2 {
		return r.State
	}
	return r.History[len(r.History)-2]
}

// RunRecorder receives every finished run.
type RunRecorder interface {
	RecordRun(result RunResult)
}

type LiveSyncService struct {
	source    SourceProvider
	detector  *LiveDetector
	validator *SnapshotValidator
	engine    *UpsertEngine
	connector StoreConnector
	recorder  RunRecorder
	logger    *logging.Logger
	now       func() time.Time
	newRunID  func() string
}

func NewLiveSyncService(
	source SourceProvider,
	connector StoreConnector,
	validator *SnapshotValidator,
	recorder RunRecorder,
	logger *logging.Logger,
) *LiveSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if validator == nil {
		validator = NewSnapshotValidator(ValidationConfig{})
	}

	return &LiveSyncService{
		source:    source,
		detector:  NewLiveDetector(source, logger),
		validator: validator,
		engine:    NewUpsertEngine(logger),
		connector: connector,
		recorder:  recorder,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newRunID:  func() string { return uuid.NewString() },
	}
}

// Run executes one pipeline pass. It never returns an error directly; the
// outcome, including the exit status, lives in the result.
func (s *LiveSyncService) Run(ctx context.Context) (result RunResult) {
	result = RunResult{
		RunID:     s.newRunID(),
		StartedAt: s.now(),
		State:     StateIdle,
		History:   []RunState{StateIdle},
	}
	logger := s.logger.With("run_id", result.RunID)

	ctx, span := startUsecaseSpan(ctx, "usecase.LiveSyncService.Run", attribute.String("run.id", result.RunID))
	defer func() {
		result.FinishedAt = s.now()
		endUsecaseSpan(span, result.Err)
		if s.recorder != nil {
			s.recorder.RecordRun(result)
		}
	}()

	moveTo := func(state RunState) {
		logger.DebugContext(ctx, "run state changed", "from", result.State, "to", state)
		result.State = state
		result.History = append(result.History, state)
	}
	fail := func(err error) RunResult {
		result.Err = err
		moveTo(StateFailed)
		logger.ErrorContext(ctx, "live sync failed", "error", err)
		return result
	}

	moveTo(StateDetectingLive)
	detection, err := s.detector.Detect(ctx)
	if err != nil {
		return fail(err)
	}
	if !detection.Live {
		moveTo(StateNoLiveGames)
		logger.InfoContext(ctx, "no live games, skipping update", "reason", detection.Reason)
		moveTo(StateSucceeded)
		return result
	}

	gameweekID := detection.Gameweek.ID
	result.GameweekID = gameweekID
	span.SetAttributes(attribute.Int64("gameweek.id", gameweekID))

	moveTo(StateFetchingData)
	fixtures, err := s.source.FetchFixtures(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("fetch all fixtures: %w", err))
	}
	live, err := s.source.FetchLiveStats(ctx, gameweekID)
	if err != nil {
		return fail(fmt.Errorf("fetch live stats gameweek=%d: %w", gameweekID, err))
	}
	logger.InfoContext(ctx, "fetched live data",
		"gameweek_id", gameweekID,
		"teams", len(detection.Reference.Teams),
		"players", len(detection.Reference.Players),
		"fixtures", len(fixtures),
		"live_rows", len(live.PlayerStats),
	)

	moveTo(StateValidating)
	validation := s.validator.Validate(detection.Reference, live, fixtures)
	result.Validation = &validation
	for _, warning := range validation.Warnings {
		logger.WarnContext(ctx, "validation warning", "warning", warning)
	}
	if !validation.OK {
		moveTo(StateSkipped)
		return fail(validation.Err())
	}

	moveTo(StatePersisting)
	store, err := s.connector.Connect(ctx)
	if err != nil {
		if !errors.Is(err, ErrStorageConnectionFailed) {
			err = fmt.Errorf("%w: %v", ErrStorageConnectionFailed, err)
		}
		return fail(err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.WarnContext(ctx, "close store failed", "error", closeErr)
		}
	}()

	batch := SyncBatch{
		Reference: detection.Reference,
		Fixtures:  fixtures,
		Live:      live,
	}
	report, err := s.engine.Persist(ctx, store, batch)
	result.Report = report
	if err != nil {
		return fail(err)
	}

	if err := store.SetMetadata(ctx, MetadataLastLiveUpdate, result.StartedAt.Format(time.RFC3339)); err != nil {
		logger.WarnContext(ctx, "update metadata failed", "key", MetadataLastLiveUpdate, "error", err)
	}

	moveTo(StateSucceeded)
	logger.InfoContext(ctx, "live sync finished",
		"gameweek_id", gameweekID,
		"live_rows", report.Count(KindLiveStats).Succeeded,
	)
	return result
}
