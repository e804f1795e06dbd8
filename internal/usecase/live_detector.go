package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// Detection is the outcome of one live check. Reference and Fixtures are kept
// so a live run does not need to fetch bootstrap data twice.
type Detection struct {
	Live      bool
	Reason    string
	Gameweek  *gameweek.Gameweek
	Reference ReferenceSnapshot
	Fixtures  []fixture.Fixture
}

type LiveDetector struct {
	source SourceProvider
	logger *logging.Logger
}

func NewLiveDetector(source SourceProvider, logger *logging.Logger) *LiveDetector {
	if logger == nil {
		logger = logging.Default()
	}

	return &LiveDetector{
		source: source,
		logger: logger,
	}
}

func (d *LiveDetector) IsLive(ctx context.Context) (bool, error) {
	detection, err := d.Detect(ctx)
	if err != nil {
		return false, err
	}
	return detection.Live, nil
}

func (d *LiveDetector) Detect(ctx context.Context) (out Detection, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveDetector.Detect")
	defer func() { endUsecaseSpan(span, err) }()

	reference, err := d.source.FetchReferenceSnapshot(ctx)
	if err != nil {
		return Detection{}, fmt.Errorf("fetch reference snapshot: %w", err)
	}
	out.Reference = reference

	current := gameweek.Current(reference.Gameweeks)
	switch len(current) {
	case 0:
		out.Reason = "no current gameweek"
		d.logger.InfoContext(ctx, "no current gameweek, nothing is live", "gameweeks", len(reference.Gameweeks))
		return out, nil
	case 1:
	default:
		ids := make([]int64, 0, len(current))
		for _, item := range current {
			ids = append(ids, item.ID)
		}
		out.Reason = "multiple current gameweeks"
		d.logger.WarnContext(ctx, "source reports more than one current gameweek, treating as not live", "gameweek_ids", ids)
		return out, nil
	}

	gw := current[0]
	out.Gameweek = &gw
	span.SetAttributes(attribute.Int64("gameweek.id", gw.ID))

	fetched, err := d.source.FetchFixtures(ctx, &gw.ID)
	if err != nil {
		return Detection{}, fmt.Errorf("fetch fixtures gameweek=%d: %w", gw.ID, err)
	}
	// The event filter is applied upstream; fixtures from other rounds must
	// never mark this one live.
	fixtures := fixture.FilterByGameweek(fetched, gw.ID)
	if dropped := len(fetched) - len(fixtures); dropped > 0 {
		d.logger.WarnContext(ctx, "source returned fixtures outside the current gameweek",
			"gameweek_id", gw.ID,
			"dropped", dropped,
		)
	}
	out.Fixtures = fixtures
	out.Live = fixture.AnyLive(fixtures)

	liveCount := 0
	for _, item := range fixtures {
		if item.IsLive() {
			liveCount++
		}
	}
	if !out.Live {
		out.Reason = fmt.Sprintf("no live fixture in gameweek %d", gw.ID)
	}

	d.logger.InfoContext(ctx, "live check finished",
		"gameweek_id", gw.ID,
		"fixtures", len(fixtures),
		"live_fixtures", liveCount,
		"live", out.Live,
	)
	return out, nil
}
