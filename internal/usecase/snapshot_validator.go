package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
)

const (
	DefaultMinPlayers        = 400
	DefaultExpectedTeams     = 20
	DefaultExpectedGameweeks = 38

	// Per kind, only the first few structural problems are spelled out.
	maxStructuralExamples = 3
)

type ValidationConfig struct {
	MinPlayers        int
	ExpectedTeams     int
	ExpectedGameweeks int
}

// ValidationResult lists every hard reason and soft warning found. OK is
// true only when Reasons is empty.
type ValidationResult struct {
	OK       bool
	Reasons  []string
	Warnings []string
}

func (r ValidationResult) Err() error {
	if r.OK {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(r.Reasons, "; "))
}

type SnapshotValidator struct {
	cfg     ValidationConfig
	structs *validator.Validate
}

func NewSnapshotValidator(cfg ValidationConfig) *SnapshotValidator {
	if cfg.MinPlayers <= 0 {
		cfg.MinPlayers = DefaultMinPlayers
	}
	if cfg.ExpectedTeams <= 0 {
		cfg.ExpectedTeams = DefaultExpectedTeams
	}
	if cfg.ExpectedGameweeks <= 0 {
		cfg.ExpectedGameweeks = DefaultExpectedGameweeks
	}

	return &SnapshotValidator{
		cfg:     cfg,
		structs: validator.New(),
	}
}

func (v *SnapshotValidator) Validate(reference ReferenceSnapshot, live LiveSnapshot, fixtures []fixture.Fixture) ValidationResult {
	var result ValidationResult

	hard := func(format string, args ...any) {
		result.Reasons = append(result.Reasons, fmt.Sprintf(format, args...))
	}
	soft := func(format string, args ...any) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(format, args...))
	}

	if len(reference.Teams) == 0 {
		hard("teams are missing or empty")
	}
	if len(reference.Players) == 0 {
		hard("players are missing or empty")
	}
	if len(reference.Gameweeks) == 0 {
		hard("gameweeks are missing or empty")
	}
	if len(reference.PositionTypes) == 0 {
		hard("position types are missing or empty")
	}
	if len(fixtures) == 0 {
		hard("fixtures are missing or empty")
	}
	if live.GameweekID <= 0 {
		hard("live gameweek id is missing")
	}
	if len(live.PlayerStats) == 0 {
		hard("live player stats are missing or empty")
	}
	if n := len(reference.Players); n > 0 && n < v.cfg.MinPlayers {
		hard("player count %d is below the plausibility threshold %d", n, v.cfg.MinPlayers)
	}

	if n := len(reference.Teams); n > 0 && n != v.cfg.ExpectedTeams {
		soft("team count %d differs from expected league size %d", n, v.cfg.ExpectedTeams)
	}
	if n := len(reference.Gameweeks); n > 0 && n < v.cfg.ExpectedGameweeks {
		soft("gameweek count %d is below expected season length %d", n, v.cfg.ExpectedGameweeks)
	}

	result.Warnings = append(result.Warnings, v.structuralWarnings(reference, fixtures)...)
	result.Warnings = append(result.Warnings, referenceWarnings(reference, fixtures)...)

	result.OK = len(result.Reasons) == 0
	return result
}

func (v *SnapshotValidator) structuralWarnings(reference ReferenceSnapshot, fixtures []fixture.Fixture) []string {
	out := make([]string, 0)
	out = appendStructural(out, v.structs, "team", reference.Teams, func(i int) int64 { return reference.Teams[i].ID })
	out = appendStructural(out, v.structs, "position type", reference.PositionTypes, func(i int) int64 { return reference.PositionTypes[i].ID })
	out = appendStructural(out, v.structs, "gameweek", reference.Gameweeks, func(i int) int64 { return reference.Gameweeks[i].ID })
	out = appendStructural(out, v.structs, "fixture", fixtures, func(i int) int64 { return fixtures[i].ID })
	out = appendStructural(out, v.structs, "player", reference.Players, func(i int) int64 { return reference.Players[i].ID })
	return out
}

func appendStructural[T any](out []string, structs *validator.Validate, kind string, items []T, idOf func(int) int64) []string {
	failed := 0
	examples := make([]string, 0, maxStructuralExamples)
	for i := range items {
		err := structs.Struct(items[i])
		if err == nil {
			continue
		}
		failed++
		if len(examples) < maxStructuralExamples {
			examples = append(examples, fmt.Sprintf("id=%d %s", idOf(i), describeFieldErrors(err)))
		}
	}
	if failed == 0 {
		return out
	}
	return append(out, fmt.Sprintf("%d %s record(s) failed structural checks: %s", failed, kind, strings.Join(examples, ", ")))
}

func describeFieldErrors(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Field()+" "+fe.Tag())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// referenceWarnings flags rows that will fail their foreign keys at write time.
func referenceWarnings(reference ReferenceSnapshot, fixtures []fixture.Fixture) []string {
	teams := make(map[int64]struct{}, len(reference.Teams))
	for _, item := range reference.Teams {
		teams[item.ID] = struct{}{}
	}
	positions := make(map[int64]struct{}, len(reference.PositionTypes))
	for _, item := range reference.PositionTypes {
		positions[item.ID] = struct{}{}
	}
	gameweeks := make(map[int64]struct{}, len(reference.Gameweeks))
	for _, item := range reference.Gameweeks {
		gameweeks[item.ID] = struct{}{}
	}

	out := make([]string, 0)
	if len(teams) > 0 && len(positions) > 0 {
		orphans := 0
		for _, item := range reference.Players {
			_, teamOK := teams[item.TeamID]
			_, posOK := positions[item.PositionTypeID]
			if !teamOK || !posOK {
				orphans++
			}
		}
		if orphans > 0 {
			out = append(out, fmt.Sprintf("%d player(s) reference an unknown team or position type", orphans))
		}
	}
	if len(teams) > 0 && len(gameweeks) > 0 {
		orphans := 0
		for _, item := range fixtures {
			_, homeOK := teams[item.TeamHomeID]
			_, awayOK := teams[item.TeamAwayID]
			gwOK := true
			if item.GameweekID != nil {
				_, gwOK = gameweeks[*item.GameweekID]
			}
			if !homeOK || !awayOK || !gwOK {
				orphans++
			}
		}
		if orphans > 0 {
			out = append(out, fmt.Sprintf("%d fixture(s) reference an unknown team or gameweek", orphans))
		}
	}
	return out
}
