package fixture

import "time"

// Fixture represents one scheduled match between two clubs.
type Fixture struct {
	ID                  int64 `validate:"gt=0"`
	Code                int64
	GameweekID          *int64
	TeamHomeID          int64 `validate:"gt=0"`
	TeamAwayID          int64 `validate:"gt=0,nefield=TeamHomeID"`
	TeamHomeScore       *int
	TeamAwayScore       *int
	Started             bool
	Finished            bool
	FinishedProvisional bool
	KickoffTime         *time.Time
	Minutes             int `validate:"gte=0"`
	TeamHomeDifficulty  int
	TeamAwayDifficulty  int
}

// IsLive reports whether the match has kicked off and is not yet over.
func (f Fixture) IsLive() bool {
	return f.Started && !f.Finished
}

// InGameweek reports whether the fixture is scheduled in the given gameweek.
// Unscheduled fixtures belong to no gameweek.
func (f Fixture) InGameweek(gameweekID int64) bool {
	return f.GameweekID != nil && *f.GameweekID == gameweekID
}

// AnyLive reports whether at least one fixture is in progress.
func AnyLive(items []Fixture) bool {
	for _, item := range items {
		if item.IsLive() {
			return true
		}
	}
	return false
}

// FilterByGameweek keeps fixtures scheduled in the given gameweek.
func FilterByGameweek(items []Fixture, gameweekID int64) []Fixture {
	out := make([]Fixture, 0, len(items))
	for _, item := range items {
		if item.InGameweek(gameweekID) {
			out = append(out, item)
		}
	}
	return out
}
