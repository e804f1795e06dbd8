package gameweek

import "time"

// Gameweek is one FPL round ("event" in the source API).
type Gameweek struct {
	ID                int64  `validate:"gt=0"`
	Name              string `validate:"required"`
	DeadlineTime      *time.Time
	IsCurrent         bool
	IsPrevious        bool
	IsNext            bool
	Finished          bool
	DataChecked       bool
	AverageEntryScore int
	HighestScore      *int
}

// Current returns every gameweek flagged as current. A consistent season has
// at most one.
func Current(items []Gameweek) []Gameweek {
	out := make([]Gameweek, 0, 1)
	for _, item := range items {
		if item.IsCurrent {
			out = append(out, item)
		}
	}
	return out
}
