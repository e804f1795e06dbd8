package player

import "github.com/shopspring/decimal"

// Player is an FPL element with its season-level totals.
type Player struct {
	ID                int64  `validate:"gt=0"`
	Code              int64  `validate:"gte=0"`
	FirstName         string
	SecondName        string
	WebName           string `validate:"required"`
	TeamID            int64  `validate:"gt=0"`
	PositionTypeID    int64  `validate:"gt=0"`
	Price             decimal.Decimal
	Status            string
	News              string
	SelectedByPercent decimal.Decimal
	Form              decimal.Decimal

	TotalPoints   int
	Minutes       int `validate:"gte=0"`
	GoalsScored   int `validate:"gte=0"`
	Assists       int `validate:"gte=0"`
	CleanSheets   int `validate:"gte=0"`
	GoalsConceded int `validate:"gte=0"`
	YellowCards   int `validate:"gte=0"`
	RedCards      int `validate:"gte=0"`
	Saves         int `validate:"gte=0"`
	Bonus         int `validate:"gte=0"`
	BPS           int
	Influence     decimal.Decimal
	Creativity    decimal.Decimal
	Threat        decimal.Decimal
	ICTIndex      decimal.Decimal
}

// LiveStats is one player's cumulative statistics for the current gameweek.
// Each sync replaces the previous values wholesale.
type LiveStats struct {
	PlayerID    int64
	GameweekID  int64
	Minutes     int
	GoalsScored int
	Assists     int
	YellowCards int
	RedCards    int
	Saves       int
	Bonus       int
	BPS         int
	Influence   decimal.Decimal
	Creativity  decimal.Decimal
	Threat      decimal.Decimal
	ICTIndex    decimal.Decimal
	EventPoints int
}
