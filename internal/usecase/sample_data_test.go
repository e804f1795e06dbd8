package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/riskibarqy/fpl-livesync/internal/domain/positiontype"
	"github.com/riskibarqy/fpl-livesync/internal/domain/team"
	"github.com/shopspring/decimal"
)

// SampleReference builds a consistent bootstrap snapshot. Gameweek
// currentGameweek is flagged current when it is within range.
func SampleReference(teams, players, gameweeks int, currentGameweek int64) ReferenceSnapshot {
	out := ReferenceSnapshot{
		Teams:         make([]team.Team, 0, teams),
		Players:       make([]player.Player, 0, players),
		Gameweeks:     make([]gameweek.Gameweek, 0, gameweeks),
		PositionTypes: samplePositionTypes(),
	}
	for i := 1; i <= teams; i++ {
		out.Teams = append(out.Teams, team.Team{
			ID:        int64(i),
			Code:      int64(i * 3),
			Name:      fmt.Sprintf("Club %d", i),
			ShortName: fmt.Sprintf("C%02d", i),
			Strength:  3,
		})
	}
	deadline := time.Date(2026, 8, 15, 17, 30, 0, 0, time.UTC)
	for i := 1; i <= gameweeks; i++ {
		gwDeadline := deadline.AddDate(0, 0, 7*(i-1))
		out.Gameweeks = append(out.Gameweeks, gameweek.Gameweek{
			ID:           int64(i),
			Name:         fmt.Sprintf("Gameweek %d", i),
			DeadlineTime: &gwDeadline,
			IsCurrent:    int64(i) == currentGameweek,
			IsPrevious:   int64(i) == currentGameweek-1,
			IsNext:       int64(i) == currentGameweek+1,
			Finished:     int64(i) < currentGameweek,
		})
	}
	for i := 1; i <= players; i++ {
		teamID := int64(1)
		if teams > 0 {
			teamID = int64((i-1)%teams + 1)
		}
		out.Players = append(out.Players, player.Player{
			ID:             int64(i),
			Code:           int64(100000 + i),
			FirstName:      "Player",
			SecondName:     fmt.Sprintf("%d", i),
			WebName:        fmt.Sprintf("Player%d", i),
			TeamID:         teamID,
			PositionTypeID: int64((i-1)%4 + 1),
			Price:          decimal.RequireFromString("5.5"),
			Status:         "a",
			Form:           decimal.RequireFromString("2.3"),
		})
	}
	return out
}

func samplePositionTypes() []positiontype.PositionType {
	return []positiontype.PositionType{
		{ID: 1, SingularName: "Goalkeeper", SingularNameShort: "GKP", PluralName: "Goalkeepers", PluralNameShort: "GKP", SquadSelect: 2, SquadMinPlay: 1, SquadMaxPlay: 1},
		{ID: 2, SingularName: "Defender", SingularNameShort: "DEF", PluralName: "Defenders", PluralNameShort: "DEF", SquadSelect: 5, SquadMinPlay: 3, SquadMaxPlay: 5},
		{ID: 3, SingularName: "Midfielder", SingularNameShort: "MID", PluralName: "Midfielders", PluralNameShort: "MID", SquadSelect: 5, SquadMinPlay: 2, SquadMaxPlay: 5},
		{ID: 4, SingularName: "Forward", SingularNameShort: "FWD", PluralName: "Forwards", PluralNameShort: "FWD", SquadSelect: 3, SquadMinPlay: 1, SquadMaxPlay: 3},
	}
}

// SampleFixture builds a fixture between teams 1 and 2 in the given gameweek.
func SampleFixture(id, gameweekID int64, started, finished bool) fixture.Fixture {
	gw := gameweekID
	return fixture.Fixture{
		ID:         id,
		Code:       id * 10,
		GameweekID: &gw,
		TeamHomeID: 1,
		TeamAwayID: 2,
		Started:    started,
		Finished:   finished,
	}
}

// SampleLive builds n live rows for players 1..n.
func SampleLive(gameweekID int64, n int) LiveSnapshot {
	out := LiveSnapshot{GameweekID: gameweekID, PlayerStats: make([]ExternalLiveElement, 0, n)}
	for i := 1; i <= n; i++ {
		out.PlayerStats = append(out.PlayerStats, ExternalLiveElement{
			ID: int64(i),
			Stats: map[string]any{
				"minutes":      json.Number("90"),
				"goals_scored": json.Number(fmt.Sprintf("%d", i%2)),
				"assists":      json.Number("0"),
				"yellow_cards": json.Number("0"),
				"red_cards":    json.Number("0"),
				"saves":        json.Number("0"),
				"bonus":        json.Number("0"),
				"bps":          json.Number("12"),
				"influence":    "10.2",
				"creativity":   "3.0",
				"threat":       "8.0",
				"ict_index":    "2.1",
				"total_points": json.Number("2"),
			},
		})
	}
	return out
}
