package postgres

import (
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/riskibarqy/fpl-livesync/internal/domain/positiontype"
	"github.com/riskibarqy/fpl-livesync/internal/domain/team"
	"github.com/shopspring/decimal"
)

const (
	tableTeams         = "teams"
	tablePositionTypes = "position_types"
	tableGameweeks     = "gameweeks"
	tableFixtures      = "fixtures"
	tablePlayers       = "players"
	tableMetadata      = "metadata"
)

type teamInsertModel struct {
	ID                  int64     `db:"id"`
	Code                int64     `db:"code"`
	Name                string    `db:"name"`
	ShortName           string    `db:"short_name"`
	Strength            int       `db:"strength"`
	StrengthOverallHome int       `db:"strength_overall_home"`
	StrengthOverallAway int       `db:"strength_overall_away"`
	StrengthAttackHome  int       `db:"strength_attack_home"`
	StrengthAttackAway  int       `db:"strength_attack_away"`
	StrengthDefenceHome int       `db:"strength_defence_home"`
	StrengthDefenceAway int       `db:"strength_defence_away"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func newTeamInsertModel(item team.Team, now time.Time) teamInsertModel {
	return teamInsertModel{
		ID:                  item.ID,
		Code:                item.Code,
		Name:                item.Name,
		ShortName:           item.ShortName,
		Strength:            item.Strength,
		StrengthOverallHome: item.StrengthOverallHome,
		StrengthOverallAway: item.StrengthOverallAway,
		StrengthAttackHome:  item.StrengthAttackHome,
		StrengthAttackAway:  item.StrengthAttackAway,
		StrengthDefenceHome: item.StrengthDefenceHome,
		StrengthDefenceAway: item.StrengthDefenceAway,
		UpdatedAt:           now,
	}
}

type positionTypeInsertModel struct {
	ID                int64     `db:"id"`
	SingularName      string    `db:"singular_name"`
	SingularNameShort string    `db:"singular_name_short"`
	PluralName        string    `db:"plural_name"`
	PluralNameShort   string    `db:"plural_name_short"`
	SquadSelect       int       `db:"squad_select"`
	SquadMinPlay      int       `db:"squad_min_play"`
	SquadMaxPlay      int       `db:"squad_max_play"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func newPositionTypeInsertModel(item positiontype.PositionType, now time.Time) positionTypeInsertModel {
	return positionTypeInsertModel{
		ID:                item.ID,
		SingularName:      item.SingularName,
		SingularNameShort: item.SingularNameShort,
		PluralName:        item.PluralName,
		PluralNameShort:   item.PluralNameShort,
		SquadSelect:       item.SquadSelect,
		SquadMinPlay:      item.SquadMinPlay,
		SquadMaxPlay:      item.SquadMaxPlay,
		UpdatedAt:         now,
	}
}

type gameweekInsertModel struct {
	ID                int64      `db:"id"`
	Name              string     `db:"name"`
	DeadlineTime      *time.Time `db:"deadline_time"`
	IsCurrent         bool       `db:"is_current"`
	IsPrevious        bool       `db:"is_previous"`
	IsNext            bool       `db:"is_next"`
	Finished          bool       `db:"finished"`
	DataChecked       bool       `db:"data_checked"`
	AverageEntryScore int        `db:"average_entry_score"`
	HighestScore      *int       `db:"highest_score"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func newGameweekInsertModel(item gameweek.Gameweek, now time.Time) gameweekInsertModel {
	return gameweekInsertModel{
		ID:                item.ID,
		Name:              item.Name,
		DeadlineTime:      item.DeadlineTime,
		IsCurrent:         item.IsCurrent,
		IsPrevious:        item.IsPrevious,
		IsNext:            item.IsNext,
		Finished:          item.Finished,
		DataChecked:       item.DataChecked,
		AverageEntryScore: item.AverageEntryScore,
		HighestScore:      item.HighestScore,
		UpdatedAt:         now,
	}
}

type fixtureInsertModel struct {
	ID                  int64      `db:"id"`
	Code                int64      `db:"code"`
	GameweekID          *int64     `db:"gameweek_id"`
	TeamHomeID          int64      `db:"team_h"`
	TeamAwayID          int64      `db:"team_a"`
	TeamHomeScore       *int       `db:"team_h_score"`
	TeamAwayScore       *int       `db:"team_a_score"`
	Started             bool       `db:"started"`
	Finished            bool       `db:"finished"`
	FinishedProvisional bool       `db:"finished_provisional"`
	KickoffTime         *time.Time `db:"kickoff_time"`
	Minutes             int        `db:"minutes"`
	TeamHomeDifficulty  int        `db:"team_h_difficulty"`
	TeamAwayDifficulty  int        `db:"team_a_difficulty"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func newFixtureInsertModel(item fixture.Fixture, now time.Time) fixtureInsertModel {
	return fixtureInsertModel{
		ID:                  item.ID,
		Code:                item.Code,
		GameweekID:          item.GameweekID,
		TeamHomeID:          item.TeamHomeID,
		TeamAwayID:          item.TeamAwayID,
		TeamHomeScore:       item.TeamHomeScore,
		TeamAwayScore:       item.TeamAwayScore,
		Started:             item.Started,
		Finished:            item.Finished,
		FinishedProvisional: item.FinishedProvisional,
		KickoffTime:         item.KickoffTime,
		Minutes:             item.Minutes,
		TeamHomeDifficulty:  item.TeamHomeDifficulty,
		TeamAwayDifficulty:  item.TeamAwayDifficulty,
		UpdatedAt:           now,
	}
}

// playerInsertModel covers the reference columns only. Live columns are
// owned by playerLiveUpdateModel and are never touched by the upsert.
type playerInsertModel struct {
	ID                int64           `db:"id"`
	Code              int64           `db:"code"`
	FirstName         string          `db:"first_name"`
	SecondName        string          `db:"second_name"`
	WebName           string          `db:"web_name"`
	TeamID            int64           `db:"team_id"`
	PositionTypeID    int64           `db:"position_type_id"`
	Price             decimal.Decimal `db:"price"`
	Status            string          `db:"status"`
	News              string          `db:"news"`
	SelectedByPercent decimal.Decimal `db:"selected_by_percent"`
	Form              decimal.Decimal `db:"form"`
	TotalPoints       int             `db:"total_points"`
	Minutes           int             `db:"minutes"`
	GoalsScored       int             `db:"goals_scored"`
	Assists           int             `db:"assists"`
	CleanSheets       int             `db:"clean_sheets"`
	GoalsConceded     int             `db:"goals_conceded"`
	YellowCards       int             `db:"yellow_cards"`
	RedCards          int             `db:"red_cards"`
	Saves             int             `db:"saves"`
	Bonus             int             `db:"bonus"`
	BPS               int             `db:"bps"`
	Influence         decimal.Decimal `db:"influence"`
	Creativity        decimal.Decimal `db:"creativity"`
	Threat            decimal.Decimal `db:"threat"`
	ICTIndex          decimal.Decimal `db:"ict_index"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func newPlayerInsertModel(item player.Player, now time.Time) playerInsertModel {
	return playerInsertModel{
		ID:                item.ID,
		Code:              item.Code,
		FirstName:         item.FirstName,
		SecondName:        item.SecondName,
		WebName:           item.WebName,
		TeamID:            item.TeamID,
		PositionTypeID:    item.PositionTypeID,
		Price:             item.Price,
		Status:            item.Status,
		News:              item.News,
		SelectedByPercent: item.SelectedByPercent,
		Form:              item.Form,
		TotalPoints:       item.TotalPoints,
		Minutes:           item.Minutes,
		GoalsScored:       item.GoalsScored,
		Assists:           item.Assists,
		CleanSheets:       item.CleanSheets,
		GoalsConceded:     item.GoalsConceded,
		YellowCards:       item.YellowCards,
		RedCards:          item.RedCards,
		Saves:             item.Saves,
		Bonus:             item.Bonus,
		BPS:               item.BPS,
		Influence:         item.Influence,
		Creativity:        item.Creativity,
		Threat:            item.Threat,
		ICTIndex:          item.ICTIndex,
		UpdatedAt:         now,
	}
}

type playerLiveUpdateModel struct {
	Minutes        int             `db:"gw_minutes"`
	GoalsScored    int             `db:"gw_goals_scored"`
	Assists        int             `db:"gw_assists"`
	YellowCards    int             `db:"gw_yellow_cards"`
	RedCards       int             `db:"gw_red_cards"`
	Saves          int             `db:"gw_saves"`
	Bonus          int             `db:"gw_bonus"`
	BPS            int             `db:"gw_bps"`
	Influence      decimal.Decimal `db:"gw_influence"`
	Creativity     decimal.Decimal `db:"gw_creativity"`
	Threat         decimal.Decimal `db:"gw_threat"`
	ICTIndex       decimal.Decimal `db:"gw_ict_index"`
	EventPoints    int             `db:"event_points"`
	LiveGameweekID int64           `db:"live_gameweek_id"`
	LiveUpdatedAt  time.Time       `db:"live_updated_at"`
}

func newPlayerLiveUpdateModel(stats player.LiveStats, now time.Time) playerLiveUpdateModel {
	return playerLiveUpdateModel{
		Minutes:        stats.Minutes,
		GoalsScored:    stats.GoalsScored,
		Assists:        stats.Assists,
		YellowCards:    stats.YellowCards,
		RedCards:       stats.RedCards,
		Saves:          stats.Saves,
		Bonus:          stats.Bonus,
		BPS:            stats.BPS,
		Influence:      stats.Influence,
		Creativity:     stats.Creativity,
		Threat:         stats.Threat,
		ICTIndex:       stats.ICTIndex,
		EventPoints:    stats.EventPoints,
		LiveGameweekID: stats.GameweekID,
		LiveUpdatedAt:  now,
	}
}

type metadataInsertModel struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
