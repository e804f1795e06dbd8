package fpl

import (
	"strings"
	"time"

	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/riskibarqy/fpl-livesync/internal/domain/positiontype"
	"github.com/riskibarqy/fpl-livesync/internal/domain/team"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
	"github.com/shopspring/decimal"
)

// Top-level collections are pointers so a missing key can be told apart
// from an empty list.
type bootstrapEnvelope struct {
	Events       *[]eventItem       `json:"events"`
	Teams        *[]teamItem        `json:"teams"`
	Elements     *[]elementItem     `json:"elements"`
	ElementTypes *[]elementTypeItem `json:"element_types"`
}

type eventItem struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	DeadlineTime      *string `json:"deadline_time"`
	AverageEntryScore int     `json:"average_entry_score"`
	Finished          bool    `json:"finished"`
	DataChecked       bool    `json:"data_checked"`
	HighestScore      *int    `json:"highest_score"`
	IsPrevious        bool    `json:"is_previous"`
	IsCurrent         bool    `json:"is_current"`
	IsNext            bool    `json:"is_next"`
}

type teamItem struct {
	ID                  int64  `json:"id"`
	Code                int64  `json:"code"`
	Name                string `json:"name"`
	ShortName           string `json:"short_name"`
	Strength            int    `json:"strength"`
	StrengthOverallHome int    `json:"strength_overall_home"`
	StrengthOverallAway int    `json:"strength_overall_away"`
	StrengthAttackHome  int    `json:"strength_attack_home"`
	StrengthAttackAway  int    `json:"strength_attack_away"`
	StrengthDefenceHome int    `json:"strength_defence_home"`
	StrengthDefenceAway int    `json:"strength_defence_away"`
}

type elementTypeItem struct {
	ID                int64  `json:"id"`
	PluralName        string `json:"plural_name"`
	PluralNameShort   string `json:"plural_name_short"`
	SingularName      string `json:"singular_name"`
	SingularNameShort string `json:"singular_name_short"`
	SquadSelect       int    `json:"squad_select"`
	SquadMinPlay      int    `json:"squad_min_play"`
	SquadMaxPlay      int    `json:"squad_max_play"`
}

type elementItem struct {
	ID                int64  `json:"id"`
	Code              int64  `json:"code"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	WebName           string `json:"web_name"`
	Team              int64  `json:"team"`
	ElementType       int64  `json:"element_type"`
	NowCost           int64  `json:"now_cost"` // tenths of a million
	Status            string `json:"status"`
	News              string `json:"news"`
	SelectedByPercent string `json:"selected_by_percent"`
	Form              string `json:"form"`
	TotalPoints       int    `json:"total_points"`
	Minutes           int    `json:"minutes"`
	GoalsScored       int    `json:"goals_scored"`
	Assists           int    `json:"assists"`
	CleanSheets       int    `json:"clean_sheets"`
	GoalsConceded     int    `json:"goals_conceded"`
	YellowCards       int    `json:"yellow_cards"`
	RedCards          int    `json:"red_cards"`
	Saves             int    `json:"saves"`
	Bonus             int    `json:"bonus"`
	BPS               int    `json:"bps"`
	Influence         string `json:"influence"`
	Creativity        string `json:"creativity"`
	Threat            string `json:"threat"`
	ICTIndex          string `json:"ict_index"`
}

type fixtureItem struct {
	ID                  int64   `json:"id"`
	Code                int64   `json:"code"`
	Event               *int64  `json:"event"`
	TeamH               int64   `json:"team_h"`
	TeamA               int64   `json:"team_a"`
	TeamHScore          *int    `json:"team_h_score"`
	TeamAScore          *int    `json:"team_a_score"`
	Started             *bool   `json:"started"`
	Finished            bool    `json:"finished"`
	FinishedProvisional bool    `json:"finished_provisional"`
	KickoffTime         *string `json:"kickoff_time"`
	Minutes             int     `json:"minutes"`
	TeamHDifficulty     int     `json:"team_h_difficulty"`
	TeamADifficulty     int     `json:"team_a_difficulty"`
}

type liveEnvelope struct {
	Elements *[]liveElementItem `json:"elements"`
}

type liveElementItem struct {
	ID    int64          `json:"id"`
	Stats map[string]any `json:"stats"`
}

func (e bootstrapEnvelope) missingFields() []string {
	missing := make([]string, 0, 4)
	if e.Events == nil {
		missing = append(missing, "events")
	}
	if e.Teams == nil {
		missing = append(missing, "teams")
	}
	if e.Elements == nil {
		missing = append(missing, "elements")
	}
	if e.ElementTypes == nil {
		missing = append(missing, "element_types")
	}
	return missing
}

func (e bootstrapEnvelope) toSnapshot() usecase.ReferenceSnapshot {
	out := usecase.ReferenceSnapshot{
		Teams:         make([]team.Team, 0, len(*e.Teams)),
		Players:       make([]player.Player, 0, len(*e.Elements)),
		Gameweeks:     make([]gameweek.Gameweek, 0, len(*e.Events)),
		PositionTypes: make([]positiontype.PositionType, 0, len(*e.ElementTypes)),
	}
	for _, item := range *e.Teams {
		out.Teams = append(out.Teams, item.toDomain())
	}
	for _, item := range *e.ElementTypes {
		out.PositionTypes = append(out.PositionTypes, item.toDomain())
	}
	for _, item := range *e.Events {
		out.Gameweeks = append(out.Gameweeks, item.toDomain())
	}
	for _, item := range *e.Elements {
		out.Players = append(out.Players, item.toDomain())
	}
	return out
}

func (t teamItem) toDomain() team.Team {
	return team.Team{
		ID:                  t.ID,
		Code:                t.Code,
		Name:                strings.TrimSpace(t.Name),
		ShortName:           strings.TrimSpace(t.ShortName),
		Strength:            t.Strength,
		StrengthOverallHome: t.StrengthOverallHome,
		StrengthOverallAway: t.StrengthOverallAway,
		StrengthAttackHome:  t.StrengthAttackHome,
		StrengthAttackAway:  t.StrengthAttackAway,
		StrengthDefenceHome: t.StrengthDefenceHome,
		StrengthDefenceAway: t.StrengthDefenceAway,
	}
}

func (p elementTypeItem) toDomain() positiontype.PositionType {
	return positiontype.PositionType{
		ID:                p.ID,
		SingularName:      p.SingularName,
		SingularNameShort: p.SingularNameShort,
		PluralName:        p.PluralName,
		PluralNameShort:   p.PluralNameShort,
		SquadSelect:       p.SquadSelect,
		SquadMinPlay:      p.SquadMinPlay,
		SquadMaxPlay:      p.SquadMaxPlay,
	}
}

func (e eventItem) toDomain() gameweek.Gameweek {
	return gameweek.Gameweek{
		ID:                e.ID,
		Name:              strings.TrimSpace(e.Name),
		DeadlineTime:      parseProviderTime(e.DeadlineTime),
		IsCurrent:         e.IsCurrent,
		IsPrevious:        e.IsPrevious,
		IsNext:            e.IsNext,
		Finished:          e.Finished,
		DataChecked:       e.DataChecked,
		AverageEntryScore: e.AverageEntryScore,
		HighestScore:      e.HighestScore,
	}
}

func (e elementItem) toDomain() player.Player {
	return player.Player{
		ID:                e.ID,
		Code:              e.Code,
		FirstName:         e.FirstName,
		SecondName:        e.SecondName,
		WebName:           e.WebName,
		TeamID:            e.Team,
		PositionTypeID:    e.ElementType,
		Price:             decimal.New(e.NowCost, -1),
		Status:            e.Status,
		News:              e.News,
		SelectedByPercent: usecase.ParseDecimal(e.SelectedByPercent),
		Form:              usecase.ParseDecimal(e.Form),
		TotalPoints:       e.TotalPoints,
		Minutes:           e.Minutes,
		GoalsScored:       e.GoalsScored,
		Assists:           e.Assists,
		CleanSheets:       e.CleanSheets,
		GoalsConceded:     e.GoalsConceded,
		YellowCards:       e.YellowCards,
		RedCards:          e.RedCards,
		Saves:             e.Saves,
		Bonus:             e.Bonus,
		BPS:               e.BPS,
		Influence:         usecase.ParseDecimal(e.Influence),
		Creativity:        usecase.ParseDecimal(e.Creativity),
		Threat:            usecase.ParseDecimal(e.Threat),
		ICTIndex:          usecase.ParseDecimal(e.ICTIndex),
	}
}

func (f fixtureItem) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:                  f.ID,
		Code:                f.Code,
		GameweekID:          f.Event,
		TeamHomeID:          f.TeamH,
		TeamAwayID:          f.TeamA,
		TeamHomeScore:       f.TeamHScore,
		TeamAwayScore:       f.TeamAScore,
		Started:             f.Started != nil && *f.Started,
		Finished:            f.Finished,
		FinishedProvisional: f.FinishedProvisional,
		KickoffTime:         parseProviderTime(f.KickoffTime),
		Minutes:             f.Minutes,
		TeamHomeDifficulty:  f.TeamHDifficulty,
		TeamAwayDifficulty:  f.TeamADifficulty,
	}
}

func parseProviderTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			utc := parsed.UTC()
			return &utc
		}
	}
	return nil
}
