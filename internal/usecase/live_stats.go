package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/riskibarqy/fpl-livesync/internal/domain/player"
	"github.com/shopspring/decimal"
)

// ParseLiveStats maps one raw live element onto the player's live columns.
// Integer fields default to zero when absent or null and fail the row when
// present with a non-integer value. Decimal fields fall back to zero.
func ParseLiveStats(gameweekID int64, element ExternalLiveElement) (player.LiveStats, error) {
	if element.ID <= 0 {
		return player.LiveStats{}, fmt.Errorf("%w: live element id must be greater than zero", ErrMalformedRecord)
	}

	out := player.LiveStats{
		PlayerID:   element.ID,
		GameweekID: gameweekID,
		Influence:  decimalField(element.Stats, "influence"),
		Creativity: decimalField(element.Stats, "creativity"),
		Threat:     decimalField(element.Stats, "threat"),
		ICTIndex:   decimalField(element.Stats, "ict_index"),
	}

	ints := []struct {
		key    string
		target *int
	}{
		{"minutes", &out.Minutes},
		{"goals_scored", &out.GoalsScored},
		{"assists", &out.Assists},
		{"yellow_cards", &out.YellowCards},
		{"red_cards", &out.RedCards},
		{"saves", &out.Saves},
		{"bonus", &out.Bonus},
		{"bps", &out.BPS},
		{"total_points", &out.EventPoints},
	}
	for _, field := range ints {
		value, err := intField(element.Stats, field.key)
		if err != nil {
			return player.LiveStats{}, err
		}
		*field.target = value
	}

	return out, nil
}

func intField(stats map[string]any, key string) (int, error) {
	raw, ok := stats[key]
	if !ok || raw == nil {
		return 0, nil
	}

	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrMalformedRecord, key, v.String())
		}
		return int(n), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s=%v is not an integer", ErrMalformedRecord, key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s has unexpected type %T", ErrMalformedRecord, key, raw)
	}
}

func decimalField(stats map[string]any, key string) decimal.Decimal {
	switch v := stats[key].(type) {
	case string:
		return ParseDecimal(v)
	case json.Number:
		return ParseDecimal(v.String())
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// ParseDecimal parses source decimal text, returning zero when it cannot.
func ParseDecimal(value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero
	}
	out, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return out
}
