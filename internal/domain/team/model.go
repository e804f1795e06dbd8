package team

// Team is a Premier League club as published by the FPL reference data.
type Team struct {
	ID                  int64  `validate:"gt=0"`
	Code                int64  `validate:"gte=0"`
	Name                string `validate:"required"`
	ShortName           string `validate:"required"`
	Strength            int
	StrengthOverallHome int
	StrengthOverallAway int
	StrengthAttackHome  int
	StrengthAttackAway  int
	StrengthDefenceHome int
	StrengthDefenceAway int
}

