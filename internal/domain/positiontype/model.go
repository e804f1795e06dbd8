package positiontype

// PositionType is an FPL element type (goalkeeper, defender, midfielder, forward).
type PositionType struct {
	ID                int64  `validate:"gt=0"`
	SingularName      string `validate:"required"`
	SingularNameShort string `validate:"required"`
	PluralName        string
	PluralNameShort   string
	SquadSelect       int `validate:"gte=0"`
	SquadMinPlay      int `validate:"gte=0"`
	SquadMaxPlay      int `validate:"gte=0"`
}

