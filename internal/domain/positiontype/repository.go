package positiontype

import "context"

type Writer interface {
	UpsertPositionType(ctx context.Context, item PositionType) error
}
