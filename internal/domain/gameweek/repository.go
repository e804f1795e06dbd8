package gameweek

import "context"

type Writer interface {
	UpsertGameweek(ctx context.Context, item Gameweek) error
}
