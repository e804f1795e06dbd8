package team

import "context"

// Writer describes team persistence needs from the sync pipeline.
type Writer interface {
	UpsertTeam(ctx context.Context, item Team) error
}
