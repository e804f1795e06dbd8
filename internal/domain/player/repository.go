package player

import "context"

// Writer describes player persistence needs from the sync pipeline.
type Writer interface {
	UpsertPlayer(ctx context.Context, item Player) error
	// UpdatePlayerLiveStats overwrites the live columns of an existing player.
	// It never inserts a player row.
	UpdatePlayerLiveStats(ctx context.Context, stats LiveStats) error
}
