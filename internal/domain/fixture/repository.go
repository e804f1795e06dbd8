package fixture

import "context"

// Writer exposes fixture write operations.
type Writer interface {
	UpsertFixture(ctx context.Context, item Fixture) error
}
