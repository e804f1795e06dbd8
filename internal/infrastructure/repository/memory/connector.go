package memory

import (
	"context"
	"sync/atomic"

	"github.com/riskibarqy/fpl-livesync/internal/usecase"
)

// Connector hands the same Store to every run, mirroring a database that
// outlives the process.
type Connector struct {
	store *Store
	opens atomic.Int64
}

func NewConnector(store *Store) *Connector {
	if store == nil {
		store = NewStore()
	}
	return &Connector{store: store}
}

func (c *Connector) Connect(ctx context.Context) (usecase.SyncStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.opens.Add(1)
	return c.store, nil
}

func (c *Connector) Store() *Store {
	return c.store
}

// Opens reports how many times a run acquired the store.
func (c *Connector) Opens() int64 {
	return c.opens.Load()
}
