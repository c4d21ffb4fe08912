package app

import (
	"context"
	"time"

	"github.com/five82/cocktaildb"
	"github.com/five82/cocktaildb/internal/state"
)

const defaultPollInterval = 30 * time.Second

// featuredSource supplies the drink shown in the browser header.
type featuredSource interface {
	Random(ctx context.Context) cocktaildb.Drink
}

// StartPoller launches a background goroutine that refreshes the featured
// drink at a fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, source featuredSource, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refresh(ctx, store, source)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, source featuredSource) {
	if ctx.Err() != nil {
		return
	}
	store.Update(source.Random(ctx))
}
