package monitoring

import (
	"context"
	"log/slog"
	"time"
)

const DefaultJanitorInterval = 60 * time.Second

// Evictor drops idle entries and reports how many it removed.
type Evictor interface {
	EvictIdle() int
}

// RunSessionJanitor evicts idle sessions every interval until ctx is done.
func RunSessionJanitor(ctx context.Context, store Evictor, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("[Janitor] Stopped")
			return
		case <-ticker.C:
			if n := store.EvictIdle(); n > 0 {
				slog.Info("[Janitor] Evicted idle sessions", slog.Int("count", n))
			}
		}
	}
}
