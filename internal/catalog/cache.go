package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Status of a fetch attempt as the UI sees it.
type Status string

const (
	StatusLoading Status = "loading"
	StatusOK      Status = "ok"
	StatusError   Status = "error"
)

// Snapshot is one coherent view of the catalog. Pages render from a
// snapshot and cart reconciliation looks products up in the snapshot that
// was current at submit time, so a reload overlapping a cart edit cannot
// mix data from two catalog versions.
type Snapshot struct {
	Status    Status
	Products  []Product
	Err       error
	FetchedAt time.Time

	byID map[string]Product
}

// Lookup resolves a product id within this snapshot.
func (s Snapshot) Lookup(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Cache keeps the latest catalog snapshot and refreshes it in the
// background. It starts out loading; the first completed refresh flips it
// to ok or error.
type Cache struct {
	client   *Client
	interval time.Duration
	logger   *slog.Logger

	mu   sync.RWMutex
	snap Snapshot
}

func NewCache(client *Client, interval time.Duration, logger *slog.Logger) *Cache {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Cache{
		client:   client,
		interval: interval,
		logger:   logger,
		snap:     Snapshot{Status: StatusLoading},
	}
}

// Snapshot returns the current catalog view.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Refresh fetches the catalog once and replaces the snapshot. A failed
// refresh only degrades the snapshot to error when there is no previous
// good data to keep serving.
func (c *Cache) Refresh(ctx context.Context) error {
	products, err := c.client.FetchAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if c.snap.Status == StatusOK {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "catalog_refresh_failed_keeping_stale",
				slog.Any("err", err),
				slog.Time("fetched_at", c.snap.FetchedAt),
			)
			return err
		}
		c.snap = Snapshot{Status: StatusError, Err: err}
		return err
	}

	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	c.snap = Snapshot{
		Status:    StatusOK,
		Products:  products,
		FetchedAt: time.Now(),
		byID:      byID,
	}
	return nil
}

// Run refreshes immediately, then on every interval tick until ctx ends.
func (c *Cache) Run(ctx context.Context) error {
	if err := c.Refresh(ctx); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelError, "catalog_initial_fetch_failed", slog.Any("err", err))
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.logger.LogAttrs(ctx, slog.LevelError, "catalog_refresh_failed", slog.Any("err", err))
			}
		}
	}
}
