package server

import (
	"context"
	"sync"
	"time"

	"github.com/mj1618/hostctl/internal/model"
	"github.com/mj1618/hostctl/internal/platform"
)

// cacheEntry holds a window list with its timestamp.
type cacheEntry struct {
	windows   []model.Window
	timestamp time.Time
}

// WindowCache provides a TTL-based cache for window lists. Bridged hosts
// pay a PowerShell start-up for every enumeration, so agents that list
// and then screenshot by title benefit from reuse.
type WindowCache struct {
	mu      sync.Mutex
	entries map[platform.ListOptions]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewWindowCache creates a new cache. A ttl of 0 disables caching.
func NewWindowCache(ttl time.Duration) *WindowCache {
	return &WindowCache{
		entries: make(map[platform.ListOptions]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// ListWindows returns cached windows if within TTL, otherwise lists fresh.
// The caller must hold the provider mutex.
func (c *WindowCache) ListWindows(ctx context.Context, lister platform.WindowLister, opts platform.ListOptions) ([]model.Window, error) {
	if c.ttl <= 0 {
		return lister.ListWindows(ctx, opts)
	}

	c.mu.Lock()
	if entry, ok := c.entries[opts]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		windows := entry.windows
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := lister.ListWindows(ctx, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[opts] = cacheEntry{windows: windows, timestamp: c.now()}
	c.mu.Unlock()

	return windows, nil
}

// InvalidateAll clears the entire cache. Clicks and browser launches
// change focus and window layout.
func (c *WindowCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[platform.ListOptions]cacheEntry)
}
