package ratelimit

import (
	"context"
	"sync"
	"time"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a mutex-guarded TTL map. Good enough for a single
// process; use the Redis limiter when running more than one replica.
type MemoryLimiter struct {
	opts Options

	mu      sync.Mutex
	entries map[string]*windowEntry
}

func NewMemoryLimiter(opts Options) *MemoryLimiter {
	lim := &MemoryLimiter{
		opts:    opts,
		entries: make(map[string]*windowEntry),
	}
	go lim.janitor()
	return lim
}

func (lim *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	lim.mu.Lock()
	defer lim.mu.Unlock()

	entry, ok := lim.entries[key]
	if !ok || entry.resetAt.Before(now) {
		entry = &windowEntry{resetAt: now.Add(lim.opts.Window)}
		lim.entries[key] = entry
	}
	entry.count++
	return entry.count <= lim.opts.MaxRequests, nil
}

func (lim *MemoryLimiter) janitor() {
	for range time.Tick(5 * time.Minute) {
		now := time.Now()
		lim.mu.Lock()
		for key, entry := range lim.entries {
			if entry.resetAt.Before(now) {
				delete(lim.entries, key)
			}
		}
		lim.mu.Unlock()
	}
}
