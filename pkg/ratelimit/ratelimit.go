// Package ratelimit provides a fixed-window request limiter behind a small
// interface, so handlers depend on a capability rather than a global map.
package ratelimit

import (
	"context"
	"time"
)

// Limiter reports whether another request under key fits the current
// window. Implementations own counter expiry.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Options struct {
	MaxRequests int
	Window      time.Duration
}
