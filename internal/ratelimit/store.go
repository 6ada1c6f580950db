package ratelimit

import (
	"context"
	"time"
)

// Entry is the quota state tracked for one client identity.
type Entry struct {
	Count   int64
	ResetAt time.Time
}

// Store is the quota table behind the limiter. The in-memory implementation
// is the default; the redis one shares counts across instances.
type Store interface {
	// Get returns the current entry for key, if one exists.
	Get(ctx context.Context, key string) (Entry, bool, error)

	// IncrementOrReset bumps the counter for key, starting a fresh window
	// when none exists or the previous one has elapsed. It returns the
	// entry after the update.
	IncrementOrReset(ctx context.Context, key string, window time.Duration, now time.Time) (Entry, error)
}
