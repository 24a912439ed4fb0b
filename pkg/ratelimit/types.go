package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request may proceed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is when the window frees up again.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter is the interface rate limiting implementations satisfy.
type Limiter interface {
	// Allow checks if a single request is allowed for the given key,
	// consuming one slot when it is.
	Allow(ctx context.Context, key string) (*Result, error)

	// AllowN checks if n requests are allowed for the given key,
	// consuming n slots when they are.
	AllowN(ctx context.Context, key string, n int) (*Result, error)

	// Status reports the current state for the given key without consuming
	// any slots.
	Status(ctx context.Context, key string) (*Result, error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}

// Store is the storage backend for the sliding window limiter.
type Store interface {
	// RecordIfAllowed atomically checks whether n more requests fit under
	// limit within the window ending at ts, records them when they do, and
	// returns the decision with the resulting in-window count.
	RecordIfAllowed(ctx context.Context, key string, ts time.Time, window time.Duration, limit, n int) (allowed bool, count int64, err error)

	// CountInWindow returns the number of requests recorded within the
	// window.
	CountInWindow(ctx context.Context, key string, window time.Duration) (int64, error)

	// Delete removes all state for the given key.
	Delete(ctx context.Context, key string) error
}
