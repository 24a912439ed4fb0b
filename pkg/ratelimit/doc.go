// Package ratelimit provides a sliding window rate limiter with pluggable
// storage and HTTP middleware.
//
// The limiter records individual request timestamps within a moving window,
// giving accurate limits at window boundaries. Two Store implementations are
// provided: MemoryStore for single-instance deployments and tests, and
// RedisStore (sorted set per key, pruned and checked atomically with a Lua
// script) for deployments where replicas must share one window.
//
// # Usage
//
//	store, err := ratelimit.NewRedisStore(redisClient)
//	if err != nil {
//	    return err
//	}
//	limiter, err := ratelimit.NewSlidingWindow(store, 30, time.Minute)
//	if err != nil {
//	    return err
//	}
//
//	r.Use(ratelimit.Middleware(limiter, ratelimit.KeyByIP()))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining, and
// X-RateLimit-Reset on every limited response and answers 429 with a
// Retry-After header when the window is full. Store failures fail open:
// requests pass through unlimited rather than erroring.
package ratelimit
