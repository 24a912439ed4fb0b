package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sliding window state in process memory. Suitable for
// single-instance deployments and tests; multi-instance deployments should
// use RedisStore so all replicas share one window.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	cleanupOnce     sync.Once
}

type window struct {
	timestamps []time.Time
	// longest window observed for this key, used by the cleanup loop
	span time.Duration
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often fully-expired keys are evicted.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

// NewMemoryStore creates an in-memory store with a background cleanup loop.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows:         make(map[string]*window),
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()

	return s
}

// Close stops the background cleanup loop. Safe for repeated calls.
func (s *MemoryStore) Close() {
	s.cleanupOnce.Do(func() { close(s.stopCleanup) })
}

func (s *MemoryStore) RecordIfAllowed(ctx context.Context, key string, ts time.Time, span time.Duration, limit, n int) (bool, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, exists := s.windows[key]
	if !exists {
		w = &window{}
		s.windows[key] = w
	}
	if span > w.span {
		w.span = span
	}

	w.prune(ts, span)

	count := int64(len(w.timestamps))
	if count+int64(n) > int64(limit) {
		return false, count, nil
	}

	for range n {
		w.timestamps = append(w.timestamps, ts)
	}
	return true, count + int64(n), nil
}

func (s *MemoryStore) CountInWindow(ctx context.Context, key string, span time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, exists := s.windows[key]
	if !exists {
		return 0, nil
	}

	w.prune(time.Now(), span)
	return int64(len(w.timestamps)), nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)
	return nil
}

// prune drops timestamps older than the window ending at now.
// Timestamps are appended in order, so the slice stays sorted.
func (w *window) prune(now time.Time, span time.Duration) {
	cutoff := now.Add(-span)
	i := 0
	for i < len(w.timestamps) && !w.timestamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.timestamps = append(w.timestamps[:0], w.timestamps[i:]...)
	}
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCleanup:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for key, w := range s.windows {
				w.prune(now, w.span)
				if len(w.timestamps) == 0 {
					delete(s.windows, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
