package ratelimit_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/pkg/ratelimit"
)

type failingStore struct{}

func (failingStore) RecordIfAllowed(context.Context, string, time.Time, time.Duration, int, int) (bool, int64, error) {
	return false, 0, errors.New("store down")
}

func (failingStore) CountInWindow(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("store down")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/commission/calculate", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	t.Run("allows requests under the limit with headers", func(t *testing.T) {
		limiter := newMemoryLimiter(t, 2, time.Minute)
		handler := ratelimit.Middleware(limiter, ratelimit.KeyByIP())(okHandler())

		rec := doRequest(handler)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("answers 429 with Retry-After when exhausted", func(t *testing.T) {
		limiter := newMemoryLimiter(t, 1, time.Minute)
		handler := ratelimit.Middleware(limiter, ratelimit.KeyByIP())(okHandler())

		require.Equal(t, http.StatusOK, doRequest(handler).Code)

		rec := doRequest(handler)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("fails open on store errors", func(t *testing.T) {
		limiter, err := ratelimit.NewSlidingWindow(failingStore{}, 1, time.Minute)
		require.NoError(t, err)
		handler := ratelimit.Middleware(limiter, ratelimit.KeyByIP())(okHandler())

		for range 3 {
			assert.Equal(t, http.StatusOK, doRequest(handler).Code)
		}
	})

	t.Run("passes through requests without a key", func(t *testing.T) {
		limiter := newMemoryLimiter(t, 1, time.Minute)
		emptyKey := func(*http.Request) string { return "" }
		handler := ratelimit.Middleware(limiter, emptyKey)(okHandler())

		for range 3 {
			assert.Equal(t, http.StatusOK, doRequest(handler).Code)
		}
	})

	t.Run("honors skip function", func(t *testing.T) {
		limiter := newMemoryLimiter(t, 1, time.Minute)
		handler := ratelimit.Middleware(limiter, ratelimit.KeyByIP(),
			ratelimit.WithSkipFunc(func(*http.Request) bool { return true }),
		)(okHandler())

		for range 3 {
			assert.Equal(t, http.StatusOK, doRequest(handler).Code)
		}
	})

	t.Run("uses custom limit handler", func(t *testing.T) {
		limiter := newMemoryLimiter(t, 1, time.Minute)
		handler := ratelimit.Middleware(limiter, ratelimit.KeyByIP(),
			ratelimit.WithOnLimitReached(func(w http.ResponseWriter, r *http.Request, result *ratelimit.Result) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}),
		)(okHandler())

		require.Equal(t, http.StatusOK, doRequest(handler).Code)
		assert.Equal(t, http.StatusServiceUnavailable, doRequest(handler).Code)
	})

	t.Run("panics without a key function", func(t *testing.T) {
		limiter := newMemoryLimiter(t, 1, time.Minute)
		assert.Panics(t, func() {
			ratelimit.Middleware(limiter, nil)
		})
	})
}

func TestKeyByIP(t *testing.T) {
	t.Run("uses remote address", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.7:1234"
		assert.Equal(t, "192.0.2.7", ratelimit.KeyByIP()(req))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		assert.Equal(t, "203.0.113.9", ratelimit.KeyByIP()(req))
	})

	t.Run("ignores malformed forwarded headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", "not-an-ip")
		assert.Equal(t, "10.0.0.1", ratelimit.KeyByIP()(req))
	})
}

func TestComposite(t *testing.T) {
	t.Run("joins parts with a colon", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/path", nil)
		req.RemoteAddr = "192.0.2.7:1234"
		key := ratelimit.Composite(
			ratelimit.KeyByIP(),
			func(r *http.Request) string { return r.URL.Path },
		)(req)
		assert.Equal(t, "192.0.2.7:/path", key)
	})

	t.Run("hashes long keys", func(t *testing.T) {
		long := func(*http.Request) string {
			return "a-very-long-component-that-pushes-the-combined-key-over-the-cap"
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		key := ratelimit.Composite(long, long)(req)
		assert.Len(t, key, 32)
	})

	t.Run("returns empty when no part matches", func(t *testing.T) {
		empty := func(*http.Request) string { return "" }
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, ratelimit.Composite(empty)(req))
	})
}
