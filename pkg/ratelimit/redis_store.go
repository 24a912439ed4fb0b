package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// recordScript atomically prunes expired members, checks the limit, and
// records n new members in one round trip. Scores and cutoffs are in
// microseconds.
var recordScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local span = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local n = tonumber(ARGV[4])
local token = ARGV[5]

redis.call('ZREMRANGEBYSCORE', key, 0, now - span)
local count = redis.call('ZCARD', key)
if count + n > limit then
	return {0, count}
end
for i = 1, n do
	redis.call('ZADD', key, now, token .. ':' .. i)
end
redis.call('PEXPIRE', key, math.ceil(span / 1000))
return {1, count + n}
`)

// RedisStore keeps sliding window state in a Redis sorted set per key, so
// multiple service instances enforce one shared window.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the default "ratelimit:" key prefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedisStore creates a Redis-backed sliding window store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreRequired
	}

	s := &RedisStore{
		client: client,
		prefix: "ratelimit:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *RedisStore) RecordIfAllowed(ctx context.Context, key string, ts time.Time, span time.Duration, limit, n int) (bool, int64, error) {
	res, err := recordScript.Run(ctx, s.client,
		[]string{s.prefix + key},
		ts.UnixMicro(),
		span.Microseconds(),
		limit,
		n,
		uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit: record script: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("ratelimit: record script returned %d values", len(res))
	}

	return res[0] == 1, res[1], nil
}

func (s *RedisStore) CountInWindow(ctx context.Context, key string, span time.Duration) (int64, error) {
	now := time.Now()
	redisKey := s.prefix + key

	cutoff := fmt.Sprintf("%d", now.Add(-span).UnixMicro())
	if err := s.client.ZRemRangeByScore(ctx, redisKey, "0", cutoff).Err(); err != nil {
		return 0, fmt.Errorf("ratelimit: prune window: %w", err)
	}

	count, err := s.client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("ratelimit: count window: %w", err)
	}
	return count, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("ratelimit: delete key: %w", err)
	}
	return nil
}
