package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/amlakhub/amlak-api/internal/storage"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "quota:"

// RedisStore backs the quota table with a shared key-value cache so multiple
// server instances enforce one combined quota. Window boundaries come from
// the key TTL: the first increment of a window sets it, later increments
// inherit it.
type RedisStore struct {
	redis *storage.RedisClient
}

func NewRedisStore(redis *storage.RedisClient) *RedisStore {
	return &RedisStore{redis: redis}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	val, err := s.redis.Get(ctx, redisKeyPrefix+key)
	if err == redis.Nil {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return Entry{}, false, err
	}

	ttl, err := s.redis.TTL(ctx, redisKeyPrefix+key)
	if err != nil {
		return Entry{}, false, err
	}

	return Entry{Count: count, ResetAt: time.Now().Add(ttl)}, true, nil
}

func (s *RedisStore) IncrementOrReset(ctx context.Context, key string, window time.Duration, now time.Time) (Entry, error) {
	redisKey := redisKeyPrefix + key

	count, err := s.redis.Incr(ctx, redisKey)
	if err != nil {
		return Entry{}, err
	}

	if count == 1 {
		if err := s.redis.Expire(ctx, redisKey, window); err != nil {
			return Entry{}, err
		}
		return Entry{Count: count, ResetAt: now.Add(window)}, nil
	}

	ttl, err := s.redis.TTL(ctx, redisKey)
	if err != nil || ttl <= 0 {
		// Key survived without a TTL (e.g. expire failed earlier); re-arm it.
		s.redis.Expire(ctx, redisKey, window)
		ttl = window
	}

	return Entry{Count: count, ResetAt: now.Add(ttl)}, nil
}
