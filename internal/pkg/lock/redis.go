package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/yigit/coursereg/internal/pkg/logger"
)

const (
	defaultRedisTTL   = 5 * time.Second
	defaultRedisRetry = 25 * time.Millisecond
	redisKeyPrefix    = "coursereg:lock:"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another replica is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisClient is the part of *redis.Client the locker uses
type RedisClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// RedisLocker is a Locker shared by every replica that talks to the same Redis.
// A held key expires after TTL so a crashed holder cannot block a student forever.
type RedisLocker struct {
	client RedisClient
	ttl    time.Duration
	retry  time.Duration
}

// NewRedisLocker creates a RedisLocker. Zero durations fall back to defaults.
func NewRedisLocker(client RedisClient, ttl, retry time.Duration) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttl <= 0 {
		ttl = defaultRedisTTL
	}
	if retry <= 0 {
		retry = defaultRedisRetry
	}
	return &RedisLocker{client: client, ttl: ttl, retry: retry}, nil
}

// Lock implements Locker
func (l *RedisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()

	for {
		acquired, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", redisKey, err)
		}
		if acquired {
			break
		}

		timer := time.NewTimer(l.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be cancelled when the work finishes.
			releaseCtx, cancel := context.WithTimeout(context.Background(), l.ttl)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
				logger.Warn().Err(err).Str("key", redisKey).Msg("Failed to release redis lock")
			}
		})
	}, nil
}
