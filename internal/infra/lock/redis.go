package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/counsel-scheduler/internal/config"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

// releaseScript deletes the key only if it still holds our token, so an
// expired lock re-acquired by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const retryEvery = 25 * time.Millisecond

type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Fatal("failed to connect to redis", zap.Error(err))
	}
	return client
}

// NewRedisLocker holds each key for at most ttl and waits up to ttl to
// acquire it.
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &RedisLocker{client: client, ttl: ttl, wait: ttl}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, httperr.ErrOperationFailed(err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, httperr.ErrConflict("lock_timeout")
		}

		select {
		case <-ctx.Done():
			return nil, httperr.ErrOperationFailed(ctx.Err())
		case <-time.After(retryEvery):
		}
	}

	release := func() {
		// the request context may already be done
		rctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(rctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			zap.L().Warn("failed to release booking lock", zap.String("key", key), zap.Error(err))
		}
	}
	return release, nil
}
