package lock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lease-based lock shared by every instance using the same Redis.
// The TTL bounds how long a crashed holder blocks the key.
type Redis struct {
	client    *redis.Client
	ttl       time.Duration
	retryWait time.Duration
	log       *slog.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, log *slog.Logger) *Redis {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Redis{
		client:    client,
		ttl:       ttl,
		retryWait: 25 * time.Millisecond,
		log:       log,
	}
}

func (r *Redis) Lock(ctx context.Context, key string) (Unlock, error) {
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, unavailable(ctxErr)
			}
			return nil, unavailable(err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(r.retryWait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, unavailable(ctx.Err())
		case <-timer.C:
		}
	}

	return func() {
		// The request context may already be canceled; release on a fresh one.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := releaseScript.Run(ctx, r.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			r.log.Warn("redis lock release failed", slog.String("key", key), slog.Any("err", err))
		}
	}, nil
}
