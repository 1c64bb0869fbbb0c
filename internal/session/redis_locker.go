package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/errx"
	"github.com/nikolayk812/storefront/internal/port"
	logx "github.com/nikolayk812/storefront/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still carries the owner's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	rdb redis.Cmdable
}

func NewRedisLocker(rdb redis.Cmdable) *RedisLocker {
	return &RedisLocker{rdb: rdb}
}

func (l *RedisLocker) lockKey(key string) string {
	return fmt.Sprintf("lock:%s", key)
}

// Lock acquires key for at most ttl. The lock expires on its own if the holder never unlocks.
func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (port.UnlockFunc, error) {
	lockKey := l.lockKey(key)
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		logx.Error().Err(err).Str("key", lockKey).Msg("failed to acquire lock")
		return nil, errx.WrapRedis(err)
	}
	if !ok {
		return nil, fmt.Errorf("key[%s]: %w", key, port.ErrLockHeld)
	}

	unlock := func(ctx context.Context) error {
		released, err := releaseScript.Run(ctx, l.rdb, []string{lockKey}, token).Int()
		if err != nil {
			logx.Error().Err(err).Str("key", lockKey).Msg("failed to release lock")
			return errx.WrapRedis(err)
		}
		if released == 0 {
			logx.Warn().Str("key", lockKey).Dur("ttl", ttl).Msg("lock expired before release")
		}
		return nil
	}

	return unlock, nil
}

var _ port.Locker = (*RedisLocker)(nil)
