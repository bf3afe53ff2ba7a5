package locking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auction-marketplace/internal/biddingerrors"
	"auction-marketplace/utils"

	"github.com/redis/go-redis/v9"
)

// unlockLua deletes the key only when it still carries the caller's token.
const unlockLua = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects and pings.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// RedisLocker is a Locker shared by every instance talking to the same Redis.
// A lock expires after ttl so a crashed holder cannot wedge a product.
type RedisLocker struct {
	rdb      redis.Cmdable
	unlockSc *redis.Script
	ttl      time.Duration
	wait     time.Duration
	retry    time.Duration
}

func NewRedisLocker(rdb redis.Cmdable, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		rdb:      rdb,
		unlockSc: redis.NewScript(unlockLua),
		ttl:      ttl,
		wait:     wait,
		retry:    25 * time.Millisecond,
	}
}

func redisKey(key string) string {
	return "auction:lock:" + key
}

// Lock retries SET NX until it wins, wait elapses or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	token := utils.GenerateID()
	rk := redisKey(key)

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	for {
		ok, err := l.rdb.SetNX(ctx, rk, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("redis: lock %s: %w", key, biddingerrors.ErrLockHeld)
			}
			return nil, fmt.Errorf("redis: acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("redis: lock %s: %w", key, biddingerrors.ErrLockHeld)
		case <-time.After(l.retry):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// the caller's context may already be cancelled
			unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := l.unlockSc.Run(unlockCtx, l.rdb, []string{rk}, token).Err(); err != nil {
				utils.Warn("redis: release lock failed", map[string]any{"key": key, "error": err.Error()})
			}
		})
	}, nil
}

var _ Locker = (*RedisLocker)(nil)
