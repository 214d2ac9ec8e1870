package runlock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const lockKey = "ad-state-sync:fleet-run-lock"

// Locker garante que uma única passada de frota rode por vez entre réplicas.
type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// RedisLocker implementa o lock com SETNX + TTL. O TTL protege contra locks
// órfãos quando uma réplica morre no meio da passada.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(redisURL string, ttlSeconds int) (Locker, error) {
	if redisURL == "" {
		logrus.Info("sync: redis url not configured, fleet run lock disabled")
		return noopLocker{}, nil
	}

	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	if ttlSeconds <= 0 {
		ttlSeconds = 1800
	}

	return &RedisLocker{
		client: redis.NewClient(options),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (l *RedisLocker) Acquire(ctx context.Context) (bool, error) {
	acquired, err := l.client.SetNX(ctx, lockKey, time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
	if err != nil {
		return false, err
	}
	return acquired, nil
}

func (l *RedisLocker) Release(ctx context.Context) error {
	return l.client.Del(ctx, lockKey).Err()
}

// noopLocker é usado quando não há Redis configurado: instância única assume
// que não há concorrência entre réplicas.
type noopLocker struct{}

func (noopLocker) Acquire(context.Context) (bool, error) { return true, nil }
func (noopLocker) Release(context.Context) error         { return nil }
