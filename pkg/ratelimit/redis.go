package ratelimit

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests in Redis with a per-key TTL, sharing the
// window across replicas.
type RedisLimiter struct {
	client *redis.Client
	opts   Options
}

func NewRedisLimiter(client *redis.Client, opts Options) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		opts:   opts,
	}
}

func (lim *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := lim.client.Incr(ctx, key).Result()
	if err != nil {
		return false, errors.New("incrementing rate limit counter error: " + err.Error())
	}
	if count == 1 {
		if err := lim.client.Expire(ctx, key, lim.opts.Window).Err(); err != nil {
			return false, errors.New("setting rate limit window error: " + err.Error())
		}
	}
	return count <= int64(lim.opts.MaxRequests), nil
}
