package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient is what NewRedisClient needs from the driver; tests swap it.
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

const pingTimeout = 5 * time.Second

// NewRedisClient connects to addr and pings it before returning.
func NewRedisClient(ctx context.Context, addr, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
