package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yigit/sectiontrack/internal/config"
)

// Redis wraps the redis client used for shared rate-limit counters.
type Redis struct {
	Client *redis.Client
}

// NewRedis builds a client with short timeouts. It returns nil when no address
// is configured; callers treat a nil *Redis as "not in use".
func NewRedis(cfg *config.Config) *Redis {
	if cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Redis{Client: client}
}

// Healthy verifies redis connectivity.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.Client == nil {
		return false
	}
	return r.Client.Ping(ctx).Err() == nil
}

// Close releases the client connections.
func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
