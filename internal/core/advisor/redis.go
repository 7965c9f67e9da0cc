package advisor

import (
	"context"
	"fmt"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisCache is the Redis-backed TipCache, for deployments where tips should
// survive a process restart.
type RedisCache struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg *config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{
		client: client,
		config: cfg,
	}, nil
}

// Get returns the cached tip for prompt, or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, prompt string) (string, error) {
	val, err := c.client.Get(ctx, c.key(prompt)).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", prompt)
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cached tip: %w", err)
	}
	common.LogCacheHit("redis", prompt)
	return val, nil
}

// Set stores a tip for prompt with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, prompt, value string) error {
	if err := c.client.Set(ctx, c.key(prompt), value, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache tip: %w", err)
	}
	return nil
}

func (c *RedisCache) key(prompt string) string {
	return "tips:" + hashPrompt(prompt)
}

// Stats reports the backend identity; counters live in Redis itself.
func (c *RedisCache) Stats() map[string]interface{} {
	return map[string]interface{}{
		"backend": "redis",
		"addr":    c.config.RedisAddr,
	}
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
