// Package cache keeps CEP validation answers in Redis.
package cache

import (
	"context"
	"errors"
	"time"

	appconfig "dl_orcamentos/internal/config"
	"dl_orcamentos/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	cepKeyPrefix  = "cep:valido:"
	defaultCEPTTL = 24 * time.Hour
)

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(cfg appconfig.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type RedisCEPCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.ICEPCache = (*RedisCEPCache)(nil)

func NewRedisCEPCache(rdb *redis.Client, ttl time.Duration) *RedisCEPCache {
	if ttl <= 0 {
		ttl = defaultCEPTTL
	}
	return &RedisCEPCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCEPCache) Get(ctx context.Context, cep string) (bool, bool, error) {
	v, err := c.rdb.Get(ctx, cepKeyPrefix+cep).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return v == "1", true, nil
}

func (c *RedisCEPCache) Set(ctx context.Context, cep string, valido bool) error {
	v := "0"
	if valido {
		v = "1"
	}
	return c.rdb.Set(ctx, cepKeyPrefix+cep, v, c.ttl).Err()
}
