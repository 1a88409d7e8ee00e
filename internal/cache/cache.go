package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/restaurant-booking/internal/config"
)

// Store é o que os handlers enxergam do cache
type Store interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, val any)
	Del(ctx context.Context, keys ...string)
}

// Cache fino sobre Redis. Sem REDIS_ADDR o cache fica desligado e
// toda leitura cai direto no banco.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*Cache)(nil)

func New(cfg *config.Config) *Cache {
	if cfg.RedisAddr == "" {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return &Cache{
		client: client,
		ttl:    cfg.MenuCacheTTL,
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, val any) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if !c.Enabled() {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache del error:", err)
	}
}
