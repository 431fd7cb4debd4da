package cache_fx

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"tripweaver/internal/config"
	"tripweaver/pkg/cache"
)

var Module = fx.Provide(provideCacheStore)

func provideCacheStore(cfg *config.Config) cache.Store {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, using in-memory cache")
		return cache.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	return cache.NewRedisStore(client)
}
