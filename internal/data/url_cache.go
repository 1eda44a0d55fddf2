package data

import (
	"context"
	"time"

	"shortly/internal/conf"
	"shortly/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

const urlCachePrefix = "url:"

// Compile-time interface checks
var (
	_ domain.URLCache = (*RedisURLCache)(nil)
	_ domain.URLCache = (*noopURLCache)(nil)
)

// RedisURLCache implements domain.URLCache on Redis. Every operation is
// bounded by a short timeout; timeouts and errors degrade to misses so the
// redirect path never depends on cache health.
type RedisURLCache struct {
	rdb       *redis.Client
	ttl       time.Duration
	opTimeout time.Duration
	log       *log.Helper
}

// NewURLCache creates the resolution cache. Returns a no-op cache when
// Redis is not available.
func NewURLCache(data *Data, c *conf.Data, logger log.Logger) domain.URLCache {
	if data.rdb == nil {
		return &noopURLCache{}
	}
	return &RedisURLCache{
		rdb:       data.rdb,
		ttl:       c.Redis.CacheTTLOrDefault(),
		opTimeout: c.Redis.OpTimeoutOrDefault(),
		log:       log.NewHelper(logger),
	}
}

func cacheKey(code string) string {
	return urlCachePrefix + code
}

// Get returns the cached long URL for a short code.
func (c *RedisURLCache) Get(ctx context.Context, code string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	val, err := c.rdb.Get(ctx, cacheKey(code)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.WithContext(ctx).Warnf("cache get %q: %v", code, err)
		}
		return "", false
	}
	return val, true
}

// Set stores a code to long URL entry under the fixed TTL.
func (c *RedisURLCache) Set(ctx context.Context, code, longURL string) {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.rdb.Set(ctx, cacheKey(code), longURL, c.ttl).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("cache set %q: %v", code, err)
	}
}

// Delete removes an entry.
func (c *RedisURLCache) Delete(ctx context.Context, code string) {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.rdb.Del(ctx, cacheKey(code)).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("cache delete %q: %v", code, err)
	}
}

// noopURLCache is used when Redis is not configured; every lookup is a miss.
type noopURLCache struct{}

func (c *noopURLCache) Get(context.Context, string) (string, bool) { return "", false }

func (c *noopURLCache) Set(context.Context, string, string) {}

func (c *noopURLCache) Delete(context.Context, string) {}
