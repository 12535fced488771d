package cache

import (
	"TUI_viral_topics/internal/core/ports"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL        = 10 * time.Minute
	DefaultMaxEntries = 512
	keyPrefix         = "vt:"
)

// RequestCache memoizes raw API responses: L1 is an in-process expirable LRU,
// L2 is an optional Redis shared between processes. Both honor the same TTL.
type RequestCache struct {
	l1     *expirable.LRU[string, []byte]
	rdb    *redis.Client
	ttl    time.Duration
	log    ports.LoggerPort
	hits   atomic.Int64
	misses atomic.Int64
}

type Options struct {
	TTL        time.Duration
	MaxEntries int
	RedisURL   string
}

func NewRequestCache(ctx context.Context, opts Options, log ports.LoggerPort) *RequestCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}

	c := &RequestCache{
		l1:  expirable.NewLRU[string, []byte](opts.MaxEntries, nil, opts.TTL),
		ttl: opts.TTL,
		log: log,
	}

	if opts.RedisURL != "" {
		c.rdb = connectRedis(ctx, opts.RedisURL, log)
	}

	log.Info(fmt.Sprintf("request cache ready (ttl=%s, max_entries=%d, redis=%t)", opts.TTL, opts.MaxEntries, c.rdb != nil))
	return c
}

func connectRedis(ctx context.Context, redisURL string, log ports.LoggerPort) *redis.Client {
	redisOpts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Error("invalid redis URL, L2 cache disabled", err)
		return nil
	}

	rdb := redis.NewClient(redisOpts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Error("redis unreachable, L2 cache disabled", err)
		_ = rdb.Close()
		return nil
	}

	log.Info("L2 redis cache connected at " + redisOpts.Addr)
	return rdb
}

// Key hashes the request signature so credentials never end up in a key.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%s%x", keyPrefix, sum[:16])
}

func (c *RequestCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if data, ok := c.l1.Get(key); ok {
		c.hits.Add(1)
		return data, true
	}

	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			c.hits.Add(1)
			c.l1.Add(key, data)
			return data, true
		}
		if !errors.Is(err, redis.Nil) {
			c.log.Error("L2 cache get failed", err)
		}
	}

	c.misses.Add(1)
	return nil, false
}

func (c *RequestCache) Set(ctx context.Context, key string, data []byte) {
	c.l1.Add(key, data)

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Error("L2 cache set failed", err)
		}
	}
}

func (c *RequestCache) Len() int {
	return c.l1.Len()
}

func (c *RequestCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *RequestCache) Close() error {
	c.l1.Purge()
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}
