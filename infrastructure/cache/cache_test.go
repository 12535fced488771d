package cache

import (
	"TUI_viral_topics/infrastructure/logger"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Key("search", "q=golang"), Key("search", "q=golang"))
	})

	t.Run("different inputs differ", func(t *testing.T) {
		assert.NotEqual(t, Key("search", "q=golang"), Key("search", "q=rust"))
	})

	t.Run("hides credential", func(t *testing.T) {
		k := Key("https://example.test/search", "key=secret-api-key")
		assert.True(t, strings.HasPrefix(k, "vt:"))
		assert.NotContains(t, k, "secret")
	})
}

func TestGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewRequestCache(ctx, Options{TTL: time.Minute}, logger.Discard())
	key := Key("test", "round-trip")

	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	c.Set(ctx, key, []byte(`{"items":[]}`))

	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.JSONEq(t, `{"items":[]}`, string(got))

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestExpiration(t *testing.T) {
	ctx := context.Background()
	c := NewRequestCache(ctx, Options{TTL: 5 * time.Millisecond}, logger.Discard())
	key := Key("test", "expiry")

	c.Set(ctx, key, []byte("{}"))
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get(ctx, key)
	assert.False(t, ok, "expected miss after TTL")
}

func TestEviction(t *testing.T) {
	ctx := context.Background()
	c := NewRequestCache(ctx, Options{TTL: time.Minute, MaxEntries: 3}, logger.Discard())

	for i := 0; i < 5; i++ {
		c.Set(ctx, Key("evict", fmt.Sprintf("item-%d", i)), []byte("{}"))
	}

	assert.Equal(t, 3, c.Len())
	_, ok := c.Get(ctx, Key("evict", "item-0"))
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = c.Get(ctx, Key("evict", "item-4"))
	assert.True(t, ok)
}

func TestInvalidRedisURLFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	c := NewRequestCache(ctx, Options{RedisURL: "not a url"}, logger.Discard())
	defer c.Close()

	c.Set(ctx, "k", []byte("{}"))
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)
}
