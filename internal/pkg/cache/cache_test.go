package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCache(client), mr
}

func TestSaveAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, c.Save(ctx, "k1", payload{Name: "drill"}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "k1", &got))
	assert.Equal(t, "drill", got.Name)
}

func TestGetMissingKey(t *testing.T) {
	c, _ := newTestCache(t)

	var got string
	err := c.Get(context.Background(), "absent", &got)
	assert.True(t, errors.Is(err, Nil))
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "k1", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k1"))

	var got string
	assert.True(t, errors.Is(c.Get(ctx, "k1", &got), Nil))
}

func TestClearPrefix(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "search:a", "v1", time.Minute))
	require.NoError(t, c.Save(ctx, "search:b", "v2", time.Minute))
	require.NoError(t, c.Save(ctx, "other:c", "v3", time.Minute))

	require.NoError(t, c.Clear(ctx, "search:"))

	var got string
	assert.True(t, errors.Is(c.Get(ctx, "search:a", &got), Nil))
	assert.True(t, errors.Is(c.Get(ctx, "search:b", &got), Nil))
	assert.NoError(t, c.Get(ctx, "other:c", &got))
}

func TestExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "k1", "v", time.Second))
	mr.FastForward(2 * time.Second)

	var got string
	assert.True(t, errors.Is(c.Get(ctx, "k1", &got), Nil))
}
