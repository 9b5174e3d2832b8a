package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTL_ExpiryAndInvalidate(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewTTL[string, int](time.Minute).WithClock(func() time.Time { return now })

	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 1)
	c.Set("b", 2)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	now = now.Add(59 * time.Second)
	_, ok = c.Get("a")
	require.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get("a")
	require.False(t, ok, "entry expires exactly at ttl")

	c.Set("a", 3)
	c.Invalidate("a")
	_, ok = c.Get("a")
	require.False(t, ok)

	c.Set("a", 4)
	c.InvalidateAll()
	_, ok = c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.False(t, ok)
}
