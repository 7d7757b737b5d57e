package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGetRoundtrip(t *testing.T) {
	c := New(true)
	data := []byte(`{"rounds":[]}`)

	etag := c.Set("rounds:140:2025", data, time.Minute)
	require.NotEmpty(t, etag)

	got, gotETag, ok := c.Get("rounds:140:2025")
	require.True(t, ok)
	require.Equal(t, data, got)
	require.Equal(t, etag, gotETag)
}

func TestGetMissesUnknownKey(t *testing.T) {
	c := New(true)
	_, _, ok := c.Get("nope")
	require.False(t, ok)
}

func TestGetMissesExpiredEntry(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)
	_, _, ok := c.Get("k")
	require.False(t, ok)
}

func TestDisabledCacheNeverStores(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	// Disabled cache still hands back a usable ETag for the response.
	require.NotEmpty(t, etag)

	_, _, ok := c.Get("k")
	require.False(t, ok)
}

func TestComputeETagIsStableAndWeak(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	other := ComputeETag([]byte("different"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, other)
	require.Regexp(t, `^W/"[0-9a-f]{16}"$`, a)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))

	require.True(t, CheckETagMatch(etag, etag))
	require.True(t, CheckETagMatch("*", etag))
	require.False(t, CheckETagMatch("", etag))
	require.False(t, CheckETagMatch(`W/"other"`, etag))
}

func TestStats(t *testing.T) {
	c := New(true)
	c.Set("fresh", []byte("v"), time.Minute)
	c.Set("stale", []byte("v"), -time.Second)

	stats := c.Stats()
	require.Equal(t, true, stats["enabled"])
	require.Equal(t, 2, stats["total_keys"])
	require.Equal(t, 1, stats["active_keys"])
	require.Equal(t, 1, stats["expired_keys"])
}
