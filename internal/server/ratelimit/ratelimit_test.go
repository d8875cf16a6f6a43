package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		assert.True(t, bucket.allow(), "request %d", i+1)
	}
	assert.False(t, bucket.allow(), "bucket should be empty")
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(2, 20.0) // one token every 50ms

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())

	time.Sleep(80 * time.Millisecond)

	assert.True(t, bucket.allow(), "one token should have refilled")
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)
	for i := 0; i < 5; i++ {
		bucket.allow()
	}

	remaining, resetTime := bucket.getStatus()
	assert.Equal(t, 5, remaining)
	assert.True(t, resetTime.After(time.Now()))

	full := newTokenBucket(3, 1.0)
	remaining, resetTime = full.getStatus()
	assert.Equal(t, 3, remaining)
	assert.False(t, resetTime.After(time.Now()), "a full bucket resets now")
}

func TestLimiter_DefaultLimit(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 3, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/projects", "GET")
		require.True(t, allowed)
		assert.Equal(t, 3, info.Limit)
		assert.Equal(t, 2-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/projects", "GET")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))

	// Different client has its own bucket.
	allowed, _ = limiter.Allow("127.0.0.2", "/projects", "GET")
	assert.True(t, allowed)
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/projects", "GET")
		assert.True(t, allowed)
	}

	allowed, _ := limiter.Allow("10.0.0.2", "/projects", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false, DefaultLimit: 1})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/intake", "POST")
		assert.True(t, allowed)
	}
	assert.Zero(t, limiter.Buckets())
}

func TestLimiter_GenerationEndpointsShareBucketAcrossProjects(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/projects/*/proposals", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/projects/a/proposals", "POST")
	require.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = limiter.Allow("127.0.0.1", "/projects/b/proposals", "POST")
	require.True(t, allowed)

	allowed, _ = limiter.Allow("127.0.0.1", "/projects/c/proposals", "POST")
	assert.False(t, allowed, "project ids must not open fresh buckets")

	// Listing proposals is a GET and falls back to the default limit.
	allowed, info = limiter.Allow("127.0.0.1", "/projects/a/proposals", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)

	assert.Equal(t, 2, limiter.Buckets())
}

func TestLimiter_Burst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/intake", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/intake", "POST")
		assert.True(t, allowed, "burst request %d", i+1)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/intake", "POST")
	assert.False(t, allowed)
}

func TestLimiter_UnlimitedPaths(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET")
		assert.True(t, allowed)
		allowed, _ = limiter.Allow("127.0.0.1", "/metrics", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})
	defer limiter.Stop()

	var allowedCount atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/projects", "GET"); allowed {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), allowedCount.Load())
}

func TestLimiter_CleanupBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 4; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/projects", "GET")
	}
	require.Equal(t, 4, limiter.Buckets())

	limiter.cleanupBuckets(time.Now().Add(-time.Hour))
	assert.Equal(t, 4, limiter.Buckets(), "recent buckets survive")

	limiter.cleanupBuckets(time.Now().Add(time.Second))
	assert.Zero(t, limiter.Buckets())
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, CleanupInterval: time.Millisecond})
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/projects", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs(10)

	tests := []struct {
		name   string
		path   string
		method string
		want   string
	}{
		{name: "intake", path: "/intake", method: "POST", want: "/intake"},
		{name: "proposal", path: "/projects/42/proposals", method: "POST", want: "/projects/*/proposals"},
		{name: "stream", path: "/projects/42/proposals/stream", method: "POST", want: "/projects/*/proposals/stream"},
		{name: "toggle", path: "/projects/42/status/toggle", method: "POST", want: "/projects/*/status/toggle"},
		{name: "wrong method", path: "/projects/42/proposals", method: "GET", want: ""},
		{name: "empty segment", path: "/projects//proposals", method: "POST", want: ""},
		{name: "extra segment", path: "/projects/42/proposals/x/y", method: "POST", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Path)
		})
	}
}

func TestMatchEndpoint_Prefix(t *testing.T) {
	configs := []EndpointConfig{{Path: "/admin/", Method: "GET", Limit: 1, Window: time.Minute}}

	got := MatchEndpoint("/admin/anything/here", "GET", configs)
	require.NotNil(t, got)
	assert.Equal(t, "/admin/", got.Path)
}

func TestMatchEndpoint_Unlimited(t *testing.T) {
	got := MatchEndpoint("/health", "GET", DefaultEndpointConfigs(10))
	require.NotNil(t, got)
	assert.Zero(t, got.Limit)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("STUDIO_RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("STUDIO_RATE_LIMIT_GENERATION_PER_HOUR", "7")
	t.Setenv("STUDIO_RATE_LIMIT_WHITELIST", " 10.0.0.1 , ,10.0.0.2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true}, cfg.Whitelist)

	intake := MatchEndpoint("/intake", "POST", cfg.EndpointConfigs)
	require.NotNil(t, intake)
	assert.Equal(t, 7, intake.Limit)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("STUDIO_RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
