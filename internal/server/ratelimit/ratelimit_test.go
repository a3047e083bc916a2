package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter builds a limiter with a controllable clock and no sweep
// goroutine.
func newTestLimiter(rules []Rule) (*Limiter, *time.Time) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := &Limiter{
		rules:   rules,
		buckets: make(map[string]*bucket),
		now:     func() time.Time { return now },
	}
	return l, &now
}

func TestBurstThenDeny(t *testing.T) {
	l, _ := newTestLimiter([]Rule{
		{Prefix: "/", Limit: 10, Window: time.Minute, Burst: 3},
	})

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("client-1", "/career/analyze")
		require.True(t, ok, "request %d within burst", i)
	}

	ok, wait := l.Allow("client-1", "/career/analyze")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
}

func TestTokensRefillOverTime(t *testing.T) {
	l, now := newTestLimiter([]Rule{
		{Prefix: "/", Limit: 60, Window: time.Minute, Burst: 1},
	})

	ok, _ := l.Allow("client-1", "/chat")
	require.True(t, ok)
	ok, _ = l.Allow("client-1", "/chat")
	require.False(t, ok)

	// One token per second at this rate.
	*now = now.Add(time.Second)
	ok, _ = l.Allow("client-1", "/chat")
	assert.True(t, ok)
}

func TestClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter([]Rule{
		{Prefix: "/", Limit: 10, Window: time.Minute, Burst: 1},
	})

	ok, _ := l.Allow("client-1", "/jobs/match")
	require.True(t, ok)
	ok, _ = l.Allow("client-1", "/jobs/match")
	require.False(t, ok)

	ok, _ = l.Allow("client-2", "/jobs/match")
	assert.True(t, ok, "second client has its own bucket")
}

func TestUnlimitedRule(t *testing.T) {
	l, _ := newTestLimiter(DefaultRules())

	for i := 0; i < 100; i++ {
		ok, _ := l.Allow("client-1", "/health")
		require.True(t, ok)
	}
}

func TestFirstMatchingRuleWins(t *testing.T) {
	l, _ := newTestLimiter([]Rule{
		{Prefix: "/chat", Limit: 2, Window: time.Minute, Burst: 2},
		{Prefix: "/", Limit: 1, Window: time.Minute, Burst: 1},
	})

	ok, _ := l.Allow("client-1", "/chat")
	require.True(t, ok)
	ok, _ = l.Allow("client-1", "/chat")
	assert.True(t, ok, "chat rule allows a burst of two")
}

func TestDropIdleRemovesStaleBuckets(t *testing.T) {
	l, now := newTestLimiter([]Rule{
		{Prefix: "/", Limit: 10, Window: time.Minute, Burst: 5},
	})

	l.Allow("client-1", "/chat")
	require.Len(t, l.buckets, 1)

	*now = now.Add(2 * time.Hour)
	l.dropIdle(time.Hour)
	assert.Empty(t, l.buckets)
}
