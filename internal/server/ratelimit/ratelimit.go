// Package ratelimit throttles API clients with per-client token buckets.
// Model-backed endpoints are expensive, so they get tighter limits than
// plain conversation traffic.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Rule limits requests whose path starts with Prefix. A Limit of zero or
// less means unlimited. Rules are matched in order, first match wins.
type Rule struct {
	Prefix string
	Limit  int
	Window time.Duration
	Burst  int
}

// DefaultRules returns the endpoint tiers for the coaching API. Analysis
// endpoints hit the model once per request and get the strictest budget.
func DefaultRules() []Rule {
	return []Rule{
		{Prefix: "/health", Limit: 0},
		{Prefix: "/chat", Limit: 30, Window: time.Minute, Burst: 10},
		{Prefix: "/interview/", Limit: 30, Window: time.Minute, Burst: 10},
		{Prefix: "/", Limit: 10, Window: time.Minute, Burst: 5},
	}
}

type bucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter tracks one token bucket per client and matched rule.
type Limiter struct {
	rules []Rule

	mu      sync.Mutex
	buckets map[string]*bucket

	now  func() time.Time
	stop chan struct{}
}

// New creates a limiter and starts a background sweep that drops buckets
// idle for over an hour. Call Stop when done.
func New(rules []Rule) *Limiter {
	l := &Limiter{
		rules:   rules,
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow reports whether a request from clientID to path may proceed. When
// denied it also returns how long the client should wait before retrying.
func (l *Limiter) Allow(clientID, path string) (bool, time.Duration) {
	rule, ok := l.match(path)
	if !ok || rule.Limit <= 0 {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	key := clientID + ":" + rule.Prefix
	b, exists := l.buckets[key]
	if !exists {
		capacity := rule.Burst
		if capacity <= 0 {
			capacity = rule.Limit
		}
		b = &bucket{
			tokens:     float64(capacity),
			capacity:   float64(capacity),
			refillRate: float64(rule.Limit) / rule.Window.Seconds(),
			lastRefill: now,
		}
		l.buckets[key] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
	b.lastAccess = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	wait := time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
	return false, wait
}

// Stop terminates the background sweep.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) match(path string) (Rule, bool) {
	for _, r := range l.rules {
		if strings.HasPrefix(path, r.Prefix) {
			return r, true
		}
	}
	return Rule{}, false
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.dropIdle(time.Hour)
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) dropIdle(maxIdle time.Duration) {
	cutoff := l.now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
