package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Decision is the outcome of a quota check for one client.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime time.Time
}

type record struct {
	count       int
	windowStart time.Time
}

// Limiter bounds requests per client key to a fixed quota within a fixed
// window. The window resets hard: once it elapses all history is dropped.
// Records live in a bounded expirable LRU so idle clients are evicted
// instead of accumulating for the life of the process.
type Limiter struct {
	mu      sync.Mutex
	records *expirable.LRU[string, *record]
	quota   int
	window  time.Duration

	now func() time.Time
}

// New builds a limiter for quota requests per window, tracking at most
// maxClients distinct keys.
func New(quota int, window time.Duration, maxClients int) *Limiter {
	return &Limiter{
		records: expirable.NewLRU[string, *record](maxClients, nil, window),
		quota:   quota,
		window:  window,
		now:     time.Now,
	}
}

// Check counts one request against the client's quota. The mutex makes
// check-and-increment atomic, so the quota is a hard bound per instance.
func (l *Limiter) Check(client string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	rec, ok := l.records.Get(client)
	if !ok || now.Sub(rec.windowStart) >= l.window {
		rec = &record{count: 1, windowStart: now}
		l.records.Add(client, rec)
		return Decision{
			Allowed:   true,
			Limit:     l.quota,
			Remaining: l.quota - 1,
			ResetTime: now.Add(l.window),
		}
	}

	reset := rec.windowStart.Add(l.window)
	if rec.count >= l.quota {
		return Decision{Allowed: false, Limit: l.quota, Remaining: 0, ResetTime: reset}
	}

	rec.count++
	return Decision{
		Allowed:   true,
		Limit:     l.quota,
		Remaining: l.quota - rec.count,
		ResetTime: reset,
	}
}

// Status reports the client's current usage without consuming quota.
func (l *Limiter) Status(client string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	rec, ok := l.records.Get(client)
	if !ok || now.Sub(rec.windowStart) >= l.window {
		return Decision{
			Allowed:   true,
			Limit:     l.quota,
			Remaining: l.quota,
			ResetTime: now.Add(l.window),
		}
	}

	remaining := l.quota - rec.count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   remaining > 0,
		Limit:     l.quota,
		Remaining: remaining,
		ResetTime: rec.windowStart.Add(l.window),
	}
}
