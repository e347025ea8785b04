package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func newTestLimiter(quota int, window time.Duration) (*Limiter, *time.Time) {
	l := New(quota, window, 1000)
	current := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestLimiterQuotaExhaustion(t *testing.T) {
	l, _ := newTestLimiter(3, 24*time.Hour)

	for i := 0; i < 3; i++ {
		d := l.Check("1.2.3.4")
		if !d.Allowed {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
		if d.Remaining != 3-(i+1) {
			t.Errorf("request %d remaining = %d, want %d", i+1, d.Remaining, 3-(i+1))
		}
	}

	d := l.Check("1.2.3.4")
	if d.Allowed {
		t.Fatal("request over quota allowed")
	}
	if d.Remaining != 0 {
		t.Errorf("denied remaining = %d, want 0", d.Remaining)
	}

	// Denied requests must not consume anything: still denied, still zero.
	if d := l.Check("1.2.3.4"); d.Allowed {
		t.Fatal("request after denial allowed")
	}
}

func TestLimiterWindowReset(t *testing.T) {
	l, now := newTestLimiter(2, 24*time.Hour)

	l.Check("10.0.0.1")
	l.Check("10.0.0.1")
	if d := l.Check("10.0.0.1"); d.Allowed {
		t.Fatal("third request within window allowed")
	}

	// One second short of the window boundary: still the old window.
	*now = now.Add(24*time.Hour - time.Second)
	if d := l.Check("10.0.0.1"); d.Allowed {
		t.Fatal("request just before window expiry allowed")
	}

	// At the boundary the whole window resets, quota restored in full.
	*now = now.Add(time.Second)
	d := l.Check("10.0.0.1")
	if !d.Allowed {
		t.Fatal("request after window expiry denied")
	}
	if d.Remaining != 1 {
		t.Errorf("remaining after reset = %d, want 1", d.Remaining)
	}
	wantReset := now.Add(24 * time.Hour)
	if !d.ResetTime.Equal(wantReset) {
		t.Errorf("reset time = %v, want %v", d.ResetTime, wantReset)
	}
}

func TestLimiterIsolatesClients(t *testing.T) {
	l, _ := newTestLimiter(1, time.Hour)

	if d := l.Check("client-a"); !d.Allowed {
		t.Fatal("first request for client-a denied")
	}
	if d := l.Check("client-a"); d.Allowed {
		t.Fatal("second request for client-a allowed")
	}
	if d := l.Check("client-b"); !d.Allowed {
		t.Fatal("client-b affected by client-a's quota")
	}
}

func TestLimiterStatusDoesNotConsume(t *testing.T) {
	l, _ := newTestLimiter(5, time.Hour)

	l.Check("7.7.7.7")
	for i := 0; i < 10; i++ {
		if d := l.Status("7.7.7.7"); d.Remaining != 4 {
			t.Fatalf("Status() remaining = %d after %d polls, want 4", d.Remaining, i+1)
		}
	}

	if d := l.Status("unseen-client"); d.Remaining != 5 {
		t.Errorf("Status() remaining for unseen client = %d, want full quota 5", d.Remaining)
	}
}

func TestLimiterConcurrentHardBound(t *testing.T) {
	l := New(100, time.Hour, 1000)

	var wg sync.WaitGroup
	allowed := make(chan bool, 500)
	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Check("shared").Allowed
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	if count != 100 {
		t.Errorf("allowed %d concurrent requests, want exactly 100", count)
	}
}
