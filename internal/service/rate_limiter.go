package service

import (
	"strings"
	"sync"
	"time"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// EmailRateLimiter allows limit requests per lower-cased email within a window
// that opens on the first request. State is process local and lost on restart.
type EmailRateLimiter struct {
	mu      sync.Mutex
	clock   Clock
	limit   int
	window  time.Duration
	windows map[string]*rateWindow
}

func NewEmailRateLimiter(clock Clock, limit int, window time.Duration) *EmailRateLimiter {
	if clock == nil {
		clock = SystemClock{}
	}
	if limit <= 0 {
		limit = 5
	}
	if window <= 0 {
		window = time.Hour
	}
	return &EmailRateLimiter{
		clock:   clock,
		limit:   limit,
		window:  window,
		windows: make(map[string]*rateWindow),
	}
}

// Allow records a request for email. When the limit is hit it returns false
// and the time left until the window resets.
func (rl *EmailRateLimiter) Allow(email string) (bool, time.Duration) {
	key := strings.ToLower(strings.TrimSpace(email))
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		rl.windows[key] = &rateWindow{count: 1, resetAt: now.Add(rl.window)}
		return true, 0
	}
	if w.count >= rl.limit {
		return false, w.resetAt.Sub(now)
	}
	w.count++
	return true, 0
}

// Prune removes expired windows.
func (rl *EmailRateLimiter) Prune() int {
	now := rl.clock.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	removed := 0
	for key, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, key)
			removed++
		}
	}
	return removed
}
