package service

import (
	"sync"
	"time"

	"github.com/limbo/taskstars/pkg/entity"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a settable clock for tests and day rollover simulation.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// DateProvider turns wall clock time into the account's calendar day.
// Every "today" in a registry comes from the same provider.
type DateProvider struct {
	clock Clock
	loc   *time.Location
}

func NewDateProvider(clock Clock, loc *time.Location) *DateProvider {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DateProvider{clock: clock, loc: loc}
}

func (dp *DateProvider) Now() time.Time {
	return dp.clock.Now().In(dp.loc)
}

func (dp *DateProvider) Today() entity.Date {
	return entity.DateOf(dp.Now())
}

func (dp *DateProvider) DateOf(t time.Time) entity.Date {
	return entity.DateOf(t.In(dp.loc))
}
