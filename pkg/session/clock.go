package session

import (
	"errors"
	"slices"
	"sync"
	"time"
)

// ErrSettleTimeout is returned when Settle gives up on timers that keep
// scheduling more timers.
var ErrSettleTimeout = errors.New("Settle gave up: timers kept rescheduling")

// maxSettleRuns bounds the number of timers a single Settle call runs.
const maxSettleRuns = 10_000

// Clock is a manual clock with a queue of timers that fire when it is
// advanced past them. Work that a browser would run after a timeout is
// scheduled with After and happens on the calling goroutine during Advance
// or Settle, so the driver decides exactly when it runs.
//
// Methods are safe for concurrent use, but timer callbacks run without the
// lock held and usually touch single-threaded render state.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	timers []timer
	seq    int
}

type timer struct {
	at  time.Time
	seq int
	fn  func() error
}

// NewClock returns a Clock starting at a fixed epoch.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the clock's current time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After schedules fn to run once the clock has advanced by d. Timers due at
// the same instant run in the order they were scheduled.
func (c *Clock) After(d time.Duration, fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.timers = append(c.timers, timer{at: c.now.Add(d), seq: c.seq, fn: fn})
}

// Pending returns the number of timers that have not fired.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d, firing every timer that falls due on
// the way, including timers scheduled by the ones that fire. Callback errors
// are joined and returned.
func (c *Clock) Advance(d time.Duration) error {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	var errs []error
	for {
		t, ok := c.pop(func(t timer) bool { return !t.at.After(target) })
		if !ok {
			break
		}
		if err := t.fn(); err != nil {
			errs = append(errs, err)
		}
	}

	c.mu.Lock()
	if c.now.Before(target) {
		c.now = target
	}
	c.mu.Unlock()
	return errors.Join(errs...)
}

// Settle fires timers in due order, advancing the clock to each, until none
// are left.
func (c *Clock) Settle() error {
	var errs []error
	for range maxSettleRuns {
		t, ok := c.pop(func(timer) bool { return true })
		if !ok {
			return errors.Join(errs...)
		}
		if err := t.fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(append(errs, ErrSettleTimeout)...)
}

// Set sets the clock to an exact time without firing timers.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// pop removes the earliest timer if due reports true for it, and moves the
// clock to its deadline.
func (c *Clock) pop(due func(timer) bool) (timer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return timer{}, false
	}
	i := 0
	for j, t := range c.timers[1:] {
		if t.at.Before(c.timers[i].at) || (t.at.Equal(c.timers[i].at) && t.seq < c.timers[i].seq) {
			i = j + 1
		}
	}
	t := c.timers[i]
	if !due(t) {
		return timer{}, false
	}
	c.timers = slices.Delete(c.timers, i, i+1)
	if t.at.After(c.now) {
		c.now = t.at
	}
	return t, true
}
