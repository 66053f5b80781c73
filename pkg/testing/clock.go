package testing

import "github.com/joshuaharry/featherweight-react/pkg/session"

// FakeClock is the manual clock delayed work waits on in a Tester.
type FakeClock = session.Clock

// ErrSettleTimeout is returned when Settle gives up on timers that keep
// scheduling more timers.
var ErrSettleTimeout = session.ErrSettleTimeout

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return session.NewClock()
}
