package domain

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; fixture generation injects a fake so
// GeneratedAt stamps are byte-stable.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for generation stamps. Pass nil to reset to
// real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
