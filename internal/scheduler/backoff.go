package scheduler

import "time"

const (
	// DefaultMinInterval is the polling floor while games are active.
	DefaultMinInterval = 10 * time.Second
	// DefaultMaxInterval caps idle backoff.
	DefaultMaxInterval = 5 * time.Minute
	// DefaultBackoffStep is added per idle cycle.
	DefaultBackoffStep = 10 * time.Second
)

// Intervals is the scheduler's backoff state. Transitions are pure functions
// so they can be tested without real timers.
type Intervals struct {
	Current time.Duration
	Min     time.Duration
	Max     time.Duration
	Step    time.Duration
}

// NewIntervals constructs interval state starting at the minimum. Non-positive
// bounds fall back to defaults.
func NewIntervals(min, max, step time.Duration) Intervals {
	if min <= 0 {
		min = DefaultMinInterval
	}
	if max < min {
		max = DefaultMaxInterval
	}
	if step <= 0 {
		step = DefaultBackoffStep
	}
	return Intervals{Current: min, Min: min, Max: max, Step: step}
}

// Next returns the interval state after observing the tracked-game count for
// one cycle: idle cycles lengthen the interval by Step up to Max; the moment
// games appear the interval snaps back to Min.
func (iv Intervals) Next(trackedGames int) Intervals {
	if trackedGames == 0 {
		next := iv.Current + iv.Step
		if next > iv.Max {
			next = iv.Max
		}
		iv.Current = next
		return iv
	}
	if iv.Current != iv.Min {
		iv.Current = iv.Min
	}
	return iv
}

// Reset returns the interval state re-armed at the minimum.
func (iv Intervals) Reset() Intervals {
	iv.Current = iv.Min
	return iv
}
