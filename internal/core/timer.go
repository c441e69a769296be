package core

import "time"

// Timer is a repeating interval timer driven by elapsed time.
// Callers feed it the time since the previous tick and check Finished once
// per tick; it never blocks.
type Timer struct {
	interval      time.Duration
	elapsed       time.Duration
	finished      bool
	timesFinished int
}

// NewTimer creates a repeating timer with the given interval.
// Panics if interval is not positive.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		panic("core: timer interval must be positive")
	}
	return &Timer{interval: interval}
}

// Tick advances the timer. Finished reports true until the next Tick if the
// accumulated time reached the interval during this call.
func (t *Timer) Tick(elapsed time.Duration) {
	t.finished = false
	t.timesFinished = 0
	if elapsed <= 0 {
		return
	}

	t.elapsed += elapsed
	if t.elapsed >= t.interval {
		t.timesFinished = int(t.elapsed / t.interval)
		t.elapsed %= t.interval
		t.finished = true
	}
}

// Finished returns true if the timer fired on the last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinished returns how many whole intervals elapsed during the last Tick.
// A single firing is reported even when several intervals were skipped.
func (t *Timer) TimesFinished() int {
	return t.timesFinished
}

// Reset rearms the timer from zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// Interval returns the configured interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Elapsed returns the time accumulated towards the next firing.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left until the next firing.
func (t *Timer) Remaining() time.Duration {
	return t.interval - t.elapsed
}
