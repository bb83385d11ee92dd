package core

import "time"

// TimerMode selects how a Timer behaves once it reaches its duration.
type TimerMode int

const (
	TimerOnce      TimerMode = iota // Stops at the duration and stays finished until Reset
	TimerRepeating                  // Wraps back to zero, carrying the remainder
)

// Timer tracks elapsed simulation time against a duration.
// It is advanced explicitly with Tick so it stays deterministic.
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	mode          TimerMode
	finished      bool
	justFinished  bool
	timesFinished int
}

// NewTimer creates a timer with the given duration and mode.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	if d < 0 {
		d = 0
	}
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by delta.
//
// A one-shot timer saturates at its duration and reports JustFinished only on
// the tick that reached it. A repeating timer reports JustFinished on every
// tick that wrapped and counts the wraps in TimesFinishedThisTick.
func (t *Timer) Tick(delta time.Duration) {
	t.justFinished = false
	t.timesFinished = 0
	if delta < 0 {
		delta = 0
	}

	switch t.mode {
	case TimerOnce:
		if t.finished {
			return
		}
		t.elapsed += delta
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.justFinished = true
			t.timesFinished = 1
		}

	case TimerRepeating:
		if t.duration == 0 {
			// A zero-length repeating timer fires once per tick rather than
			// an unbounded number of times.
			t.elapsed = 0
			t.justFinished = true
			t.timesFinished = 1
			return
		}
		t.elapsed += delta
		if t.elapsed >= t.duration {
			t.timesFinished = int(t.elapsed / t.duration)
			t.elapsed %= t.duration
			t.justFinished = true
		}
	}
}

// JustFinished reports whether the last Tick reached the duration.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished is sticky for one-shot timers until Reset.
// For repeating timers it matches JustFinished.
func (t *Timer) Finished() bool {
	if t.mode == TimerOnce {
		return t.finished
	}
	return t.justFinished
}

// TimesFinishedThisTick returns how many times the timer completed during the last Tick.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Reset zeroes elapsed time and clears the finished state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
	t.timesFinished = 0
}

// SetDuration changes the duration without touching elapsed time.
func (t *Timer) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.duration = d
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns time accumulated since the last reset or wrap.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left until the timer finishes.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration == 0 {
		return 1
	}
	return ClampF(float64(t.elapsed)/float64(t.duration), 0, 1)
}

// Mode returns the timer mode.
func (t *Timer) Mode() TimerMode {
	return t.mode
}
