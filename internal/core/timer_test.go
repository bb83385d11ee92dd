package core

import (
	"testing"
	"time"
)

func TestTimerOnceJustFinishedExactlyOnce(t *testing.T) {
	timer := NewTimer(50*time.Millisecond, TimerOnce)

	ticks := []time.Duration{
		20 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond, // crosses 50ms
		20 * time.Millisecond,
		20 * time.Millisecond,
	}

	justFinished := 0
	sawFinished := false
	for i, d := range ticks {
		timer.Tick(d)
		if timer.JustFinished() {
			justFinished++
			if i != 2 {
				t.Errorf("JustFinished on tick %d, expected tick 2", i)
			}
		}
		if sawFinished && !timer.Finished() {
			t.Errorf("Finished() went false again on tick %d", i)
		}
		if timer.Finished() {
			sawFinished = true
		}
		if timer.Elapsed() > timer.Duration() {
			t.Errorf("elapsed %v overshoots duration %v", timer.Elapsed(), timer.Duration())
		}
	}

	if justFinished != 1 {
		t.Errorf("JustFinished fired %d times, expected 1", justFinished)
	}
}

func TestTimerOnceReset(t *testing.T) {
	timer := NewTimer(10*time.Millisecond, TimerOnce)
	timer.Tick(15 * time.Millisecond)
	if !timer.Finished() {
		t.Fatal("timer should be finished")
	}

	timer.Reset()
	if timer.Finished() || timer.JustFinished() {
		t.Error("Reset should clear finished state")
	}
	if timer.Elapsed() != 0 {
		t.Errorf("Reset should zero elapsed, got %v", timer.Elapsed())
	}

	timer.Tick(10 * time.Millisecond)
	if !timer.JustFinished() {
		t.Error("timer should finish again after reset")
	}
}

func TestTimerRepeatingCarriesRemainder(t *testing.T) {
	timer := NewTimer(200*time.Millisecond, TimerRepeating)

	timer.Tick(150 * time.Millisecond)
	if timer.JustFinished() {
		t.Error("should not finish before the duration")
	}

	timer.Tick(100 * time.Millisecond)
	if !timer.JustFinished() || timer.TimesFinishedThisTick() != 1 {
		t.Errorf("expected one wrap, got %d", timer.TimesFinishedThisTick())
	}
	if timer.Elapsed() != 50*time.Millisecond {
		t.Errorf("remainder = %v, expected 50ms", timer.Elapsed())
	}

	timer.Tick(450 * time.Millisecond)
	if timer.TimesFinishedThisTick() != 2 {
		t.Errorf("expected two wraps, got %d", timer.TimesFinishedThisTick())
	}
	if timer.Elapsed() != 100*time.Millisecond {
		t.Errorf("remainder = %v, expected 100ms", timer.Elapsed())
	}

	timer.Tick(time.Millisecond)
	if timer.Finished() {
		t.Error("repeating timer Finished should follow JustFinished")
	}
}

func TestTimerZeroDuration(t *testing.T) {
	once := NewTimer(0, TimerOnce)
	once.Tick(0)
	if !once.JustFinished() {
		t.Error("zero-duration one-shot should finish on first tick")
	}

	rep := NewTimer(0, TimerRepeating)
	rep.Tick(time.Second)
	if rep.TimesFinishedThisTick() != 1 {
		t.Errorf("zero-duration repeating timer fired %d times, expected 1", rep.TimesFinishedThisTick())
	}
}

func TestTimerSetDurationKeepsElapsed(t *testing.T) {
	timer := NewTimer(3*time.Second, TimerOnce)
	timer.Tick(time.Second)
	timer.SetDuration(2700 * time.Millisecond)

	if timer.Elapsed() != time.Second {
		t.Errorf("SetDuration changed elapsed to %v", timer.Elapsed())
	}
	if timer.Duration() != 2700*time.Millisecond {
		t.Errorf("Duration() = %v", timer.Duration())
	}
	if timer.Remaining() != 1700*time.Millisecond {
		t.Errorf("Remaining() = %v", timer.Remaining())
	}
}

func TestTimerFraction(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, TimerOnce)
	timer.Tick(25 * time.Millisecond)
	if got := timer.Fraction(); !almostEqual(got, 0.25, 1e-12) {
		t.Errorf("Fraction() = %f, expected 0.25", got)
	}
}
