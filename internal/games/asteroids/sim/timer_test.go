package sim

import "testing"

func TestTimerOneShot(t *testing.T) {
	timer := NewTimer(0.5, false)

	ticks := 0
	for !timer.Finished() && ticks < 100 {
		timer.Tick(1.0 / 60.0)
		ticks++
	}
	if ticks != 30 {
		t.Errorf("0.5s timer finished after %d ticks, expected 30", ticks)
	}

	if n := timer.Tick(1.0 / 60.0); n != 0 {
		t.Errorf("finished one-shot Tick() = %d, expected 0", n)
	}

	timer.Reset()
	if timer.Finished() {
		t.Error("Reset timer should not be finished")
	}
}

func TestTimerRepeating(t *testing.T) {
	timer := NewTimer(0.1, true)

	total := 0
	for range 60 {
		total += timer.Tick(1.0 / 60.0)
	}
	if total != 10 {
		t.Errorf("repeating 0.1s timer fired %d times in 1s, expected 10", total)
	}

	if n := timer.Tick(0.25); n != 2 {
		t.Errorf("Tick(0.25) = %d, expected 2", n)
	}
	if !timer.Finished() {
		t.Error("Finished() should be true after a period completed")
	}
	timer.Tick(0.01)
	if timer.Finished() {
		t.Error("Finished() should reset on a tick without a completed period")
	}
}

func TestTimerFinish(t *testing.T) {
	timer := NewTimer(0.2, false)
	timer.Finish()
	if !timer.Finished() {
		t.Error("Finish() should mark the timer finished")
	}
}
