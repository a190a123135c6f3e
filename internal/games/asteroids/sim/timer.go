package sim

// timerEpsilon absorbs float drift from summing fixed dt steps, so a 0.5s
// timer at 60 ticks/s finishes on tick 30 rather than 31.
const timerEpsilon = 1e-9

// Timer counts simulated seconds. A one-shot timer stays finished until
// Reset; a repeating timer wraps and reports how many periods elapsed.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool
	finished  bool
}

// NewTimer creates a timer of d seconds.
func NewTimer(d float64, repeating bool) Timer {
	return Timer{Duration: d, Repeating: repeating}
}

// Tick advances the timer and returns the number of completed periods.
func (t *Timer) Tick(dt float64) int {
	if t.Repeating {
		t.finished = false
	} else if t.finished {
		return 0
	}
	if t.Duration <= 0 {
		t.finished = true
		return 1
	}

	t.Elapsed += dt
	if t.Elapsed+timerEpsilon < t.Duration {
		return 0
	}

	if !t.Repeating {
		t.Elapsed = t.Duration
		t.finished = true
		return 1
	}

	n := 0
	for t.Elapsed+timerEpsilon >= t.Duration {
		t.Elapsed -= t.Duration
		n++
	}
	if t.Elapsed < 0 {
		t.Elapsed = 0
	}
	t.finished = true
	return n
}

// Finished reports whether a one-shot timer has run out, or whether a
// repeating timer completed a period on its last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset restarts the timer from zero.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
}

// Finish marks a one-shot timer as already run out.
func (t *Timer) Finish() {
	t.Elapsed = t.Duration
	t.finished = true
}
