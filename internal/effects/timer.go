package effects

import "time"

// Timer is a scoped one-shot or repeating timer driven by Advance rather than
// the wall clock, so it fires on the game-loop goroutine in tick order. A
// stopped timer never fires again.
type Timer struct {
	remaining time.Duration
	period    time.Duration // zero for one-shot
	fire      func()
	stopped   bool
}

// AfterFunc arms a one-shot timer.
func AfterFunc(d time.Duration, fire func()) *Timer {
	return &Timer{remaining: d, fire: fire}
}

// EveryFunc arms a repeating timer with the given period (must be > 0).
func EveryFunc(period time.Duration, fire func()) *Timer {
	if period <= 0 {
		panic("effects: non-positive timer period")
	}
	return &Timer{remaining: period, period: period, fire: fire}
}

// Stop releases the timer. Safe on nil and on already-stopped timers.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
	t.fire = nil
}

// Active reports whether the timer can still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Remaining is the time until the next firing.
func (t *Timer) Remaining() time.Duration {
	if !t.Active() {
		return 0
	}
	return t.remaining
}

// Advance moves the timer forward by dt, firing once per elapsed period.
// A callback may stop its own timer; no further firings happen after that.
func (t *Timer) Advance(dt time.Duration) {
	if !t.Active() {
		return
	}
	t.remaining -= dt
	for t.Active() && t.remaining <= 0 {
		fire := t.fire
		if t.period == 0 {
			t.stopped = true
			t.fire = nil
		} else {
			t.remaining += t.period
		}
		fire()
	}
}
