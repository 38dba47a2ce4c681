package paging

import "time"

// Scheduler runs fn once after d on the same event loop that drives the engine.
// The returned func cancels the pending call; calling it after fn ran is a no-op.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// Autoplay periodically advances the engine while it is idle.
// Ticks that arrive while the engine is busy are dropped, never replayed.
type Autoplay struct {
	scheduler Scheduler
	period    time.Duration
	enabled   bool
	cancel    func()
	ready     func() bool
	advance   func()
}

// NewAutoplay creates a disabled timer. ready reports whether a tick may advance,
// advance performs the page move.
func NewAutoplay(scheduler Scheduler, period time.Duration, ready func() bool, advance func()) *Autoplay {
	return &Autoplay{
		scheduler: scheduler,
		period:    period,
		ready:     ready,
		advance:   advance,
	}
}

// Enable starts ticking every period. A non-positive period keeps the current one.
func (a *Autoplay) Enable(period time.Duration) {
	if period > 0 {
		a.period = period
	}
	a.enabled = true
	a.arm()
}

// Disable stops the timer and cancels the pending tick
func (a *Autoplay) Disable() {
	a.enabled = false
	a.stop()
}

// Enabled reports whether the timer is running
func (a *Autoplay) Enabled() bool {
	return a.enabled
}

// Period returns the tick period
func (a *Autoplay) Period() time.Duration {
	return a.period
}

// Reset cancels the pending tick and, if enabled, starts a fresh period
func (a *Autoplay) Reset() {
	if a.enabled {
		a.arm()
		return
	}
	a.stop()
}

func (a *Autoplay) arm() {
	a.stop()
	if a.scheduler == nil || a.period <= 0 {
		return
	}
	a.cancel = a.scheduler.Schedule(a.period, a.tick)
}

func (a *Autoplay) stop() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *Autoplay) tick() {
	a.cancel = nil
	if !a.enabled {
		return
	}
	a.arm()
	if a.ready == nil || a.ready() {
		a.advance()
	}
}
