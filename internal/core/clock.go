package core

// DefaultTPS is the initial simulation speed in generations per second.
const DefaultTPS = 10

// Clock tracks whether the simulation is running and how fast. It starts
// paused.
type Clock struct {
	paused bool
	tps    int
}

// NewClock returns a paused clock. Rates below one are raised to one.
func NewClock(tps int) *Clock {
	if tps < 1 {
		tps = 1
	}
	return &Clock{paused: true, tps: tps}
}

// Paused reports whether generations are currently suppressed.
func (c *Clock) Paused() bool { return c.paused }

// TPS returns the ticks-per-second target.
func (c *Clock) TPS() int { return c.tps }

// Start resumes the simulation. Starting a running clock has no effect.
func (c *Clock) Start() { c.paused = false }

// TogglePause flips between paused and running.
func (c *Clock) TogglePause() { c.paused = !c.paused }

// SpeedUp raises the rate by one tick per second.
func (c *Clock) SpeedUp() { c.tps++ }

// SlowDown lowers the rate by one, never below one.
func (c *Clock) SlowDown() {
	if c.tps > 1 {
		c.tps--
	}
}

// Frame runs step exactly once when the clock is running and reports whether it
// did.
func (c *Clock) Frame(step func()) bool {
	if c.paused {
		return false
	}
	step()
	return true
}
