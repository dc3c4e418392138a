package game

// DefaultTPS is the default simulation rate in ticks per second.
const DefaultTPS = 60

// Ticker decides which frames carry a simulation tick, decoupling the
// fixed simulation rate from however fast frames actually render. It is
// a threshold accumulator: a frame bears a tick when at least one tick
// interval of real time has accumulated, and consumes exactly one
// interval. At most one tick fires per frame, so a badly stalled
// renderer rate-limits the simulation instead of catching up with a
// burst of ticks.
type Ticker struct {
	intervalMs float64
	accumMs    float64
}

// NewTicker creates a ticker targeting tps ticks per second. Non-positive
// rates fall back to DefaultTPS.
func NewTicker(tps float64) *Ticker {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Ticker{intervalMs: 1000 / tps}
}

// Advance adds the real time elapsed since the previous frame and
// reports whether this frame bears a tick.
func (t *Ticker) Advance(elapsedMs float64) bool {
	t.accumMs += elapsedMs
	if t.accumMs >= t.intervalMs {
		t.accumMs -= t.intervalMs
		return true
	}
	return false
}
