package vectorcade

import "math"

// Ticker converts variable wall-clock time into whole fixed-timestep
// updates. Leftover time carries over to the next Advance.
type Ticker struct {
	// Step is the fixed update length in seconds.
	Step float32
	// MaxSteps caps the updates returned by one Advance; backlog beyond the
	// cap is dropped so a stall cannot snowball. 0 means no cap.
	MaxSteps int

	acc float64
}

// NewTicker creates a ticker.
func NewTicker(step float32, maxSteps int) *Ticker {
	return &Ticker{Step: step, MaxSteps: maxSteps}
}

// Advance adds elapsed seconds and returns how many fixed updates to run.
// Negative elapsed time is ignored.
func (t *Ticker) Advance(elapsed float64) int {
	step := float64(t.Step)
	if step <= 0 {
		return 0
	}
	if elapsed > 0 {
		t.acc += elapsed
	}
	n := 0
	for t.acc >= step {
		if t.MaxSteps > 0 && n == t.MaxSteps {
			t.acc = math.Mod(t.acc, step)
			break
		}
		t.acc -= step
		n++
	}
	return n
}

// Alpha returns how far the carried-over time is into the next step, in
// [0, 1]. Renderers use it to interpolate between simulation states.
func (t *Ticker) Alpha() float32 {
	if t.Step <= 0 {
		return 0
	}
	return float32(clampF(t.acc/float64(t.Step), 0, 1))
}

// Reset drops carried-over time.
func (t *Ticker) Reset() {
	t.acc = 0
}
