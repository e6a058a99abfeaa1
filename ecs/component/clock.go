package component

import "github.com/milk9111/divechase/ecs"

// Clock is the frame's time snapshot in seconds. Every system reads the same
// values for a given frame.
type Clock struct {
	Now float64
	Dt  float64
}

// Advance moves the clock forward by dt.
func (c *Clock) Advance(dt float64) {
	c.Dt = dt
	c.Now += dt
}

var ClockComponent = ecs.NewComponent[Clock]()
