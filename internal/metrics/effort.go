// Package metrics provides per-tick measurements collected during a run.
// Each metric implements [loop.Metric]; the loop resets them at run start
// and snapshots their values into the result.
package metrics

import (
	"math"

	"github.com/nkato/regulab/internal/loop"
)

// ControlEffort reports the mean absolute actuation signal, a proxy for
// energy spent by the controller.
type ControlEffort struct {
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{}
}

func (c *ControlEffort) Name() string { return "control_effort" }

func (c *ControlEffort) Observe(s loop.Sample) {
	c.sum += math.Abs(s.Control)
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}
