package metrics

import "github.com/nkato/regulab/internal/loop"

// Overshoot reports the largest excursion past the setpoint in the
// direction of the initial error. Zero when the output never crosses.
type Overshoot struct {
	dir   float64
	first bool
	peak  float64
}

func NewOvershoot() *Overshoot {
	return &Overshoot{first: true}
}

func (o *Overshoot) Name() string { return "overshoot" }

func (o *Overshoot) Observe(s loop.Sample) {
	if o.first {
		o.first = false
		if s.Target >= s.Output {
			o.dir = 1
		} else {
			o.dir = -1
		}
	}
	if exc := (s.Output - s.Target) * o.dir; exc > o.peak {
		o.peak = exc
	}
}

func (o *Overshoot) Value() float64 { return o.peak }

func (o *Overshoot) Reset() {
	o.dir = 0
	o.first = true
	o.peak = 0
}
