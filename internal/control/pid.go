package control

import "math"

type PID struct {
	Kp     float64
	Ki     float64
	Kd     float64
	Target float64

	outMin float64
	outMax float64

	integral float64
	prevErr  float64
	hasPrev  bool
}

func NewPID(kp, ki, kd, target float64) *PID {
	return &PID{
		Kp:     kp,
		Ki:     ki,
		Kd:     kd,
		Target: target,
		outMin: math.Inf(-1),
		outMax: math.Inf(1),
	}
}

// Update advances the controller by one tick and returns the actuation
// signal. The integral accumulator and previous error are stored
// unconditionally; when dt is not strictly positive the derivative term
// contributes nothing.
func (p *PID) Update(measurement, dt float64) float64 {
	err := p.Target - measurement
	p.integral += err * dt

	derivative := 0.0
	if dt > 0 {
		// derivative numerator is previous minus current error; the
		// previous error counts as zero on the first tick after
		// construction or Reset, never as the current error.
		prev := 0.0
		if p.hasPrev {
			prev = p.prevErr
		}
		derivative = (prev - err) / dt
	}

	u := p.Kp*err + p.Ki*p.integral + p.Kd*derivative

	if u < p.outMin {
		u = p.outMin
	}
	if u > p.outMax {
		u = p.outMax
	}

	p.prevErr = err
	p.hasPrev = true
	return u
}

// Reset clears the integral accumulator and the stored error. Safe to call
// repeatedly.
func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.hasPrev = false
}

// Set replaces target and gains atomically. Accumulated state is kept, so
// gain changes apply to the existing integral immediately.
func (p *PID) Set(target, kp, ki, kd float64) {
	p.Target = target
	p.Kp = kp
	p.Ki = ki
	p.Kd = kd
}

// SetLimits replaces both saturation bounds. Pass math.Inf for a bound that
// should never bind.
func (p *PID) SetLimits(min, max float64) {
	p.outMin = min
	p.outMax = max
}

// ClearLimits removes output saturation.
func (p *PID) ClearLimits() {
	p.outMin = math.Inf(-1)
	p.outMax = math.Inf(1)
}

func (p *PID) Setpoint() float64 { return p.Target }

// GetParams returns tunable parameters for live adjustment
func (p *PID) GetParams() map[string]float64 {
	return map[string]float64{
		"kp":     p.Kp,
		"ki":     p.Ki,
		"kd":     p.Kd,
		"target": p.Target,
	}
}

// SetParam adjusts a single controller parameter
func (p *PID) SetParam(name string, value float64) {
	switch name {
	case "kp":
		p.Kp = value
	case "ki":
		p.Ki = value
	case "kd":
		p.Kd = value
	case "target":
		p.Target = value
	}
}
