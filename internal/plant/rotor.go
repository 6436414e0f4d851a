package plant

import (
	"fmt"
	"math"
)

const DefaultRotorInertia = 20.0

// Positioner models a rotational position plant in degrees. The control
// error is wrapped to [-180, 180) before the controller sees it so the
// loop never fights the discontinuity at the ±180° boundary.
type Positioner struct {
	Position float64
	Velocity float64

	Inertia float64

	initPosition float64
	initVelocity float64
}

func NewPositioner() *Positioner {
	return &Positioner{Inertia: DefaultRotorInertia}
}

// SetMotion assigns the starting position and velocity, also used by Restore.
func (p *Positioner) SetMotion(position, velocity float64) {
	p.Position = position
	p.Velocity = velocity
	p.initPosition = position
	p.initVelocity = velocity
}

// Step applies torque signal s. dt is intentionally unused: this plant's
// gains fold the timestep in, so velocity and position advance once per
// tick without separate dt scaling.
func (p *Positioner) Step(s, dt float64) {
	a := s / p.Inertia
	p.Velocity += a
	p.Position += p.Velocity
}

func (p *Positioner) Current() float64 { return p.Position }

// WrapError wraps a control error into [-180, 180) degrees.
func (p *Positioner) WrapError(err float64) float64 {
	return WrapDegrees(err)
}

func (p *Positioner) Restore() {
	p.Position = p.initPosition
	p.Velocity = p.initVelocity
}

// WrapDegrees maps an angle error into [-180, 180) using floor-division
// modulo so negative inputs wrap correctly: 190 -> -170, -190 -> 170.
func WrapDegrees(e float64) float64 {
	w := math.Mod(e+180, 360)
	if w < 0 {
		w += 360
	}
	return w - 180
}

func (p *Positioner) GetParams() map[string]float64 {
	return map[string]float64{
		"inertia": p.Inertia,
	}
}

func (p *Positioner) SetParam(name string, value float64) error {
	switch name {
	case "inertia":
		p.Inertia = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
