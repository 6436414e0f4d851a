package plant

import "fmt"

const (
	DefaultInertia       = 100.0
	DefaultNaturalMoment = -5.0
	DefaultEffectiveness = 12.0
	DefaultDisturbance   = 0.0
)

// PitchStabilizer models aircraft pitch driven by stabilizer deflection.
// The control signal commands angular acceleration, making this a double
// integrator: a single loop on pitch is inherently harder to settle than
// the first-order plants.
type PitchStabilizer struct {
	Pitch float64
	Rate  float64

	Inertia       float64
	NaturalMoment float64
	Effectiveness float64
	Disturbance   float64

	initPitch float64
	initRate  float64
}

func NewPitchStabilizer() *PitchStabilizer {
	return &PitchStabilizer{
		Inertia:       DefaultInertia,
		NaturalMoment: DefaultNaturalMoment,
		Effectiveness: DefaultEffectiveness,
		Disturbance:   DefaultDisturbance,
	}
}

// SetAttitude assigns the starting pitch and pitch rate, also used by Restore.
func (p *PitchStabilizer) SetAttitude(pitch, rate float64) {
	p.Pitch = pitch
	p.Rate = rate
	p.initPitch = pitch
	p.initRate = rate
}

// Step applies stabilizer deflection s over dt.
func (p *PitchStabilizer) Step(s, dt float64) {
	a := (p.NaturalMoment + p.Effectiveness*s + p.Disturbance) / p.Inertia
	p.Rate += a * dt
	p.Pitch += p.Rate * dt
}

func (p *PitchStabilizer) Current() float64 { return p.Pitch }

func (p *PitchStabilizer) Restore() {
	p.Pitch = p.initPitch
	p.Rate = p.initRate
}

func (p *PitchStabilizer) GetParams() map[string]float64 {
	return map[string]float64{
		"inertia":       p.Inertia,
		"moment":        p.NaturalMoment,
		"effectiveness": p.Effectiveness,
		"disturbance":   p.Disturbance,
	}
}

func (p *PitchStabilizer) SetParam(name string, value float64) error {
	switch name {
	case "inertia":
		p.Inertia = value
	case "moment":
		p.NaturalMoment = value
	case "effectiveness":
		p.Effectiveness = value
	case "disturbance":
		p.Disturbance = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
