package plant

import "fmt"

const (
	DefaultRoomTemp     = 15.0
	DefaultOutsideTemp  = 5.0
	DefaultThermalMass  = 50.0
	DefaultConductivity = 5.0
	DefaultAmbientLoss  = 0.0
)

// ThermalRoom models a room heated by the control signal and losing heat
// through its walls to the outside.
type ThermalRoom struct {
	Temp float64

	OutsideTemp  float64
	ThermalMass  float64
	Conductivity float64
	AmbientLoss  float64

	initTemp float64
}

func NewThermalRoom() *ThermalRoom {
	return &ThermalRoom{
		Temp:         DefaultRoomTemp,
		OutsideTemp:  DefaultOutsideTemp,
		ThermalMass:  DefaultThermalMass,
		Conductivity: DefaultConductivity,
		AmbientLoss:  DefaultAmbientLoss,
		initTemp:     DefaultRoomTemp,
	}
}

// SetTemp assigns the starting temperature, also used by Restore.
func (r *ThermalRoom) SetTemp(t float64) {
	r.Temp = t
	r.initTemp = t
}

// Step applies heater power q over dt. Temperature itself is never
// saturated; only q is bounded, upstream by the controller.
func (r *ThermalRoom) Step(q, dt float64) {
	r.Temp += (q - r.Conductivity*(r.Temp-r.OutsideTemp) - r.AmbientLoss) / r.ThermalMass * dt
}

func (r *ThermalRoom) Current() float64 { return r.Temp }

func (r *ThermalRoom) Restore() { r.Temp = r.initTemp }

func (r *ThermalRoom) GetParams() map[string]float64 {
	return map[string]float64{
		"outside":      r.OutsideTemp,
		"mass":         r.ThermalMass,
		"conductivity": r.Conductivity,
		"loss":         r.AmbientLoss,
	}
}

func (r *ThermalRoom) SetParam(name string, value float64) error {
	switch name {
	case "outside":
		r.OutsideTemp = value
	case "mass":
		r.ThermalMass = value
	case "conductivity":
		r.Conductivity = value
	case "loss":
		r.AmbientLoss = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
