package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.1
	DefaultDuration = 60.0
	DefaultKp       = 8.0
	DefaultKi       = 0.2
	DefaultKd       = 4.0
	DefaultTarget   = 21.0
)

type Config struct {
	Plant      string           `yaml:"plant"`
	Dt         float64          `yaml:"dt"`
	Duration   float64          `yaml:"duration"`
	Controller ControllerConfig `yaml:"controller"`
	Thermal    ThermalConfig    `yaml:"thermal"`
	Pitch      PitchConfig      `yaml:"pitch"`
	Rotor      RotorConfig      `yaml:"rotor"`
}

type ControllerConfig struct {
	Kp     float64 `yaml:"kp"`
	Ki     float64 `yaml:"ki"`
	Kd     float64 `yaml:"kd"`
	Target float64 `yaml:"target"`
	OutMin float64 `yaml:"out_min"`
	OutMax float64 `yaml:"out_max"`
	Limit  bool    `yaml:"limit"`
}

type ThermalConfig struct {
	Temp         float64 `yaml:"temp"`
	OutsideTemp  float64 `yaml:"outside_temp"`
	ThermalMass  float64 `yaml:"thermal_mass"`
	Conductivity float64 `yaml:"conductivity"`
	AmbientLoss  float64 `yaml:"ambient_loss"`
}

type PitchConfig struct {
	Pitch         float64 `yaml:"pitch"`
	Rate          float64 `yaml:"rate"`
	Inertia       float64 `yaml:"inertia"`
	NaturalMoment float64 `yaml:"natural_moment"`
	Effectiveness float64 `yaml:"effectiveness"`
	Disturbance   float64 `yaml:"disturbance"`
}

type RotorConfig struct {
	Position float64 `yaml:"position"`
	Velocity float64 `yaml:"velocity"`
	Inertia  float64 `yaml:"inertia"`
}

func DefaultConfig() *Config {
	return &Config{
		Plant:    "thermal",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Controller: ControllerConfig{
			Kp:     DefaultKp,
			Ki:     DefaultKi,
			Kd:     DefaultKd,
			Target: DefaultTarget,
			OutMin: 0,
			OutMax: 200,
			Limit:  true,
		},
		Thermal: ThermalConfig{
			Temp:         15.0,
			OutsideTemp:  5.0,
			ThermalMass:  50.0,
			Conductivity: 5.0,
			AmbientLoss:  0.0,
		},
		Pitch: PitchConfig{
			Inertia:       100.0,
			NaturalMoment: -5.0,
			Effectiveness: 12.0,
			Disturbance:   0.0,
		},
		Rotor: RotorConfig{
			Inertia: 20.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
