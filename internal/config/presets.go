package config

var Presets = map[string]map[string]*Config{
	"thermal": {
		"warmup": {
			Plant: "thermal", Dt: 0.1, Duration: 120.0,
			Controller: ControllerConfig{Kp: 8.0, Ki: 0.2, Kd: 4.0, Target: 21.0, OutMin: 0, OutMax: 200, Limit: true},
			Thermal:    ThermalConfig{Temp: 15.0, OutsideTemp: 5.0, ThermalMass: 50.0, Conductivity: 5.0},
		},
		"cold_snap": {
			Plant: "thermal", Dt: 0.1, Duration: 240.0,
			Controller: ControllerConfig{Kp: 12.0, Ki: 0.5, Kd: 2.0, Target: 21.0, OutMin: 0, OutMax: 200, Limit: true},
			Thermal:    ThermalConfig{Temp: 8.0, OutsideTemp: -15.0, ThermalMass: 50.0, Conductivity: 8.0, AmbientLoss: 10.0},
		},
		"drafty": {
			Plant: "thermal", Dt: 0.1, Duration: 180.0,
			Controller: ControllerConfig{Kp: 8.0, Ki: 0.8, Kd: 0, Target: 19.0, OutMin: 0, OutMax: 120, Limit: true},
			Thermal:    ThermalConfig{Temp: 15.0, OutsideTemp: 0.0, ThermalMass: 30.0, Conductivity: 10.0, AmbientLoss: 20.0},
		},
	},
	"pitch": {
		"cruise": {
			Plant: "pitch", Dt: 0.05, Duration: 60.0,
			Controller: ControllerConfig{Kp: 6.0, Ki: 0.1, Kd: 20.0, Target: 0.0, OutMin: -30, OutMax: 30, Limit: true},
			Pitch:      PitchConfig{Pitch: 5.0, Inertia: 100.0, NaturalMoment: -5.0, Effectiveness: 12.0},
		},
		"gusty": {
			Plant: "pitch", Dt: 0.05, Duration: 90.0,
			Controller: ControllerConfig{Kp: 6.0, Ki: 0.4, Kd: 25.0, Target: 2.0, OutMin: -30, OutMax: 30, Limit: true},
			Pitch:      PitchConfig{Pitch: 0.0, Inertia: 100.0, NaturalMoment: -5.0, Effectiveness: 12.0, Disturbance: 15.0},
		},
	},
	"rotor": {
		"slew": {
			Plant: "rotor", Dt: 0.02, Duration: 20.0,
			Controller: ControllerConfig{Kp: 0.8, Ki: 0.0, Kd: 6.0, Target: 90.0},
			Rotor:      RotorConfig{Position: 0.0, Inertia: 20.0},
		},
		"wraparound": {
			Plant: "rotor", Dt: 0.02, Duration: 20.0,
			Controller: ControllerConfig{Kp: 0.8, Ki: 0.0, Kd: 6.0, Target: -170.0},
			Rotor:      RotorConfig{Position: 170.0, Inertia: 20.0},
		},
	},
}

func GetPreset(plantName, preset string) *Config {
	plantPresets, ok := Presets[plantName]
	if !ok {
		return nil
	}
	cfg, ok := plantPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(plantName string) []string {
	plantPresets, ok := Presets[plantName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(plantPresets))
	for name := range plantPresets {
		names = append(names, name)
	}
	return names
}
