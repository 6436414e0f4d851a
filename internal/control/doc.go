// Package control provides feedback controllers for the simulation loop.
//
// Controllers compute a scalar actuation signal from the plant's measured
// output once per tick:
//
//   - [PID]: Proportional-Integral-Derivative controller with optional
//     output saturation
//   - [Manual]: fixed-output controller for open-loop runs
//
// # Usage
//
//	pid := control.NewPID(1.0, 0.1, 0.01, 25.0) // Kp, Ki, Kd, setpoint
//	pid.SetLimits(0, 200)
//	u := pid.Update(measurement, dt)
//
// Controllers implementing GetParams/SetParam support live tuning between
// ticks; no controller validates its inputs.
package control
