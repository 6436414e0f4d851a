// Package plant provides simulated process models driven by the control loop.
//
// Each model owns its physical state and exposes the [loop.Plant] contract:
// Step applies one actuation signal over dt, Current returns the scalar the
// controller measures against:
//
//   - [ThermalRoom]: lossy room heated against an outside temperature
//   - [PitchStabilizer]: aircraft pitch as a torque-driven double integrator
//   - [Positioner]: rotational position plant with degree wrap-around
//
// Models also implement GetParams/SetParam for runtime parameter adjustment.
// None of them validate parameter ranges; non-physical configurations (a
// near-zero thermal mass, a zero inertia) propagate as numeric instability
// rather than errors.
package plant
