// Package loop runs the discrete-time feedback cycle: one controller, one
// plant, strictly sequential ticks. Each tick the controller sees a
// measurement taken before the plant consumes the controller's output;
// the order never changes and no tick is skipped.
package loop

import (
	"context"
	"fmt"
)

type Loop struct {
	ctrl      Controller
	plant     Plant
	metrics   []Metric
	observers []Observer
	t         float64
}

// New pairs a controller with a plant. The pair lives for the run and is
// torn down together.
func New(ctrl Controller, plant Plant) *Loop {
	return &Loop{
		ctrl:      ctrl,
		plant:     plant,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) Time() float64 { return l.t }

// Tick advances the loop by one synchronous step: measure, control, step,
// publish. The measurement handed to the controller is adjusted through the
// plant's error wrap when it provides one, so the controller works on the
// wrapped error without knowing about angles.
func (l *Loop) Tick(dt float64) Sample {
	m := l.plant.Current()
	if w, ok := l.plant.(ErrorWrapper); ok {
		if tg, ok := l.ctrl.(Targeted); ok {
			sp := tg.Setpoint()
			m = sp - w.WrapError(sp-m)
		}
	}

	u := l.ctrl.Update(m, dt)
	l.plant.Step(u, dt)
	l.t += dt

	s := Sample{T: l.t, Output: l.plant.Current(), Target: l.target(), Control: u}
	for _, mt := range l.metrics {
		mt.Observe(s)
	}
	for _, ob := range l.observers {
		ob.OnTick(s)
	}
	return s
}

// Run ticks the loop for cfg.Duration at fixed cfg.Dt, honoring ctx between
// ticks. On cancellation the partial result is returned with ctx.Err().
func (l *Loop) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Samples: make([]Sample, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range l.metrics {
		m.Reset()
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		result.Samples = append(result.Samples, l.Tick(cfg.Dt))
		result.StepsTaken++
	}

	for _, m := range l.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Reset rewinds the loop for a fresh run: controller accumulators cleared,
// plant restored when it knows how, clock back to zero.
func (l *Loop) Reset() {
	l.ctrl.Reset()
	if r, ok := l.plant.(Restorer); ok {
		r.Restore()
	}
	l.t = 0
}

func (l *Loop) target() float64 {
	if tg, ok := l.ctrl.(Targeted); ok {
		return tg.Setpoint()
	}
	return 0
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
