package loop

// Plant is a simulated process: Step applies one actuation signal over dt,
// mutating owned physical state; Current returns the scalar measurement the
// controller tracks.
type Plant interface {
	Step(u, dt float64)
	Current() float64
}

// Controller computes an actuation signal from a measurement once per tick.
type Controller interface {
	Update(measurement, dt float64) float64
	Reset()
}

// Targeted is implemented by controllers that track an explicit setpoint.
type Targeted interface {
	Setpoint() float64
}

// ErrorWrapper is implemented by plants whose control error must be folded
// into a canonical range before the controller sees it (angle wrap-around).
type ErrorWrapper interface {
	WrapError(err float64) float64
}

// Restorer is implemented by plants that can return to their initial state.
type Restorer interface {
	Restore()
}

// Sample is what one tick publishes to observers, metrics and charts.
type Sample struct {
	T       float64 `json:"t"`
	Output  float64 `json:"output"`
	Target  float64 `json:"target"`
	Control float64 `json:"control"`
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(s Sample)
}

type Config struct {
	Dt       float64
	Duration float64
}

type Result struct {
	Samples    []Sample
	Metrics    map[string]float64
	StepsTaken int
}
