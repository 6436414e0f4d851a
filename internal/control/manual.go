package control

// Manual feeds a fixed actuation signal to the plant, useful for open-loop
// runs and for probing plant dynamics without feedback.
type Manual struct {
	U float64
}

func NewManual(u float64) *Manual {
	return &Manual{U: u}
}

// Update returns the stored signal regardless of measurement.
func (m *Manual) Update(measurement, dt float64) float64 {
	return m.U
}

func (m *Manual) Reset() {}
