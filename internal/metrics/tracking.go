package metrics

import (
	"math"

	"github.com/nkato/regulab/internal/loop"
)

// TrackingError reports the mean absolute distance between the plant output
// and the setpoint.
type TrackingError struct {
	sum     float64
	samples int
}

func NewTrackingError() *TrackingError {
	return &TrackingError{}
}

func (t *TrackingError) Name() string { return "tracking_error" }

func (t *TrackingError) Observe(s loop.Sample) {
	t.sum += math.Abs(s.Target - s.Output)
	t.samples++
}

func (t *TrackingError) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return t.sum / float64(t.samples)
}

func (t *TrackingError) Reset() {
	t.sum = 0
	t.samples = 0
}
