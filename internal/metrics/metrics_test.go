package metrics

import (
	"testing"

	"github.com/nkato/regulab/internal/loop"
)

func TestControlEffort(t *testing.T) {
	m := NewControlEffort()

	if m.Value() != 0 {
		t.Error("expected 0 before any observation")
	}

	m.Observe(loop.Sample{Control: 2.0})
	m.Observe(loop.Sample{Control: -4.0})

	if m.Value() != 3.0 {
		t.Errorf("expected mean |u| = 3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected 0 after reset")
	}
}

func TestTrackingError(t *testing.T) {
	m := NewTrackingError()

	m.Observe(loop.Sample{Output: 15.0, Target: 25.0})
	m.Observe(loop.Sample{Output: 21.0, Target: 25.0})

	if m.Value() != 7.0 {
		t.Errorf("expected mean error 7, got %f", m.Value())
	}
}

func TestOvershoot(t *testing.T) {
	m := NewOvershoot()

	// approaching from below, peaking 2 above target
	m.Observe(loop.Sample{Output: 10.0, Target: 25.0})
	m.Observe(loop.Sample{Output: 27.0, Target: 25.0})
	m.Observe(loop.Sample{Output: 24.0, Target: 25.0})

	if m.Value() != 2.0 {
		t.Errorf("expected overshoot 2, got %f", m.Value())
	}
}

func TestOvershootNeverCrossing(t *testing.T) {
	m := NewOvershoot()

	m.Observe(loop.Sample{Output: 10.0, Target: 25.0})
	m.Observe(loop.Sample{Output: 20.0, Target: 25.0})

	if m.Value() != 0 {
		t.Errorf("expected 0 overshoot without crossing, got %f", m.Value())
	}
}

func TestOvershootFromAbove(t *testing.T) {
	m := NewOvershoot()

	m.Observe(loop.Sample{Output: 30.0, Target: 25.0})
	m.Observe(loop.Sample{Output: 22.0, Target: 25.0})

	if m.Value() != 3.0 {
		t.Errorf("expected overshoot 3 approaching from above, got %f", m.Value())
	}
}
