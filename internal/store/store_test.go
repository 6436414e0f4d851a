package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nkato/regulab/internal/loop"
)

func testResult() *loop.Result {
	return &loop.Result{
		Samples: []loop.Sample{
			{T: 0.1, Output: 15.2, Target: 25.0, Control: 10.0},
			{T: 0.2, Output: 15.4, Target: 25.0, Control: 9.8},
		},
		Metrics:    map[string]float64{"tracking_error": 9.7},
		StepsTaken: 2,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		Plant: "thermal", Dt: 0.1, Duration: 0.2,
		Controller: "pid", Kp: 1.0, Ki: 0, Kd: 0, Target: 25.0,
	}

	runID, err := st.Save(meta, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Plant != "thermal" {
		t.Errorf("expected plant thermal, got %s", loaded.Plant)
	}
	if loaded.Target != 25.0 {
		t.Errorf("expected target 25, got %f", loaded.Target)
	}
	if loaded.Metrics["tracking_error"] != 9.7 {
		t.Errorf("expected tracking_error 9.7, got %f", loaded.Metrics["tracking_error"])
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Output != 15.2 || samples[1].Control != 9.8 {
		t.Errorf("samples round-tripped wrong: %+v", samples)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(RunMetadata{Plant: "rotor", Controller: "pid"}, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{Plant: "pitch", Controller: "pid"}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "samples.csv"} {
		if _, err := os.Stat(filepath.Join(dir, runID, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := RunMetadata{ID: "thermal_1", Plant: "thermal", Controller: "pid"}

	if err := WriteJSON(&buf, meta, testResult().Samples); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"thermal_1"`, `"samples"`, `"output"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s:\n%s", want, out)
		}
	}
}
