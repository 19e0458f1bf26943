package storage

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/plasmalab/internal/units"
)

func saveSample(t *testing.T, s *Store) (string, []float64) {
	t.Helper()

	fields, err := units.Logspace(units.Gauss(1), units.Gauss(100), 5)
	if err != nil {
		t.Fatal(err)
	}
	betas := []float64{10, 1, 0.1, 0.01, 0.001}

	runID, err := s.Save("corona", units.Kelvin(1e6), units.PerCubicCentimeter(1e9), fields, betas)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	return runID, betas
}

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runID, _ := saveSample(t, s)
	if !strings.HasPrefix(runID, "corona_") {
		t.Errorf("unexpected run id: %s", runID)
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Region != "corona" {
		t.Errorf("expected corona, got %s", meta.Region)
	}
	if meta.Points != 5 {
		t.Errorf("expected 5 points, got %d", meta.Points)
	}
	if math.Abs(meta.TemperatureK-1e6) > 1 {
		t.Errorf("expected 1e6 K, got %g", meta.TemperatureK)
	}
	if math.Abs(meta.BetaMax-10) > 1e-12 || math.Abs(meta.BetaMin-0.001) > 1e-12 {
		t.Errorf("beta range: got %g-%g", meta.BetaMin, meta.BetaMax)
	}
}

func TestLoadSeries(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runID, betas := saveSample(t, s)

	fields, got, err := s.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(fields) != 5 || len(got) != 5 {
		t.Fatalf("expected 5 rows, got %d/%d", len(fields), len(got))
	}

	if math.Abs(fields[0]-1) > 1e-6 || math.Abs(fields[4]-100) > 1e-4 {
		t.Errorf("field endpoints: got %g and %g gauss", fields[0], fields[4])
	}
	for i := range betas {
		if math.Abs(got[i]-betas[i]) > 1e-6*math.Abs(betas[i]) {
			t.Errorf("beta %d: expected %g, got %g", i, betas[i], got[i])
		}
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	saveSample(t, s)

	runs, err = s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir())

	if _, err := s.Load("nope_123"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, _, err := s.LoadSeries("nope_123"); err == nil {
		t.Error("expected error for missing series")
	}
}

func TestSaveMismatchedLengths(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	fields, err := units.Logspace(units.Gauss(1), units.Gauss(100), 5)
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.Save("corona", units.Kelvin(1e6), units.PerCubicCentimeter(1e9), fields, []float64{1, 2})
	if err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
