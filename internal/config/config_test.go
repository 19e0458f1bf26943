package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/plasmalab/internal/units"
)

const sampleYAML = `regions:
  - name: coronal_hole
    description: open field region
    temperature: 8e5 K
    density: 3e8 cm^-3
    field: 10 G
  - name: active_region
    temperature: 2.5e6 K
    density: 1e10 cm^-3
    field: 100 G
`

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	regions, err := f.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}

	if regions[0].Name != "coronal_hole" {
		t.Errorf("expected coronal_hole, got %s", regions[0].Name)
	}
	g, err := regions[0].Field.In("G")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(g-10) > 1e-9 {
		t.Errorf("expected 10 G, got %g", g)
	}
	tk, err := regions[1].Temperature.In("K")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(tk-2.5e6) > 1 {
		t.Errorf("expected 2.5e6 K, got %g", tk)
	}
}

func TestResolveBadDimension(t *testing.T) {
	f := &File{Regions: []RegionConfig{{
		Name:        "broken",
		Temperature: "1e6 K",
		Density:     "1e9 cm^-3",
		Field:       "50 m",
	}}}

	_, err := f.Resolve()
	if !errors.Is(err, units.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestResolveMissingName(t *testing.T) {
	f := &File{Regions: []RegionConfig{{
		Temperature: "1e6 K",
		Density:     "1e9 cm^-3",
		Field:       "50 G",
	}}}

	if _, err := f.Resolve(); err == nil {
		t.Error("expected error for unnamed region")
	}
}

func TestDefaultResolves(t *testing.T) {
	regions, err := Default().Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 4 {
		t.Errorf("expected 4 canonical regions, got %d", len(regions))
	}
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	if err := Save(path, Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	regions, err := f.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 4 {
		t.Errorf("expected 4 regions after roundtrip, got %d", len(regions))
	}
}
