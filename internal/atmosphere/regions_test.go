package atmosphere

import (
	"testing"

	"github.com/san-kum/plasmalab/internal/units"
)

func TestNames(t *testing.T) {
	names := Names()
	expected := []string{"photosphere", "chromosphere", "corona", "solar_wind"}

	if len(names) != len(expected) {
		t.Fatalf("expected %d regions, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("region %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
}

func TestGet(t *testing.T) {
	r := Get("corona")
	if r == nil {
		t.Fatal("expected corona region, got nil")
	}

	if r.Temperature.Dim() != units.DimTemperature {
		t.Errorf("temperature dimension: %s", r.Temperature.Dim())
	}
	if r.Density.Dim() != units.DimNumberDensity {
		t.Errorf("density dimension: %s", r.Density.Dim())
	}
	if r.Field.Dim() != units.DimMagneticFluxDensity {
		t.Errorf("field dimension: %s", r.Field.Dim())
	}

	g, err := r.Field.In("G")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != 50 {
		t.Errorf("expected 50 G, got %g", g)
	}
}

func TestGetUnknown(t *testing.T) {
	if Get("heliopause") != nil {
		t.Error("expected nil for unknown region")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	r := Get("corona")
	r.Field = units.Gauss(9999)

	if g, _ := Get("corona").Field.In("G"); g != 50 {
		t.Errorf("mutating a returned region leaked into the table: %g G", g)
	}
}
