package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/plasmalab/internal/atmosphere"
	"github.com/san-kum/plasmalab/internal/units"
)

// File is a YAML region-set definition. Parameter values are quantity
// strings like "1e6 K", "1e9 cm^-3" or "50 G".
type File struct {
	Regions []RegionConfig `yaml:"regions"`
}

type RegionConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Temperature string `yaml:"temperature"`
	Density     string `yaml:"density"`
	Field       string `yaml:"field"`
	Reference   string `yaml:"reference,omitempty"`
}

// Default returns the canonical solar-atmosphere regions as a region set,
// useful as a starting point for a custom file.
func Default() *File {
	f := &File{}
	for _, r := range atmosphere.All() {
		tk, _ := r.Temperature.In("K")
		nc, _ := r.Density.In("cm^-3")
		bg, _ := r.Field.In("G")
		f.Regions = append(f.Regions, RegionConfig{
			Name:        r.Name,
			Description: r.Description,
			Temperature: fmt.Sprintf("%g K", tk),
			Density:     fmt.Sprintf("%g cm^-3", nc),
			Field:       fmt.Sprintf("%g G", bg),
			Reference:   r.Reference,
		})
	}
	return f
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}

func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve parses every region's quantity strings and checks dimensions.
func (f *File) Resolve() ([]atmosphere.Region, error) {
	out := make([]atmosphere.Region, 0, len(f.Regions))
	for _, rc := range f.Regions {
		if rc.Name == "" {
			return nil, fmt.Errorf("config: region without a name")
		}
		T, err := parseAs(rc.Temperature, units.DimTemperature, units.DimEnergy)
		if err != nil {
			return nil, fmt.Errorf("config: region %q temperature: %w", rc.Name, err)
		}
		n, err := parseAs(rc.Density, units.DimNumberDensity)
		if err != nil {
			return nil, fmt.Errorf("config: region %q density: %w", rc.Name, err)
		}
		B, err := parseAs(rc.Field, units.DimMagneticFluxDensity)
		if err != nil {
			return nil, fmt.Errorf("config: region %q field: %w", rc.Name, err)
		}
		out = append(out, atmosphere.Region{
			Name:        rc.Name,
			Description: rc.Description,
			Temperature: T,
			Density:     n,
			Field:       B,
			Reference:   rc.Reference,
		})
	}
	return out, nil
}

func parseAs(s string, dims ...units.Dimension) (units.Quantity, error) {
	q, err := units.Parse(s)
	if err != nil {
		return units.Quantity{}, err
	}
	for _, d := range dims {
		if q.Dim() == d {
			return q, nil
		}
	}
	return units.Quantity{}, fmt.Errorf("%w: %q has dimension %s", units.ErrDimensionMismatch, s, q.Dim())
}
