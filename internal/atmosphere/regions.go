// Package atmosphere defines canonical solar-atmosphere regions with
// literature parameter values.
package atmosphere

import "github.com/san-kum/plasmalab/internal/units"

// Region is a named set of plasma parameters.
type Region struct {
	Name        string
	Description string
	Temperature units.Quantity
	Density     units.Quantity
	Field       units.Quantity
	Reference   string
}

// Canonical values follow Gary (2001), Sol. Phys. 203, 71 and
// Aschwanden (2005); the solar wind entry uses typical 1 AU conditions
// from Bruno & Carbone (2013).
var regions = []Region{
	{
		Name:        "photosphere",
		Description: "visible surface, plage field",
		Temperature: units.Kelvin(5800),
		Density:     units.PerCubicCentimeter(1e17),
		Field:       units.Gauss(400),
		Reference:   "Gary (2001)",
	},
	{
		Name:        "chromosphere",
		Description: "middle chromosphere above an active region",
		Temperature: units.Kelvin(1e4),
		Density:     units.PerCubicCentimeter(1e13),
		Field:       units.Gauss(100),
		Reference:   "Gary (2001)",
	},
	{
		Name:        "corona",
		Description: "quiet corona at 1.1 solar radii",
		Temperature: units.Kelvin(1e6),
		Density:     units.PerCubicCentimeter(1e9),
		Field:       units.Gauss(50),
		Reference:   "Aschwanden (2005)",
	},
	{
		Name:        "solar_wind",
		Description: "slow solar wind at 1 AU",
		Temperature: units.Kelvin(1e5),
		Density:     units.PerCubicCentimeter(10),
		Field:       units.MustNew(5, "nT"),
		Reference:   "Bruno & Carbone (2013)",
	},
}

// Get returns the named region, or nil if unknown.
func Get(name string) *Region {
	for i := range regions {
		if regions[i].Name == name {
			r := regions[i]
			return &r
		}
	}
	return nil
}

// Names lists the region names in atmosphere order.
func Names() []string {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}
	return names
}

// All returns a copy of the region list.
func All() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}
