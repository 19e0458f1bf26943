package units

import (
	"fmt"
	"strconv"
	"strings"
)

type unit struct {
	dim   Dimension
	scale float64 // SI per one of this unit
}

// unitTable maps a symbol to its dimension and exact SI scale.
var unitTable = map[string]unit{
	// temperature
	"K": {DimTemperature, 1},

	// energy (accepted for energy-convertible temperatures)
	"J":   {DimEnergy, 1},
	"eV":  {DimEnergy, 1.602176634e-19},
	"keV": {DimEnergy, 1.602176634e-16},

	// number density
	"m^-3":  {DimNumberDensity, 1},
	"cm^-3": {DimNumberDensity, 1e6},

	// magnetic flux density
	"T":  {DimMagneticFluxDensity, 1},
	"mT": {DimMagneticFluxDensity, 1e-3},
	"uT": {DimMagneticFluxDensity, 1e-6},
	"nT": {DimMagneticFluxDensity, 1e-9},
	"G":  {DimMagneticFluxDensity, 1e-4},
	"kG": {DimMagneticFluxDensity, 1e-1},

	// pressure
	"Pa":  {DimPressure, 1},
	"kPa": {DimPressure, 1e3},

	// mass and mass density
	"kg":     {DimMass, 1},
	"g":      {DimMass, 1e-3},
	"kg/m^3": {DimMassDensity, 1},
	"g/cm^3": {DimMassDensity, 1e3},

	// length
	"m":  {DimLength, 1},
	"cm": {DimLength, 1e-2},
	"mm": {DimLength, 1e-3},
	"km": {DimLength, 1e3},

	// time and frequency
	"s":     {Dimension{Time: 1}, 1},
	"Hz":    {DimFrequency, 1},
	"rad/s": {DimFrequency, 1},

	// speed
	"m/s":  {DimSpeed, 1},
	"km/s": {DimSpeed, 1e3},

	// composite symbols used by the physical constants
	"J/K":   {Dimension{Mass: 1, Length: 2, Time: -2, Temperature: -1}, 1},
	"N/A^2": {Dimension{Mass: 1, Length: 1, Time: -2, Current: -2}, 1},
	"F/m":   {Dimension{Mass: -1, Length: -3, Time: 4, Current: 2}, 1},
	"C":     {Dimension{Time: 1, Current: 1}, 1},
}

// Parse reads a quantity from text of the form "<number> <symbol>", e.g.
// "50 G", "1e9 cm^-3" or "5800K". The space is optional.
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, fmt.Errorf("%w: empty string", ErrBadQuantity)
	}

	// Longest prefix that parses as a float is the magnitude; unit symbols
	// may themselves contain digits (cm^-3), so scan from the back.
	split := 0
	for i := len(s); i > 0; i-- {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64); err == nil {
			split = i
			break
		}
	}
	if split == 0 {
		return Quantity{}, fmt.Errorf("%w: %q", ErrBadQuantity, s)
	}

	value, _ := strconv.ParseFloat(strings.TrimSpace(s[:split]), 64)
	symbol := strings.TrimSpace(s[split:])
	if symbol == "" {
		return Quantity{}, fmt.Errorf("%w: %q has no unit", ErrBadQuantity, s)
	}
	return New(value, symbol)
}
