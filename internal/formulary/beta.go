package formulary

import (
	"errors"
	"fmt"

	"github.com/san-kum/plasmalab/internal/constants"
	"github.com/san-kum/plasmalab/internal/units"
)

// ErrNonPhysical indicates an input value outside its physical range
// (negative absolute temperature or density, or NaN).
var ErrNonPhysical = errors.New("formulary: non-physical value")

// kelvin normalizes a temperature input to a kelvin quantity. Energy
// units are accepted and converted through k_B.
func kelvin(T units.Quantity) (units.Quantity, error) {
	var out units.Quantity
	switch T.Dim() {
	case units.DimTemperature:
		out = T
	case units.DimEnergy:
		out = T.Div(constants.Boltzmann)
	default:
		return units.Quantity{}, fmt.Errorf("%w: temperature has dimension %s, want %s", units.ErrDimensionMismatch, T.Dim(), units.DimTemperature)
	}
	if out.IsNaN() || out.SI() < 0 {
		return units.Quantity{}, fmt.Errorf("%w: temperature %v", ErrNonPhysical, out)
	}
	return out, nil
}

func numberDensity(n units.Quantity) (units.Quantity, error) {
	if n.Dim() != units.DimNumberDensity {
		return units.Quantity{}, fmt.Errorf("%w: density has dimension %s, want %s", units.ErrDimensionMismatch, n.Dim(), units.DimNumberDensity)
	}
	if n.IsNaN() || n.SI() < 0 {
		return units.Quantity{}, fmt.Errorf("%w: density %v", ErrNonPhysical, n)
	}
	return n, nil
}

func fluxDensity(B units.Quantity) (units.Quantity, error) {
	if B.Dim() != units.DimMagneticFluxDensity {
		return units.Quantity{}, fmt.Errorf("%w: field has dimension %s, want %s", units.ErrDimensionMismatch, B.Dim(), units.DimMagneticFluxDensity)
	}
	if B.IsNaN() {
		return units.Quantity{}, fmt.Errorf("%w: field %v", ErrNonPhysical, B)
	}
	return B, nil
}

func particleMass(m units.Quantity) (units.Quantity, error) {
	if m.Dim() != units.DimMass {
		return units.Quantity{}, fmt.Errorf("%w: mass has dimension %s, want %s", units.ErrDimensionMismatch, m.Dim(), units.DimMass)
	}
	if m.IsNaN() || m.SI() <= 0 {
		return units.Quantity{}, fmt.Errorf("%w: mass %v", ErrNonPhysical, m)
	}
	return m, nil
}

// ThermalPressure returns p = n·k_B·T.
func ThermalPressure(T, n units.Quantity) (units.Quantity, error) {
	tq, err := kelvin(T)
	if err != nil {
		return units.Quantity{}, err
	}
	nq, err := numberDensity(n)
	if err != nil {
		return units.Quantity{}, err
	}
	return nq.Mul(constants.Boltzmann).Mul(tq), nil
}

// MagneticPressure returns p = B²/(2µ₀). The field sign is orientation
// and drops out.
func MagneticPressure(B units.Quantity) (units.Quantity, error) {
	bq, err := fluxDensity(B)
	if err != nil {
		return units.Quantity{}, err
	}
	return bq.Pow(2).Div(constants.Mu0.Scale(2)), nil
}

// Beta returns the plasma beta, the dimensionless ratio of thermal to
// magnetic pressure. A zero field yields +Inf.
func Beta(T, n, B units.Quantity) (float64, error) {
	tp, err := ThermalPressure(T, n)
	if err != nil {
		return 0, err
	}
	mp, err := MagneticPressure(B)
	if err != nil {
		return 0, err
	}
	return tp.Div(mp).SI(), nil
}

// BetaRange maps Beta elementwise over a series of field strengths,
// preserving order. The result has the same length as B.
func BetaRange(T, n units.Quantity, B units.Series) ([]float64, error) {
	if B.Dim() != units.DimMagneticFluxDensity {
		return nil, fmt.Errorf("%w: field series has dimension %s, want %s", units.ErrDimensionMismatch, B.Dim(), units.DimMagneticFluxDensity)
	}
	tp, err := ThermalPressure(T, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, B.Len())
	for i := range out {
		mp, err := MagneticPressure(B.At(i))
		if err != nil {
			return nil, err
		}
		out[i] = tp.Div(mp).SI()
	}
	return out, nil
}

// Regime labels a beta value by which pressure dominates the dynamics.
func Regime(beta float64) string {
	switch {
	case beta < 0.1:
		return "magnetically dominated"
	case beta > 10:
		return "pressure dominated"
	default:
		return "intermediate"
	}
}
