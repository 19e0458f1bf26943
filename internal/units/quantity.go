package units

import (
	"fmt"
	"math"
)

// Quantity is a scalar physical value. The magnitude is held in SI units of
// its dimension, regardless of the unit it was constructed from.
type Quantity struct {
	value float64
	dim   Dimension
}

// New builds a quantity from a value expressed in the given unit symbol.
func New(value float64, symbol string) (Quantity, error) {
	u, ok := unitTable[symbol]
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return Quantity{value: value * u.scale, dim: u.dim}, nil
}

// MustNew is New for literal constants; it panics on an unknown symbol.
func MustNew(value float64, symbol string) Quantity {
	q, err := New(value, symbol)
	if err != nil {
		panic(err)
	}
	return q
}

// Typed constructors for the units the formulary touches most.

func Kelvin(v float64) Quantity             { return Quantity{v, DimTemperature} }
func PerCubicMeter(v float64) Quantity      { return Quantity{v, DimNumberDensity} }
func PerCubicCentimeter(v float64) Quantity { return Quantity{v * 1e6, DimNumberDensity} }
func Tesla(v float64) Quantity              { return Quantity{v, DimMagneticFluxDensity} }
func Gauss(v float64) Quantity              { return Quantity{v * 1e-4, DimMagneticFluxDensity} }
func Pascal(v float64) Quantity             { return Quantity{v, DimPressure} }

// SI returns the magnitude in SI units of the quantity's dimension.
func (q Quantity) SI() float64 { return q.value }

// Dim returns the quantity's dimension.
func (q Quantity) Dim() Dimension { return q.dim }

// IsNaN reports whether the magnitude is NaN.
func (q Quantity) IsNaN() bool { return math.IsNaN(q.value) }

// In converts the quantity into the given unit symbol. It fails if the
// symbol is unknown or belongs to a different dimension.
func (q Quantity) In(symbol string) (float64, error) {
	u, ok := unitTable[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	if u.dim != q.dim {
		return 0, fmt.Errorf("%w: cannot express %s in %q", ErrDimensionMismatch, q.dim, symbol)
	}
	return q.value / u.scale, nil
}

// Mul returns q·o. Dimensions compose, so this never fails.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{q.value * o.value, q.dim.add(o.dim)}
}

// Div returns q/o.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{q.value / o.value, q.dim.sub(o.dim)}
}

// Pow raises the quantity to an integer power.
func (q Quantity) Pow(k int) Quantity {
	return Quantity{math.Pow(q.value, float64(k)), q.dim.scale(k)}
}

// Scale multiplies the magnitude by a dimensionless factor.
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{q.value * k, q.dim}
}

// Add returns q+o, failing across dimensions.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.dim != o.dim {
		return Quantity{}, fmt.Errorf("%w: %s + %s", ErrDimensionMismatch, q.dim, o.dim)
	}
	return Quantity{q.value + o.value, q.dim}, nil
}

// Sub returns q-o, failing across dimensions.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if q.dim != o.dim {
		return Quantity{}, fmt.Errorf("%w: %s - %s", ErrDimensionMismatch, q.dim, o.dim)
	}
	return Quantity{q.value - o.value, q.dim}, nil
}

// Sqrt takes the square root; every dimension exponent must be even.
func Sqrt(q Quantity) (Quantity, error) {
	d := q.dim
	if d.Mass%2 != 0 || d.Length%2 != 0 || d.Time%2 != 0 || d.Temperature%2 != 0 || d.Current%2 != 0 {
		return Quantity{}, fmt.Errorf("%w: sqrt of %s", ErrDimensionMismatch, d)
	}
	if q.value < 0 {
		return Quantity{}, fmt.Errorf("%w: sqrt of negative quantity", ErrBadQuantity)
	}
	return Quantity{math.Sqrt(q.value), Dimension{
		Mass:        d.Mass / 2,
		Length:      d.Length / 2,
		Time:        d.Time / 2,
		Temperature: d.Temperature / 2,
		Current:     d.Current / 2,
	}}, nil
}

func (q Quantity) String() string {
	if q.dim.IsDimensionless() {
		return fmt.Sprintf("%g", q.value)
	}
	return fmt.Sprintf("%g %s", q.value, q.dim)
}
