package units

import (
	"fmt"
	"math"
)

// Series is an ordered sequence of values sharing a single dimension.
// Order is preserved by every operation.
type Series struct {
	values []float64 // SI
	dim    Dimension
}

// NewSeries builds a series from values expressed in the given unit symbol.
func NewSeries(values []float64, symbol string) (Series, error) {
	u, ok := unitTable[symbol]
	if !ok {
		return Series{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	si := make([]float64, len(values))
	for i, v := range values {
		si[i] = v * u.scale
	}
	return Series{values: si, dim: u.dim}, nil
}

// SeriesOf builds a series from quantities, which must share one dimension.
func SeriesOf(qs ...Quantity) (Series, error) {
	if len(qs) == 0 {
		return Series{}, fmt.Errorf("%w: empty series", ErrBadQuantity)
	}
	dim := qs[0].dim
	values := make([]float64, len(qs))
	for i, q := range qs {
		if q.dim != dim {
			return Series{}, fmt.Errorf("%w: %s vs %s at index %d", ErrDimensionMismatch, dim, q.dim, i)
		}
		values[i] = q.value
	}
	return Series{values: values, dim: dim}, nil
}

// Logspace returns n log-spaced quantities between from and to inclusive.
// The endpoints must share a dimension and be strictly positive.
func Logspace(from, to Quantity, n int) (Series, error) {
	if from.dim != to.dim {
		return Series{}, fmt.Errorf("%w: %s vs %s", ErrDimensionMismatch, from.dim, to.dim)
	}
	if n < 2 {
		return Series{}, fmt.Errorf("%w: logspace needs at least 2 points", ErrBadQuantity)
	}
	if from.value <= 0 || to.value <= 0 {
		return Series{}, fmt.Errorf("%w: logspace endpoints must be positive", ErrBadQuantity)
	}
	values := make([]float64, n)
	ratio := math.Pow(to.value/from.value, 1/float64(n-1))
	v := from.value
	for i := range values {
		values[i] = v
		v *= ratio
	}
	values[n-1] = to.value
	return Series{values: values, dim: from.dim}, nil
}

// Len returns the number of entries.
func (s Series) Len() int { return len(s.values) }

// Dim returns the shared dimension.
func (s Series) Dim() Dimension { return s.dim }

// At returns the i-th entry as a quantity.
func (s Series) At(i int) Quantity { return Quantity{s.values[i], s.dim} }

// In converts every entry into the given unit symbol.
func (s Series) In(symbol string) ([]float64, error) {
	u, ok := unitTable[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	if u.dim != s.dim {
		return nil, fmt.Errorf("%w: cannot express %s in %q", ErrDimensionMismatch, s.dim, symbol)
	}
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = v / u.scale
	}
	return out, nil
}
