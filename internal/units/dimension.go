package units

import (
	"fmt"
	"strings"
)

// Dimension holds the exponents of the five SI base dimensions used by the
// formulary. The zero value is dimensionless.
type Dimension struct {
	Mass        int // kilogram
	Length      int // metre
	Time        int // second
	Temperature int // kelvin
	Current     int // ampere
}

// Common dimensions.
var (
	Dimensionless          = Dimension{}
	DimTemperature         = Dimension{Temperature: 1}
	DimNumberDensity       = Dimension{Length: -3}
	DimMagneticFluxDensity = Dimension{Mass: 1, Time: -2, Current: -1}
	DimPressure            = Dimension{Mass: 1, Length: -1, Time: -2}
	DimEnergy              = Dimension{Mass: 1, Length: 2, Time: -2}
	DimMassDensity         = Dimension{Mass: 1, Length: -3}
	DimMass                = Dimension{Mass: 1}
	DimLength              = Dimension{Length: 1}
	DimSpeed               = Dimension{Length: 1, Time: -1}
	DimFrequency           = Dimension{Time: -1}
)

func (d Dimension) add(o Dimension) Dimension {
	return Dimension{
		Mass:        d.Mass + o.Mass,
		Length:      d.Length + o.Length,
		Time:        d.Time + o.Time,
		Temperature: d.Temperature + o.Temperature,
		Current:     d.Current + o.Current,
	}
}

func (d Dimension) sub(o Dimension) Dimension {
	return Dimension{
		Mass:        d.Mass - o.Mass,
		Length:      d.Length - o.Length,
		Time:        d.Time - o.Time,
		Temperature: d.Temperature - o.Temperature,
		Current:     d.Current - o.Current,
	}
}

func (d Dimension) scale(k int) Dimension {
	return Dimension{
		Mass:        d.Mass * k,
		Length:      d.Length * k,
		Time:        d.Time * k,
		Temperature: d.Temperature * k,
		Current:     d.Current * k,
	}
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// String renders the dimension in SI base symbols, e.g. "kg m^-1 s^-2".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "dimensionless"
	}
	var b strings.Builder
	write := func(sym string, exp int) {
		if exp == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if exp == 1 {
			b.WriteString(sym)
			return
		}
		fmt.Fprintf(&b, "%s^%d", sym, exp)
	}
	write("kg", d.Mass)
	write("m", d.Length)
	write("s", d.Time)
	write("K", d.Temperature)
	write("A", d.Current)
	return b.String()
}
