// Package units provides dimensioned physical quantities.
//
// The package defines the fundamental types for unit-safe plasma
// calculations:
//
//   - [Dimension]: exponents over the SI base dimensions
//   - [Quantity]: a scalar value tagged with a Dimension
//   - [Series]: an ordered sequence of values sharing one Dimension
//
// Values are stored internally in SI; constructors and [Parse] accept any
// symbol in the unit table (K, eV, cm^-3, G, T, Pa, ...), and conversion
// back out is an exact scale multiplication. Arithmetic between quantities
// composes dimensions; operations that only make sense within one
// dimension (Add, Sub, In) fail with [ErrDimensionMismatch] rather than
// producing a nonsense value.
//
// # Example
//
//	B, _ := units.Parse("50 G")
//	g, _ := B.In("mT") // 5.0
package units
