// Package formulary provides plasma parameter calculations over dimensioned
// quantities.
//
// The central function is [Beta], the ratio of thermal to magnetic
// pressure:
//
//	β = n k_B T / (B² / 2µ₀)
//
// with [BetaRange] mapping it elementwise over a series of field strengths.
// The rest of the package covers the usual characteristic scales:
//
//   - [AlfvenSpeed], [ThermalSpeed]
//   - [DebyeLength], [Gyroradius]
//   - [PlasmaFrequency], [Gyrofrequency]
//
// All functions are pure. Inputs are checked for dimension (errors wrap
// [units.ErrDimensionMismatch]) and physical validity (negative
// temperature or density wraps [ErrNonPhysical]); any error aborts the
// computation.
package formulary
