// Package constants holds the physical constants used by the formulary,
// CODATA 2018 values, as dimensioned quantities.
package constants

import "github.com/san-kum/plasmalab/internal/units"

var (
	// Boltzmann is k_B.
	Boltzmann = units.MustNew(1.380649e-23, "J/K")

	// Mu0 is the vacuum permeability µ₀.
	Mu0 = units.MustNew(1.25663706212e-6, "N/A^2")

	// Epsilon0 is the vacuum permittivity ε₀.
	Epsilon0 = units.MustNew(8.8541878128e-12, "F/m")

	ElementaryCharge = units.MustNew(1.602176634e-19, "C")
	ElectronMass     = units.MustNew(9.1093837015e-31, "kg")
	ProtonMass       = units.MustNew(1.67262192369e-27, "kg")
	SpeedOfLight     = units.MustNew(2.99792458e8, "m/s")
)
