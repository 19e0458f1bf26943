package formulary

import (
	"github.com/san-kum/plasmalab/internal/constants"
	"github.com/san-kum/plasmalab/internal/units"
)

// AlfvenSpeed returns v_A = B/√(µ₀ρ) for an ion number density n, taking
// the mass density as ρ = n·m_p.
func AlfvenSpeed(B, n units.Quantity) (units.Quantity, error) {
	bq, err := fluxDensity(B)
	if err != nil {
		return units.Quantity{}, err
	}
	nq, err := numberDensity(n)
	if err != nil {
		return units.Quantity{}, err
	}
	rho := nq.Mul(constants.ProtonMass)
	root, err := units.Sqrt(constants.Mu0.Mul(rho))
	if err != nil {
		return units.Quantity{}, err
	}
	return bq.Div(root), nil
}

// ThermalSpeed returns the most probable speed √(2 k_B T / m).
func ThermalSpeed(T, mass units.Quantity) (units.Quantity, error) {
	tq, err := kelvin(T)
	if err != nil {
		return units.Quantity{}, err
	}
	mq, err := particleMass(mass)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.Sqrt(constants.Boltzmann.Mul(tq).Scale(2).Div(mq))
}

// DebyeLength returns λ_D = √(ε₀ k_B T / n e²).
func DebyeLength(T, n units.Quantity) (units.Quantity, error) {
	tq, err := kelvin(T)
	if err != nil {
		return units.Quantity{}, err
	}
	nq, err := numberDensity(n)
	if err != nil {
		return units.Quantity{}, err
	}
	num := constants.Epsilon0.Mul(constants.Boltzmann).Mul(tq)
	den := nq.Mul(constants.ElementaryCharge.Pow(2))
	return units.Sqrt(num.Div(den))
}

// PlasmaFrequency returns ω_p = √(n e² / ε₀ m) in rad/s.
func PlasmaFrequency(n, mass units.Quantity) (units.Quantity, error) {
	nq, err := numberDensity(n)
	if err != nil {
		return units.Quantity{}, err
	}
	mq, err := particleMass(mass)
	if err != nil {
		return units.Quantity{}, err
	}
	num := nq.Mul(constants.ElementaryCharge.Pow(2))
	return units.Sqrt(num.Div(constants.Epsilon0.Mul(mq)))
}

// Gyrofrequency returns ω_c = eB/m in rad/s.
func Gyrofrequency(B, mass units.Quantity) (units.Quantity, error) {
	bq, err := fluxDensity(B)
	if err != nil {
		return units.Quantity{}, err
	}
	mq, err := particleMass(mass)
	if err != nil {
		return units.Quantity{}, err
	}
	return constants.ElementaryCharge.Mul(bq).Div(mq), nil
}

// Gyroradius returns r_c = v_th/ω_c for a thermal particle.
func Gyroradius(B, T, mass units.Quantity) (units.Quantity, error) {
	vth, err := ThermalSpeed(T, mass)
	if err != nil {
		return units.Quantity{}, err
	}
	wc, err := Gyrofrequency(B, mass)
	if err != nil {
		return units.Quantity{}, err
	}
	return vth.Div(wc), nil
}
