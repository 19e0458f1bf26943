package formulary_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plasmalab/internal/formulary"
	"github.com/san-kum/plasmalab/internal/units"
)

var _ = Describe("Beta", func() {
	var (
		T = units.Kelvin(1e6)
		n = units.PerCubicCentimeter(1e9)
		B = units.Gauss(50)
	)

	It("is positive for positive inputs", func() {
		beta, err := formulary.Beta(T, n, B)
		Expect(err).NotTo(HaveOccurred())
		Expect(beta).To(BeNumerically(">", 0))
	})

	It("scales as 1/k² in the field", func() {
		base, err := formulary.Beta(T, n, B)
		Expect(err).NotTo(HaveOccurred())

		for _, k := range []float64{2, 5, 10} {
			scaled, err := formulary.Beta(T, n, B.Scale(k))
			Expect(err).NotTo(HaveOccurred())
			Expect(scaled).To(BeNumerically("~", base/(k*k), base*1e-12))
		}
	})

	It("is linear in density", func() {
		base, err := formulary.Beta(T, n, B)
		Expect(err).NotTo(HaveOccurred())

		doubled, err := formulary.Beta(T, n.Scale(2), B)
		Expect(err).NotTo(HaveOccurred())
		Expect(doubled).To(BeNumerically("~", 2*base, base*1e-12))
	})

	It("is linear in temperature", func() {
		base, err := formulary.Beta(T, n, B)
		Expect(err).NotTo(HaveOccurred())

		tripled, err := formulary.Beta(T.Scale(3), n, B)
		Expect(err).NotTo(HaveOccurred())
		Expect(tripled).To(BeNumerically("~", 3*base, base*1e-12))
	})

	It("is invariant under compatible unit changes", func() {
		inGauss, err := formulary.Beta(T, n, units.Gauss(50))
		Expect(err).NotTo(HaveOccurred())

		inTesla, err := formulary.Beta(T, n, units.Tesla(5e-3))
		Expect(err).NotTo(HaveOccurred())
		Expect(inTesla).To(BeNumerically("~", inGauss, inGauss*1e-12))

		inPerM3, err := formulary.Beta(T, units.PerCubicMeter(1e15), units.Gauss(50))
		Expect(err).NotTo(HaveOccurred())
		Expect(inPerM3).To(BeNumerically("~", inGauss, inGauss*1e-12))
	})
})

var _ = Describe("BetaRange", func() {
	var (
		T = units.Kelvin(1e6)
		n = units.PerCubicCentimeter(1e9)
	)

	It("maps elementwise, preserving order and length", func() {
		fields, err := units.SeriesOf(units.Gauss(10), units.Gauss(50), units.Gauss(200))
		Expect(err).NotTo(HaveOccurred())

		betas, err := formulary.BetaRange(T, n, fields)
		Expect(err).NotTo(HaveOccurred())
		Expect(betas).To(HaveLen(fields.Len()))

		for i := range betas {
			single, err := formulary.Beta(T, n, fields.At(i))
			Expect(err).NotTo(HaveOccurred())
			Expect(betas[i]).To(Equal(single))
		}
	})

	It("decreases monotonically with increasing field", func() {
		fields, err := units.Logspace(units.Gauss(1), units.Gauss(1000), 20)
		Expect(err).NotTo(HaveOccurred())

		betas, err := formulary.BetaRange(T, n, fields)
		Expect(err).NotTo(HaveOccurred())

		for i := 1; i < len(betas); i++ {
			Expect(betas[i]).To(BeNumerically("<", betas[i-1]))
		}
	})

	It("rejects a series with the wrong dimension", func() {
		lengths, err := units.SeriesOf(units.MustNew(1, "m"), units.MustNew(2, "m"))
		Expect(err).NotTo(HaveOccurred())

		_, err = formulary.BetaRange(T, n, lengths)
		Expect(err).To(MatchError(units.ErrDimensionMismatch))
	})
})
