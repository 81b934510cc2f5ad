package wave_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/r7vme/ripple/internal/field"
	"github.com/r7vme/ripple/internal/wave"
)

var _ = Describe("Stepper", func() {
	newImpulseSim := func() *wave.Simulator {
		u0 := field.NewGrid(3, 3)
		u0.Set(1, 1, 1.0)
		sim, err := wave.New(3, u0, field.NewGrid(3, 3))
		Expect(err).NotTo(HaveOccurred())
		return sim
	}

	Describe("a single undamped step from a centered impulse", func() {
		var sim *wave.Simulator

		BeforeEach(func() {
			sim = newImpulseSim()
			Expect(sim.Step(wave.Params{Eps: 0.1, Damping: 0.0, WaveSpeed: 1.0})).To(Succeed())
		})

		It("leaves the displacement unchanged while velocity was zero", func() {
			u := sim.Displacement()
			Expect(u.At(1, 1)).To(Equal(1.0))
			Expect(u.At(0, 0)).To(BeZero())
		})

		It("kicks the velocity by eps times the Laplacian", func() {
			v := sim.Velocity()
			Expect(v.At(1, 1)).To(BeNumerically("~", -0.3, 1e-12))
			Expect(v.At(0, 1)).To(BeNumerically("~", 0.05, 1e-12))
			Expect(v.At(0, 0)).To(BeNumerically("~", 0.025, 1e-12))
		})
	})

	Describe("shape invariant", func() {
		It("keeps both grids at the constructed size across steps", func() {
			sim := newImpulseSim()
			for i := 0; i < 17; i++ {
				Expect(sim.Step(wave.ReferenceParams())).To(Succeed())
			}
			Expect(sim.Displacement().Rows()).To(Equal(3))
			Expect(sim.Displacement().Cols()).To(Equal(3))
			Expect(sim.Velocity().Rows()).To(Equal(3))
			Expect(sim.Velocity().Cols()).To(Equal(3))
		})
	})

	Describe("damping", func() {
		It("decays velocity faster than the undamped run", func() {
			damped := newImpulseSim()
			undamped := newImpulseSim()

			for i := 0; i < 100; i++ {
				Expect(damped.Step(wave.Params{Eps: 0.03, Damping: 0.5, WaveSpeed: 1.0})).To(Succeed())
				Expect(undamped.Step(wave.Params{Eps: 0.03, Damping: 0.0, WaveSpeed: 1.0})).To(Succeed())
			}

			Expect(damped.Velocity().MaxAbs()).To(BeNumerically("<", undamped.Velocity().MaxAbs()))
		})
	})

	Describe("Laplacian accessor", func() {
		It("matches the direct convolution", func() {
			sim := newImpulseSim()
			g := field.NewGrid(3, 3)
			g.Set(1, 1, 2.0)

			got, err := sim.Laplacian(g)
			Expect(err).NotTo(HaveOccurred())

			want := field.NewGrid(3, 3)
			Expect(field.Convolve(want, g, field.LaplacianKernel)).To(Succeed())
			Expect(got.Data()).To(Equal(want.Data()))
		})
	})
})
