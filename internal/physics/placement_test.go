package physics_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/physics"
	"github.com/san-kum/collide/internal/rng"
)

var _ = Describe("Place", func() {
	bounds := dynamo.Bounds{Width: 1024, Height: 768}

	DescribeTable("produces a valid layout",
		func(seed int64) {
			p := physics.DefaultPlacement(bounds)
			bodies, err := physics.Place(rng.New(seed), p)
			Expect(err).NotTo(HaveOccurred())

			Expect(len(bodies)).To(BeNumerically(">=", p.MinBalls))
			Expect(len(bodies)).To(BeNumerically("<=", p.MaxBalls))

			for i, b := range bodies {
				Expect(b.Radius).To(BeNumerically(">=", p.MinRadius))
				Expect(b.Radius).To(BeNumerically("<=", p.MaxRadius))
				Expect(b.Mass).To(Equal(b.Radius * 10))
				Expect(b.Velocity.X).To(BeNumerically(">=", -100))
				Expect(b.Velocity.X).To(BeNumerically("<=", 100))
				Expect(b.Velocity.Y).To(BeNumerically(">=", -100))
				Expect(b.Velocity.Y).To(BeNumerically("<=", 100))
				Expect(b.Position.X).To(BeNumerically(">=", p.MaxRadius))
				Expect(b.Position.X).To(BeNumerically("<=", bounds.Width-float64(p.MaxRadius)))
				Expect(b.Position.Y).To(BeNumerically(">=", p.MaxRadius))
				Expect(b.Position.Y).To(BeNumerically("<=", bounds.Height-float64(p.MaxRadius)))

				for j := i + 1; j < len(bodies); j++ {
					Expect(b.Position.Dist(bodies[j].Position)).To(
						BeNumerically(">=", b.Radius+bodies[j].Radius),
						"bodies %d and %d overlap", i, j)
				}
			}
		},
		Entry("seed 1", int64(1)),
		Entry("seed 7", int64(7)),
		Entry("seed 42", int64(42)),
		Entry("seed 2024", int64(2024)),
	)

	It("is reproducible for a fixed seed", func() {
		p := physics.DefaultPlacement(bounds)
		a, err := physics.Place(rng.New(5), p)
		Expect(err).NotTo(HaveOccurred())
		b, err := physics.Place(rng.New(5), p)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("honours a custom mass factor", func() {
		p := physics.DefaultPlacement(bounds)
		p.MinBalls, p.MaxBalls = 5, 5
		p.MassFactor = 2.5

		bodies, err := physics.Place(rng.New(3), p)
		Expect(err).NotTo(HaveOccurred())
		Expect(bodies).To(HaveLen(5))
		for _, b := range bodies {
			Expect(b.Mass).To(Equal(b.Radius * 2.5))
		}
	})

	It("fails with ErrPlacementInfeasible when bodies cannot fit", func() {
		p := physics.DefaultPlacement(dynamo.Bounds{Width: 100, Height: 100})
		p.MinBalls, p.MaxBalls = 20, 20
		p.MinRadius, p.MaxRadius = 30, 30
		p.MaxAttempts = 200

		bodies, err := physics.Place(rng.New(11), p)

		Expect(err).To(MatchError(dynamo.ErrPlacementInfeasible))
		var perr *dynamo.PlacementError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Attempts).To(Equal(200))
		Expect(perr.Placed).To(Equal(len(bodies)))
		Expect(perr.Index).To(Equal(len(bodies)))
		Expect(len(bodies)).To(BeNumerically("<", 20))
	})

	It("returns no bodies when the count range is zero", func() {
		p := physics.DefaultPlacement(bounds)
		p.MinBalls, p.MaxBalls = 0, 0

		bodies, err := physics.Place(rng.New(1), p)
		Expect(err).NotTo(HaveOccurred())
		Expect(bodies).To(BeEmpty())
	})

	DescribeTable("rejects invalid parameters",
		func(mutate func(*physics.Placement)) {
			p := physics.DefaultPlacement(bounds)
			mutate(&p)
			_, err := physics.Place(rng.New(1), p)
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
		},
		Entry("inverted count range", func(p *physics.Placement) { p.MinBalls, p.MaxBalls = 10, 5 }),
		Entry("zero radius", func(p *physics.Placement) { p.MinRadius = 0 }),
		Entry("inverted radius range", func(p *physics.Placement) { p.MinRadius, p.MaxRadius = 20, 10 }),
		Entry("non-positive mass factor", func(p *physics.Placement) { p.MassFactor = 0 }),
		Entry("bounds smaller than a body", func(p *physics.Placement) { p.Bounds = dynamo.Bounds{Width: 40, Height: 768} }),
	)
})
