package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/physics"
)

var _ = Describe("ResolveWall", func() {
	bounds := dynamo.Bounds{Width: 1024, Height: 768}

	It("reflects and clamps against the left wall", func() {
		b := dynamo.Body{Position: dynamo.V(3, 100), Velocity: dynamo.V(-50, 0), Radius: 5, Mass: 50}

		hits := physics.ResolveWall(&b, bounds)

		Expect(hits).To(Equal(1))
		Expect(b.Velocity.X).To(Equal(50.0))
		Expect(b.Position.X).To(Equal(5.0))
		Expect(b.Position.Y).To(Equal(100.0))
	})

	It("reflects and clamps against the right and bottom walls", func() {
		b := dynamo.Body{Position: dynamo.V(1022, 767), Velocity: dynamo.V(20, 30), Radius: 10, Mass: 100}

		hits := physics.ResolveWall(&b, bounds)

		Expect(hits).To(Equal(2))
		Expect(b.Velocity).To(Equal(dynamo.V(-20, -30)))
		Expect(b.Position).To(Equal(dynamo.V(1014, 758)))
	})

	It("handles a corner bounce on both axes", func() {
		b := dynamo.Body{Position: dynamo.V(-1, -1), Velocity: dynamo.V(-3, -4), Radius: 5, Mass: 50}

		Expect(physics.ResolveWall(&b, bounds)).To(Equal(2))
		Expect(b.Velocity).To(Equal(dynamo.V(3, 4)))
		Expect(b.Position).To(Equal(dynamo.V(5, 5)))
	})

	It("leaves a body inside the bounds untouched", func() {
		b := dynamo.Body{Position: dynamo.V(500, 400), Velocity: dynamo.V(-7, 9), Radius: 30, Mass: 300}
		before := b

		Expect(physics.ResolveWall(&b, bounds)).To(Equal(0))
		Expect(b).To(Equal(before))
	})

	It("keeps a body whose edge touches the wall exactly", func() {
		b := dynamo.Body{Position: dynamo.V(5, 100), Velocity: dynamo.V(-1, 0), Radius: 5, Mass: 50}

		Expect(physics.ResolveWall(&b, bounds)).To(Equal(0))
		Expect(b.Velocity.X).To(Equal(-1.0))
	})
})

var _ = Describe("ResolveContact", func() {
	const eps = physics.DefaultContactEpsilon

	It("exchanges velocities in an equal-mass head-on collision", func() {
		b1 := dynamo.Body{Position: dynamo.V(100, 100), Velocity: dynamo.V(10, 0), Radius: 10, Mass: 100}
		b2 := dynamo.Body{Position: dynamo.V(115, 100), Velocity: dynamo.V(-10, 0), Radius: 10, Mass: 100}

		c := physics.ResolveContact(&b1, &b2, eps)

		Expect(c.Overlap).To(BeTrue())
		Expect(c.Degenerate).To(BeFalse())
		Expect(c.Approach).To(BeNumerically("~", 20, 1e-9))

		Expect(b1.Velocity.X).To(BeNumerically("~", -10, 1e-9))
		Expect(b1.Velocity.Y).To(BeNumerically("~", 0, 1e-9))
		Expect(b2.Velocity.X).To(BeNumerically("~", 10, 1e-9))
		Expect(b2.Velocity.Y).To(BeNumerically("~", 0, 1e-9))

		Expect(b1.Position.Dist(b2.Position)).To(BeNumerically("~", 20, 1e-9))
		mid := b1.Position.Add(b2.Position).Scale(0.5)
		Expect(mid.X).To(BeNumerically("~", 107.5, 1e-9))
		Expect(mid.Y).To(BeNumerically("~", 100, 1e-9))
	})

	It("conserves momentum and kinetic energy for unequal masses", func() {
		b1 := dynamo.Body{Position: dynamo.V(200, 200), Velocity: dynamo.V(35, -12), Radius: 5, Mass: 50}
		b2 := dynamo.Body{Position: dynamo.V(220, 215), Velocity: dynamo.V(-60, 8), Radius: 30, Mass: 300}

		pairs := []dynamo.Body{b1, b2}
		p0 := dynamo.TotalMomentum(pairs)
		e0 := dynamo.TotalKineticEnergy(pairs)

		c := physics.ResolveContact(&pairs[0], &pairs[1], eps)
		Expect(c.Overlap).To(BeTrue())

		p1 := dynamo.TotalMomentum(pairs)
		e1 := dynamo.TotalKineticEnergy(pairs)

		Expect(p1.X).To(BeNumerically("~", p0.X, 1e-9))
		Expect(p1.Y).To(BeNumerically("~", p0.Y, 1e-9))
		Expect(e1).To(BeNumerically("~", e0, 1e-6))
		Expect(pairs[0].Gap(pairs[1])).To(BeNumerically("~", 0, 1e-9))
	})

	It("ignores bodies that do not overlap", func() {
		b1 := dynamo.Body{Position: dynamo.V(0, 0), Velocity: dynamo.V(1, 1), Radius: 5, Mass: 50}
		b2 := dynamo.Body{Position: dynamo.V(10, 0), Velocity: dynamo.V(-1, 1), Radius: 5, Mass: 50}
		before1, before2 := b1, b2

		Expect(physics.ResolveContact(&b1, &b2, eps)).To(Equal(physics.Contact{}))
		Expect(b1).To(Equal(before1))
		Expect(b2).To(Equal(before2))
	})

	It("skips coincident centres without producing NaN", func() {
		b1 := dynamo.Body{Position: dynamo.V(50, 50), Velocity: dynamo.V(3, 0), Radius: 10, Mass: 100}
		b2 := dynamo.Body{Position: dynamo.V(50, 50), Velocity: dynamo.V(-3, 0), Radius: 10, Mass: 100}

		c := physics.ResolveContact(&b1, &b2, eps)

		Expect(c.Overlap).To(BeTrue())
		Expect(c.Degenerate).To(BeTrue())
		Expect(b1.IsValid()).To(BeTrue())
		Expect(b2.IsValid()).To(BeTrue())
		Expect(b1.Velocity).To(Equal(dynamo.V(3, 0)))
	})
})

var _ = Describe("Advance", func() {
	It("caps only positive velocity components", func() {
		b := dynamo.Body{Position: dynamo.V(0, 0), Velocity: dynamo.V(400, -500), Radius: 5, Mass: 50}

		physics.Advance(&b, 0.1, 150)

		Expect(b.Velocity.X).To(Equal(150.0))
		Expect(b.Velocity.Y).To(Equal(-500.0))
		Expect(b.Position.X).To(BeNumerically("~", 15, 1e-9))
		Expect(b.Position.Y).To(BeNumerically("~", -50, 1e-9))
	})

	It("moves by velocity times dt below the limit", func() {
		b := dynamo.Body{Position: dynamo.V(10, 20), Velocity: dynamo.V(30, 40), Radius: 5, Mass: 50}

		physics.Advance(&b, 0.5, 150)

		Expect(b.Position).To(Equal(dynamo.V(25, 40)))
		Expect(b.Velocity).To(Equal(dynamo.V(30, 40)))
	})

	It("does nothing to position when dt is zero", func() {
		b := dynamo.Body{Position: dynamo.V(10, 20), Velocity: dynamo.V(30, 40), Radius: 5, Mass: 50}

		physics.Advance(&b, 0, 150)

		Expect(b.Position).To(Equal(dynamo.V(10, 20)))
	})
})

var _ = Describe("Vec2", func() {
	It("computes distance", func() {
		Expect(dynamo.V(0, 0).Dist(dynamo.V(3, 4))).To(Equal(5.0))
		Expect(math.IsNaN(dynamo.V(0, 0).Dist(dynamo.V(0, 0)))).To(BeFalse())
	})
})
