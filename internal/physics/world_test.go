package physics_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/physics"
	"github.com/san-kum/collide/internal/rng"
)

var _ = Describe("World", func() {
	bounds := dynamo.Bounds{Width: 1024, Height: 768}

	It("keeps bodies near the viewport over many frames", func() {
		bodies, err := physics.Place(rng.New(99), physics.DefaultPlacement(bounds))
		Expect(err).NotTo(HaveOccurred())
		w := physics.NewWorld(bodies, bounds, physics.DefaultOptions())

		const dt = 1.0 / 60
		for frame := 0; frame < 600; frame++ {
			w.Step(dt)
			Expect(w.FirstInvalid()).To(Equal(-1))

			for _, b := range w.Bodies {
				// a body may be pushed by later contacts and then moved once
				// after its wall check; the next frame clamps it again
				slackX := physics.DefaultMaxRadius + math.Abs(b.Velocity.X)*dt
				slackY := physics.DefaultMaxRadius + math.Abs(b.Velocity.Y)*dt
				Expect(b.Position.X).To(BeNumerically(">=", b.Radius-slackX))
				Expect(b.Position.X).To(BeNumerically("<=", bounds.Width-b.Radius+slackX))
				Expect(b.Position.Y).To(BeNumerically(">=", b.Radius-slackY))
				Expect(b.Position.Y).To(BeNumerically("<=", bounds.Height-b.Radius+slackY))
			}
		}
		Expect(w.Time()).To(BeNumerically("~", 10, 1e-6))
	})

	It("clamps positive velocity after every frame", func() {
		bodies := []dynamo.Body{
			{Position: dynamo.V(500, 400), Velocity: dynamo.V(900, 300), Radius: 10, Mass: 100},
		}
		opts := physics.DefaultOptions()
		w := physics.NewWorld(bodies, bounds, opts)

		w.Step(0.001)

		Expect(w.Bodies[0].Velocity.X).To(BeNumerically("<=", opts.SpeedLimit))
		Expect(w.Bodies[0].Velocity.Y).To(BeNumerically("<=", opts.SpeedLimit))
	})

	It("resolves the head-on scenario within a frame", func() {
		bodies := []dynamo.Body{
			{Position: dynamo.V(100, 100), Velocity: dynamo.V(10, 0), Radius: 10, Mass: 100},
			{Position: dynamo.V(115, 100), Velocity: dynamo.V(-10, 0), Radius: 10, Mass: 100},
		}
		w := physics.NewWorld(bodies, bounds, physics.DefaultOptions())

		stats := w.Step(0)

		Expect(stats.Contacts).To(Equal(1))
		Expect(stats.WallHits).To(Equal(0))
		Expect(stats.PeakApproach).To(BeNumerically("~", 20, 1e-9))
		Expect(w.Bodies[0].Velocity.X).To(BeNumerically("~", -10, 1e-9))
		Expect(w.Bodies[1].Velocity.X).To(BeNumerically("~", 10, 1e-9))
		Expect(w.Bodies[0].Position.Dist(w.Bodies[1].Position)).To(BeNumerically("~", 20, 1e-9))
	})

	It("counts wall hits and degenerate contacts", func() {
		bodies := []dynamo.Body{
			{Position: dynamo.V(2, 2), Velocity: dynamo.V(-1, -1), Radius: 5, Mass: 50},
			{Position: dynamo.V(300, 300), Velocity: dynamo.V(0, 0), Radius: 5, Mass: 50},
			{Position: dynamo.V(300, 300), Velocity: dynamo.V(0, 0), Radius: 5, Mass: 50},
		}
		w := physics.NewWorld(bodies, bounds, physics.DefaultOptions())

		stats := w.Step(0.01)

		Expect(stats.WallHits).To(Equal(2))
		Expect(stats.Degenerate).To(Equal(1))
		Expect(stats.Contacts).To(Equal(0))
		Expect(w.FirstInvalid()).To(Equal(-1))
	})

	It("resolves pairs in ascending order with immediate updates", func() {
		// body 1 is hit by body 0 first and carries the new velocity into
		// its contact with body 2 in the same frame
		bodies := []dynamo.Body{
			{Position: dynamo.V(100, 100), Velocity: dynamo.V(10, 0), Radius: 10, Mass: 100},
			{Position: dynamo.V(119, 100), Velocity: dynamo.V(0, 0), Radius: 10, Mass: 100},
			{Position: dynamo.V(138, 100), Velocity: dynamo.V(0, 0), Radius: 10, Mass: 100},
		}
		w := physics.NewWorld(bodies, bounds, physics.DefaultOptions())

		stats := w.Step(0)

		Expect(stats.Contacts).To(Equal(2))
		Expect(w.Bodies[0].Velocity.X).To(BeNumerically("~", 0, 1e-9))
		Expect(w.Bodies[1].Velocity.X).To(BeNumerically("~", 0, 1e-9))
		Expect(w.Bodies[2].Velocity.X).To(BeNumerically("~", 10, 1e-9))
	})

	It("clones into an independent world", func() {
		bodies := []dynamo.Body{
			{Position: dynamo.V(100, 100), Velocity: dynamo.V(30, 0), Radius: 10, Mass: 100},
		}
		w := physics.NewWorld(bodies, bounds, physics.DefaultOptions())
		w.Step(0.5)

		c := w.Clone()
		Expect(c.Time()).To(Equal(w.Time()))
		Expect(c.Bodies).To(Equal(w.Bodies))

		c.Step(1)
		Expect(w.Bodies[0].Position.X).To(BeNumerically("~", 115, 1e-9))
		Expect(c.Bodies[0].Position.X).To(BeNumerically("~", 145, 1e-9))
		Expect(w.Time()).To(BeNumerically("~", 0.5, 1e-12))
	})
})

func BenchmarkWorldStep(b *testing.B) {
	bounds := dynamo.Bounds{Width: 1024, Height: 768}
	bodies, err := physics.Place(rng.New(1), physics.DefaultPlacement(bounds))
	if err != nil {
		b.Fatalf("place failed: %v", err)
	}
	w := physics.NewWorld(bodies, bounds, physics.DefaultOptions())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Step(1.0 / 60)
	}
}
