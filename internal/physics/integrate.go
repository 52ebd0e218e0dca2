package physics

import "github.com/san-kum/collide/internal/dynamo"

const DefaultSpeedLimit = 150.0

// Advance caps each velocity component at limit and moves b by
// velocity*dt. Only the positive direction is capped.
func Advance(b *dynamo.Body, dt, limit float64) {
	if b.Velocity.X > limit {
		b.Velocity.X = limit
	}
	if b.Velocity.Y > limit {
		b.Velocity.Y = limit
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}
