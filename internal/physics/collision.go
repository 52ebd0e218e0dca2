package physics

import "github.com/san-kum/collide/internal/dynamo"

// DefaultContactEpsilon is the centre distance below which a contact has
// no usable normal and is skipped.
const DefaultContactEpsilon = 1e-9

// ResolveWall reflects b off any wall its edge has crossed and clamps it
// back inside. It returns the number of walls hit (0 to 2).
func ResolveWall(b *dynamo.Body, bounds dynamo.Bounds) int {
	hits := 0

	if b.Position.X-b.Radius < 0 {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = b.Radius
		hits++
	}
	if b.Position.X+b.Radius > bounds.Width {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = bounds.Width - b.Radius
		hits++
	}

	if b.Position.Y-b.Radius < 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = b.Radius
		hits++
	}
	if b.Position.Y+b.Radius > bounds.Height {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = bounds.Height - b.Radius
		hits++
	}

	return hits
}

// Contact is the outcome of ResolveContact.
type Contact struct {
	Overlap    bool
	Degenerate bool
	// Approach is dot(n, v1-v2) before the impulse; positive when closing.
	Approach float64
}

// ResolveContact separates b1 and b2 if they overlap and applies a
// perfectly elastic impulse along the line of centres. Pairs whose centres
// are closer than eps are reported as degenerate and left untouched.
func ResolveContact(b1, b2 *dynamo.Body, eps float64) Contact {
	d := b1.Position.Dist(b2.Position)
	gap := d - b1.Radius - b2.Radius
	if gap >= 0 {
		return Contact{}
	}
	if d < eps {
		return Contact{Overlap: true, Degenerate: true}
	}

	// half the overlap each, along the pre-correction line of centres
	overlap := b1.Position.Sub(b2.Position).Scale(gap * 0.5 / d)
	b1.Position = b1.Position.Sub(overlap)
	b2.Position = b2.Position.Add(overlap)

	axis := b2.Position.Sub(b1.Position)
	n := axis.Scale(1 / axis.Len())
	k := b1.Velocity.Sub(b2.Velocity)
	approach := n.Dot(k)
	p := 2 * approach / (b1.Mass + b2.Mass)

	b1.Velocity = b1.Velocity.Sub(n.Scale(p * b2.Mass))
	b2.Velocity = b2.Velocity.Add(n.Scale(p * b1.Mass))

	return Contact{Overlap: true, Approach: approach}
}
