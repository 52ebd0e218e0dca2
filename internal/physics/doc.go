// Package physics implements the per-frame update of the collision
// simulation and the initial placement of bodies.
//
//   - [Place]: random non-overlapping layout
//   - [ResolveWall]: reflect a body off the viewport edges
//   - [ResolveContact]: separate two overlapping bodies and apply an
//     elastic impulse
//   - [Advance]: clamp speed and integrate position
//   - [World]: runs the above in frame order
//
// # Frame Order
//
// For each body i in index order: wall check, then contact resolution
// against every body j > i, then integration. Pairs mutate bodies
// immediately, so a body in several simultaneous contacts is resolved
// against later partners with values already updated by earlier ones.
//
//	world := physics.NewWorld(bodies, bounds, physics.DefaultOptions())
//	for running {
//	    stats := world.Step(dt)
//	}
package physics
