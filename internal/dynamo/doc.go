// Package dynamo provides the core data model for the collision simulation.
//
// The package defines the primitives every other package builds on:
//
//   - [Vec2]: 2D vector in world units
//   - [Body]: circular body with position, velocity, radius and mass
//   - [Bounds]: rectangular viewport the bodies are confined to
//   - [FrameStats]: what happened during one physics frame
//   - [Metric] and [Observer]: hooks fed once per frame
//
// # Example
//
//	src := rng.New(seed)
//	bodies, _ := physics.Place(src, physics.DefaultPlacement(bounds))
//	world := physics.NewWorld(bodies, bounds, physics.DefaultOptions())
//	stats := world.Step(dt)
//
// # Thread Safety
//
// Bodies are plain values mutated in place by a single frame loop. Nothing
// in this package is safe for concurrent mutation.
package dynamo
