package physics

import (
	"math"

	"github.com/san-kum/collide/internal/dynamo"
)

type Options struct {
	SpeedLimit     float64
	ContactEpsilon float64
}

func DefaultOptions() Options {
	return Options{
		SpeedLimit:     DefaultSpeedLimit,
		ContactEpsilon: DefaultContactEpsilon,
	}
}

// World owns the body collection for the lifetime of a run.
type World struct {
	Bodies []dynamo.Body
	Bounds dynamo.Bounds
	opts   Options
	time   float64
}

func NewWorld(bodies []dynamo.Body, bounds dynamo.Bounds, opts Options) *World {
	return &World{
		Bodies: bodies,
		Bounds: bounds,
		opts:   opts,
	}
}

func (w *World) Time() float64 { return w.time }

func (w *World) Options() Options { return w.opts }

// Clone returns an independent copy of the world, including its clock.
func (w *World) Clone() *World {
	c := *w
	c.Bodies = dynamo.CloneBodies(w.Bodies)
	return &c
}

// Step runs one frame: for each body in index order, the wall check, then
// contacts with every later body, then integration.
func (w *World) Step(dt float64) dynamo.FrameStats {
	var stats dynamo.FrameStats
	bodies := w.Bodies

	for i := range bodies {
		stats.WallHits += ResolveWall(&bodies[i], w.Bounds)

		for j := i + 1; j < len(bodies); j++ {
			c := ResolveContact(&bodies[i], &bodies[j], w.opts.ContactEpsilon)
			if !c.Overlap {
				continue
			}
			if c.Degenerate {
				stats.Degenerate++
				continue
			}
			stats.Contacts++
			stats.PeakApproach = math.Max(stats.PeakApproach, c.Approach)
		}

		Advance(&bodies[i], dt, w.opts.SpeedLimit)
	}

	w.time += dt
	return stats
}

// FirstInvalid returns the index of the first body with a non-finite
// position or velocity, or -1.
func (w *World) FirstInvalid() int {
	for i, b := range w.Bodies {
		if !b.IsValid() {
			return i
		}
	}
	return -1
}
