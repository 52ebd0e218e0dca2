package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/physics"
)

// Driver runs the real-time frame loop against a Window. The frame rate is
// not capped; dt is the measured wall-clock time between ticks.
type Driver struct {
	world     *physics.World
	win       Window
	fps       *metrics.RollingAverage
	observers []dynamo.Observer
	last      float64
	started   bool
	frames    int
}

func NewDriver(world *physics.World, win Window, fps *metrics.RollingAverage) *Driver {
	return &Driver{
		world:     world,
		win:       win,
		fps:       fps,
		observers: make([]dynamo.Observer, 0),
	}
}

func (d *Driver) AddObserver(o dynamo.Observer) { d.observers = append(d.observers, o) }

func (d *Driver) Frames() int { return d.frames }

// Tick runs a single frame. It returns false once the window asked to
// close, without touching the world.
func (d *Driver) Tick() bool {
	if d.win.ShouldClose() {
		return false
	}

	now := d.win.Now()
	if !d.started {
		d.last, d.started = now, true
	}
	dt := now - d.last
	d.last = now

	if dt > 0 {
		d.fps.Push(1 / dt)
	}

	stats := d.world.Step(dt)
	for _, obs := range d.observers {
		obs.OnFrame(d.world.Bodies, stats, d.world.Time())
	}

	d.win.Clear()
	for _, b := range d.world.Bodies {
		d.win.FillCircle(b.Position.X, b.Position.Y, b.Radius)
	}
	d.win.Present()
	d.win.SetTitle(fmt.Sprintf("FPS: %f", d.fps.Value()))

	d.frames++
	return true
}

// Run ticks until the window closes or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !d.Tick() {
			return nil
		}
	}
}
