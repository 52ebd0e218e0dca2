package gui

import (
	"context"
	"fmt"
	"io"

	"github.com/san-kum/collide/internal/audio"
	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/physics"
	"github.com/san-kum/collide/internal/rng"
	"github.com/san-kum/collide/internal/sim"
)

// Run places the bodies, opens the window and blocks in the frame loop
// until the window is closed or ctx is done.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	src := rng.New(cfg.Seed)
	bodies, err := physics.Place(src, cfg.Placement())
	if err != nil {
		return fmt.Errorf("place bodies (seed %d): %w", src.Seed(), err)
	}
	fmt.Fprintf(out, "placed %d bodies (seed %d)\n", len(bodies), src.Seed())

	world := physics.NewWorld(bodies, cfg.Bounds(), cfg.Options())

	win := openWindow(cfg)
	defer win.Close()

	driver := sim.NewDriver(world, win, metrics.NewRollingAverage(cfg.FPSWindow))

	if cfg.Audio {
		proc := audio.NewProcessor(cfg.Physics.SpeedLimit)
		if err := proc.Start(); err != nil {
			fmt.Fprintf(out, "audio disabled: %v\n", err)
		} else {
			defer proc.Stop()
			driver.AddObserver(proc)
		}
	}

	if err := driver.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	fmt.Fprintf(out, "closed after %d frames (t=%.2fs)\n", driver.Frames(), world.Time())
	return nil
}
