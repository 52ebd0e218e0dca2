package sim

import "github.com/san-kum/collide/internal/dynamo"

// Config drives a headless run with a fixed timestep.
type Config struct {
	Dt            float64
	Frames        int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            1.0 / 60,
		Frames:        600,
		ValidateState: true,
	}
}

// Result holds per-frame telemetry of a headless run. Index 0 is the
// initial layout.
type Result struct {
	Times    []float64
	Energy   []float64
	Contacts []int
	WallHits []int
	Metrics  map[string]float64
	Totals   dynamo.FrameStats
	Final    []dynamo.Body
	Frames   int
}

// Window is the windowing and rendering collaborator of the frame driver.
type Window interface {
	// ShouldClose reports, without blocking, whether a close was requested.
	ShouldClose() bool
	// Now returns seconds elapsed since a fixed reference point.
	Now() float64
	Clear()
	FillCircle(x, y, r float64)
	Present()
	SetTitle(title string)
}
