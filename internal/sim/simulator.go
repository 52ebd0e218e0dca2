package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/physics"
)

type Simulator struct {
	world     *physics.World
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(world *physics.World) *Simulator {
	return &Simulator{
		world:     world,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) World() *physics.World { return s.world }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Times:    make([]float64, 0, cfg.Frames+1),
		Energy:   make([]float64, 0, cfg.Frames+1),
		Contacts: make([]int, 0, cfg.Frames+1),
		WallHits: make([]int, 0, cfg.Frames+1),
		Metrics:  make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	w := s.world
	result.record(w, dynamo.FrameStats{})

	var runErr error
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		stats := w.Step(cfg.Dt)
		result.Frames++
		result.Totals.Merge(stats)

		if cfg.ValidateState {
			if idx := w.FirstInvalid(); idx >= 0 {
				runErr = &dynamo.SimulationError{Frame: i, Time: w.Time(), Body: idx, Wrapped: dynamo.ErrInvalidState}
				break
			}
		}

		for _, m := range s.metrics {
			m.Observe(w.Bodies, w.Time())
		}
		for _, obs := range s.observers {
			obs.OnFrame(w.Bodies, stats, w.Time())
		}

		result.record(w, stats)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = dynamo.CloneBodies(w.Bodies)

	return result, runErr
}

func (r *Result) record(w *physics.World, stats dynamo.FrameStats) {
	r.Times = append(r.Times, w.Time())
	r.Energy = append(r.Energy, dynamo.TotalKineticEnergy(w.Bodies))
	r.Contacts = append(r.Contacts, stats.Contacts)
	r.WallHits = append(r.WallHits, stats.WallHits)
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f: %w", cfg.Dt, dynamo.ErrParameterBounds)
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d: %w", cfg.Frames, dynamo.ErrParameterBounds)
	}
	return nil
}

// RunWithCallback steps the world until the callback returns false, the
// context is done, or cfg.Frames frames have run.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func([]dynamo.Body, dynamo.FrameStats, float64) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	w := s.world
	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		stats := w.Step(cfg.Dt)

		if cfg.ValidateState {
			if idx := w.FirstInvalid(); idx >= 0 {
				return &dynamo.SimulationError{Frame: i, Time: w.Time(), Body: idx, Wrapped: dynamo.ErrInvalidState}
			}
		}

		if !callback(w.Bodies, stats, w.Time()) {
			return nil
		}
	}

	return nil
}
