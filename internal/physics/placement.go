package physics

import (
	"fmt"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/rng"
)

const (
	DefaultMinBalls        = 80
	DefaultMaxBalls        = 100
	DefaultMinRadius       = 5
	DefaultMaxRadius       = 30
	DefaultMaxInitialSpeed = 100
	DefaultMassFactor      = 10.0
	DefaultMaxAttempts     = 10000
)

// Placement describes how Place lays out bodies.
type Placement struct {
	Bounds          dynamo.Bounds
	MinBalls        int
	MaxBalls        int
	MinRadius       int
	MaxRadius       int
	MaxInitialSpeed int
	MassFactor      float64
	// MaxAttempts caps position samples per body. Zero or less samples
	// forever.
	MaxAttempts int
}

func DefaultPlacement(bounds dynamo.Bounds) Placement {
	return Placement{
		Bounds:          bounds,
		MinBalls:        DefaultMinBalls,
		MaxBalls:        DefaultMaxBalls,
		MinRadius:       DefaultMinRadius,
		MaxRadius:       DefaultMaxRadius,
		MaxInitialSpeed: DefaultMaxInitialSpeed,
		MassFactor:      DefaultMassFactor,
		MaxAttempts:     DefaultMaxAttempts,
	}
}

func (p Placement) Validate() error {
	if p.MinBalls < 0 || p.MaxBalls < p.MinBalls {
		return fmt.Errorf("ball count range [%d, %d]: %w", p.MinBalls, p.MaxBalls, dynamo.ErrParameterBounds)
	}
	if p.MinRadius <= 0 || p.MaxRadius < p.MinRadius {
		return fmt.Errorf("radius range [%d, %d]: %w", p.MinRadius, p.MaxRadius, dynamo.ErrParameterBounds)
	}
	if p.MaxInitialSpeed < 0 {
		return fmt.Errorf("initial speed %d: %w", p.MaxInitialSpeed, dynamo.ErrParameterBounds)
	}
	if p.MassFactor <= 0 {
		return fmt.Errorf("mass factor %g: %w", p.MassFactor, dynamo.ErrParameterBounds)
	}
	w, h := int(p.Bounds.Width), int(p.Bounds.Height)
	if w-p.MaxRadius < p.MaxRadius || h-p.MaxRadius < p.MaxRadius {
		return fmt.Errorf("bounds %dx%d too small for radius %d: %w", w, h, p.MaxRadius, dynamo.ErrParameterBounds)
	}
	return nil
}

// Place draws a body count from [MinBalls, MaxBalls] and lays the bodies
// out so that no two overlap. Positions are sampled with centres at least
// MaxRadius from every wall.
func Place(src *rng.Source, p Placement) ([]dynamo.Body, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := src.IntRange(p.MinBalls, p.MaxBalls)
	bodies := make([]dynamo.Body, 0, n)
	w, h := int(p.Bounds.Width), int(p.Bounds.Height)

	for i := 0; i < n; i++ {
		var b dynamo.Body
		b.Radius = src.FloatRange(p.MinRadius, p.MaxRadius)
		b.Mass = b.Radius * p.MassFactor
		b.Velocity.X = src.FloatRange(-p.MaxInitialSpeed, p.MaxInitialSpeed)
		b.Velocity.Y = src.FloatRange(-p.MaxInitialSpeed, p.MaxInitialSpeed)

		attempts := 0
		for {
			if p.MaxAttempts > 0 && attempts >= p.MaxAttempts {
				return bodies, &dynamo.PlacementError{
					Index:    i,
					Placed:   len(bodies),
					Attempts: attempts,
					Wrapped:  dynamo.ErrPlacementInfeasible,
				}
			}
			attempts++

			b.Position.X = src.FloatRange(p.MaxRadius, w-p.MaxRadius)
			b.Position.Y = src.FloatRange(p.MaxRadius, h-p.MaxRadius)
			if !overlapsAny(bodies, b) {
				break
			}
		}

		bodies = append(bodies, b)
	}

	return bodies, nil
}

func overlapsAny(bodies []dynamo.Body, b dynamo.Body) bool {
	for _, o := range bodies {
		if o.Overlaps(b) {
			return true
		}
	}
	return false
}
