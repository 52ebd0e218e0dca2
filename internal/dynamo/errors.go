package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrPlacementInfeasible indicates the bodies could not be laid out
	// without overlap inside the bounds.
	ErrPlacementInfeasible = errors.New("dynamo: placement infeasible (no free position found)")

	// ErrInvalidState indicates a body with NaN or Inf position or velocity.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")
)

// PlacementError reports which body could not be placed.
type PlacementError struct {
	Index    int
	Placed   int
	Attempts int
	Wrapped  error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v: body %d after %d attempts (%d placed)", e.Wrapped, e.Index, e.Attempts, e.Placed)
}

func (e *PlacementError) Unwrap() error {
	return e.Wrapped
}

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Frame   int
	Time    float64
	Body    int
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f) body %d: %v", e.Frame, e.Time, e.Body, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
