package kinematics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidGrid is returned when a time grid cannot be built from the
// requested duration and sample count.
var ErrInvalidGrid = errors.New("invalid time grid")

// TimeGrid is an evenly spaced, inclusive sequence of simulated times starting
// at zero. It is shared by every projectile of a run and never changes.
type TimeGrid struct {
	t []float64
}

// NewTimeGrid returns samples evenly spaced times from 0 to duration, both
// endpoints included. A single sample grid holds only t=0.
func NewTimeGrid(duration float64, samples int) (TimeGrid, error) {
	if samples < 1 {
		return TimeGrid{}, fmt.Errorf("%w: need at least one sample, got %d", ErrInvalidGrid, samples)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return TimeGrid{}, fmt.Errorf("%w: duration must be finite and non-negative, got %v", ErrInvalidGrid, duration)
	}
	t := make([]float64, samples)
	if samples > 1 {
		floats.Span(t, 0, duration)
		t[samples-1] = duration
	}
	return TimeGrid{t: t}, nil
}

// Len returns the number of samples.
func (g TimeGrid) Len() int { return len(g.t) }

// At returns the time of sample i.
func (g TimeGrid) At(i int) float64 { return g.t[i] }

// Duration returns the last sample time.
func (g TimeGrid) Duration() float64 {
	if len(g.t) == 0 {
		return 0
	}
	return g.t[len(g.t)-1]
}

// Step returns the spacing between consecutive samples, or 0 for grids with
// fewer than two samples.
func (g TimeGrid) Step() float64 {
	if len(g.t) < 2 {
		return 0
	}
	return g.Duration() / float64(len(g.t)-1)
}

// Times returns a copy of the sample times.
func (g TimeGrid) Times() []float64 {
	out := make([]float64, len(g.t))
	copy(out, g.t)
	return out
}

// Equal reports whether both grids hold the same samples.
func (g TimeGrid) Equal(o TimeGrid) bool {
	return floats.Equal(g.t, o.t)
}
