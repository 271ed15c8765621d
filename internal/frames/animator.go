package frames

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olivier-w/simumotion/internal/kinematics"
)

var (
	// ErrNoProjectiles is returned when an animator is built without anything to draw.
	ErrNoProjectiles = errors.New("no projectiles to animate")
	// ErrMisalignedGrid is returned when projectiles were evaluated on different time grids.
	ErrMisalignedGrid = errors.New("projectiles do not share a time grid")
)

// DefaultTimeTemplate formats the elapsed time label.
const DefaultTimeTemplate = "time = %.1f a.u."

// TraceMode selects which points stay on screen between frames.
type TraceMode int

const (
	// TraceCumulative keeps every qualifying point of every frame played so far.
	TraceCumulative TraceMode = iota
	// TraceCurrent shows only the qualifying points of the current frame.
	TraceCurrent
)

// ParseTraceMode maps a config string to a TraceMode.
func ParseTraceMode(s string) (TraceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cumulative":
		return TraceCumulative, nil
	case "current":
		return TraceCurrent, nil
	}
	return TraceCumulative, fmt.Errorf("unknown trace mode %q (want cumulative or current)", s)
}

// String returns the config name of the mode.
func (m TraceMode) String() string {
	switch m {
	case TraceCurrent:
		return "current"
	default:
		return "cumulative"
	}
}

// Point is one drawable marker. Series is the index of the projectile it
// belongs to.
type Point struct {
	X      float64
	Y      float64
	Series int
}

// Animator accumulates marker positions frame by frame for a set of
// projectiles that share one time grid. It is only mutated from a single
// display loop.
type Animator struct {
	projectiles []kinematics.Projectile
	grid        kinematics.TimeGrid
	mode        TraceMode
	template    string

	points []Point
	label  string
	frame  int
}

// NewAnimator validates that every projectile is aligned to the same grid.
// An empty template falls back to DefaultTimeTemplate.
func NewAnimator(ps []kinematics.Projectile, mode TraceMode, template string) (*Animator, error) {
	if len(ps) == 0 {
		return nil, ErrNoProjectiles
	}
	grid := ps[0].Path.Grid()
	for i, p := range ps[1:] {
		if !p.Path.Grid().Equal(grid) {
			return nil, fmt.Errorf("%w: projectile %d", ErrMisalignedGrid, i+1)
		}
	}
	if template == "" {
		template = DefaultTimeTemplate
	}
	a := &Animator{
		projectiles: ps,
		grid:        grid,
		mode:        mode,
		template:    template,
	}
	a.Reset()
	return a, nil
}

// Reset returns the animator to its blank state: no markers, no time label.
func (a *Animator) Reset() {
	a.points = a.points[:0]
	a.label = ""
	a.frame = -1
}

// Step draws frame i. Every projectile at or above ground at sample i adds
// its position to the buffer. Projectiles below ground are skipped for this
// frame only.
func (a *Animator) Step(i int) []Point {
	if a.mode == TraceCurrent {
		a.points = a.points[:0]
	}
	for s, p := range a.projectiles {
		pos := p.Path.Position(i)
		if pos.Y >= 0 {
			a.points = append(a.points, Point{X: pos.X, Y: pos.Y, Series: s})
		}
	}
	a.label = fmt.Sprintf(a.template, a.grid.At(i))
	a.frame = i
	return a.points
}

// Points returns the markers currently on screen. The slice is owned by the
// animator and is only valid until the next Step or Reset.
func (a *Animator) Points() []Point { return a.points }

// Label returns the elapsed time label, empty before the first frame.
func (a *Animator) Label() string { return a.label }

// Frame returns the last drawn frame index, or -1 after Reset.
func (a *Animator) Frame() int { return a.frame }

// Frames returns the number of frames, one per grid sample.
func (a *Animator) Frames() int { return a.grid.Len() }

// Series returns the number of projectiles.
func (a *Animator) Series() int { return len(a.projectiles) }

// Mode returns the trace mode.
func (a *Animator) Mode() TraceMode { return a.mode }

// Heights returns, per projectile, the heights of frames 0..i clamped at
// ground level.
func (a *Animator) Heights(i int) [][]float64 {
	if i < 0 {
		return nil
	}
	out := make([][]float64, len(a.projectiles))
	for s, p := range a.projectiles {
		h := p.Path.Y()[:i+1]
		for j, y := range h {
			h[j] = max(y, 0)
		}
		out[s] = h
	}
	return out
}
