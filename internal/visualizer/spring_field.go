package visualizer

import "github.com/charmbracelet/harmonica"

// Smoother eases a scalar toward a moving target with a damped spring.
type Smoother struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSmoother creates a smoother stepped fps times per second.
func NewSmoother(fps int, frequency, damping float64) *Smoother {
	if fps < 1 {
		fps = 1
	}
	return &Smoother{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Step advances the spring one tick toward target and returns the new value.
func (s *Smoother) Step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Snap jumps straight to v with no velocity.
func (s *Smoother) Snap(v float64) {
	s.pos = v
	s.vel = 0
}

// Value returns the current position.
func (s *Smoother) Value() float64 { return s.pos }
