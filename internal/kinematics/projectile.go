package kinematics

import "math"

// Vec2 is a 2-D vector in simulation units.
type Vec2 struct {
	X float64
	Y float64
}

// Launch holds the initial conditions of one projectile.
type Launch struct {
	Origin   Vec2
	Speed    float64
	AngleDeg float64
}

// Velocity returns the initial velocity components.
func (l Launch) Velocity() Vec2 {
	rad := l.AngleDeg * math.Pi / 180
	return Vec2{
		X: l.Speed * math.Cos(rad),
		Y: l.Speed * math.Sin(rad),
	}
}

// Trajectory is the evaluated motion of one projectile, aligned index for
// index with the grid it was computed on.
type Trajectory struct {
	grid   TimeGrid
	x, y   []float64
	vx, vy []float64
}

// Evaluate computes position and velocity at every sample of grid under the
// constant acceleration accel. Every sample is derived directly from its time,
// so errors do not accumulate along the sequence. The launch is not modified
// and calling Evaluate again yields the same trajectory.
func Evaluate(l Launch, accel Vec2, grid TimeGrid) Trajectory {
	v0 := l.Velocity()
	n := grid.Len()
	tr := Trajectory{
		grid: grid,
		x:    make([]float64, n),
		y:    make([]float64, n),
		vx:   make([]float64, n),
		vy:   make([]float64, n),
	}
	for i := range n {
		t := grid.At(i)
		tr.x[i] = l.Origin.X + v0.X*t + 0.5*accel.X*t*t
		tr.y[i] = l.Origin.Y + v0.Y*t + 0.5*accel.Y*t*t
		tr.vx[i] = v0.X + accel.X*t
		tr.vy[i] = v0.Y + accel.Y*t
	}
	return tr
}

// Len returns the number of samples.
func (tr Trajectory) Len() int { return len(tr.x) }

// Grid returns the time grid the trajectory was evaluated on.
func (tr Trajectory) Grid() TimeGrid { return tr.grid }

// Time returns the simulated time of sample i.
func (tr Trajectory) Time(i int) float64 { return tr.grid.At(i) }

// Position returns the position at sample i.
func (tr Trajectory) Position(i int) Vec2 { return Vec2{X: tr.x[i], Y: tr.y[i]} }

// Velocity returns the velocity at sample i.
func (tr Trajectory) Velocity(i int) Vec2 { return Vec2{X: tr.vx[i], Y: tr.vy[i]} }

// X returns a copy of the horizontal positions.
func (tr Trajectory) X() []float64 { return clone(tr.x) }

// Y returns a copy of the vertical positions.
func (tr Trajectory) Y() []float64 { return clone(tr.y) }

// VX returns a copy of the horizontal velocities.
func (tr Trajectory) VX() []float64 { return clone(tr.vx) }

// VY returns a copy of the vertical velocities.
func (tr Trajectory) VY() []float64 { return clone(tr.vy) }

// Projectile pairs a launch with the trajectory evaluated from it.
type Projectile struct {
	Launch Launch
	Accel  Vec2
	Path   Trajectory
}

// Simulate evaluates every launch on the shared grid, in order.
func Simulate(launches []Launch, accel Vec2, grid TimeGrid) []Projectile {
	out := make([]Projectile, len(launches))
	for i, l := range launches {
		out[i] = Projectile{
			Launch: l,
			Accel:  accel,
			Path:   Evaluate(l, accel, grid),
		}
	}
	return out
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
