package kinematics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FlightTime returns 2*v0*sin(alpha0)/g, the time a drag-free projectile
// launched from ground level needs to land again. It returns 0 when g is not
// positive.
func FlightTime(l Launch, g float64) float64 {
	if g <= 0 {
		return 0
	}
	return 2 * l.Velocity().Y / g
}

// ApexTime returns the time at which the vertical velocity reaches zero. ok is
// false when the vertical acceleration does not point downward.
func ApexTime(l Launch, accel Vec2) (t float64, ok bool) {
	if accel.Y >= 0 {
		return 0, false
	}
	return -l.Velocity().Y / accel.Y, true
}

// Apex returns the index and position of the highest sampled point.
func Apex(tr Trajectory) (int, Vec2) {
	if tr.Len() == 0 {
		return -1, Vec2{}
	}
	i := floats.MaxIdx(tr.y)
	return i, tr.Position(i)
}

// GroundTime returns the first positive time at which y(t) crosses zero from
// above, solving y0 + vy0*t + 0.5*ay*t^2 = 0. ok is false when the projectile
// never comes down to the ground.
func GroundTime(l Launch, accel Vec2) (t float64, ok bool) {
	y0 := l.Origin.Y
	vy0 := l.Velocity().Y
	a := 0.5 * accel.Y
	if a == 0 {
		if vy0 >= 0 || y0 < 0 {
			return 0, false
		}
		return -y0 / vy0, true
	}
	disc := vy0*vy0 - 4*a*y0
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	r1 := (-vy0 - sq) / (2 * a)
	r2 := (-vy0 + sq) / (2 * a)
	lo, hi := math.Min(r1, r2), math.Max(r1, r2)
	// Downward crossings happen at the larger root when the parabola opens down.
	if a < 0 {
		if hi > 0 {
			return hi, true
		}
		return 0, false
	}
	if lo > 0 {
		return lo, true
	}
	return 0, false
}

// GroundIndex returns the first sample index whose height is below zero, or -1
// if the projectile stays at or above ground for the whole grid.
func GroundIndex(tr Trajectory) int {
	for i, y := range tr.y {
		if y < 0 {
			return i
		}
	}
	return -1
}
