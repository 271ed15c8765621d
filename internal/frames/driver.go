package frames

import "errors"

// ErrNoDisplay is returned by display backends that cannot open their output.
var ErrNoDisplay = errors.New("display unavailable")

// Driver couples an Animator to a Playback so that display backends only
// have to call Tick on their own timer.
type Driver struct {
	anim *Animator
	pb   *Playback
	done bool
}

// NewDriver returns a driver in the idle state.
func NewDriver(anim *Animator, pb *Playback) *Driver {
	return &Driver{anim: anim, pb: pb}
}

// Start clears the display state and begins playback from frame 0.
func (d *Driver) Start() {
	d.anim.Reset()
	d.pb.Start()
	d.done = false
}

// Tick draws the next frame. It returns false once a one-shot playback has
// shown its last frame; the display keeps the final picture. When a looping
// playback wraps to frame 0 the trace is cleared, so each loop redraws the
// trajectories from scratch instead of keeping the previous loop's markers.
func (d *Driver) Tick() bool {
	if d.done {
		return false
	}
	t := d.pb.Advance()
	if t.Done {
		d.done = true
		return false
	}
	if t.Restarted {
		d.anim.Reset()
	}
	d.anim.Step(t.Frame)
	return true
}

// Done reports whether a one-shot playback has finished.
func (d *Driver) Done() bool { return d.done }

// Animator returns the animator being driven.
func (d *Driver) Animator() *Animator { return d.anim }

// Playback returns the playback clock.
func (d *Driver) Playback() *Playback { return d.pb }

// Progress returns the fraction of the grid shown so far, in [0, 1].
func (d *Driver) Progress() float64 {
	n := d.anim.Frames()
	f := d.anim.Frame()
	if n <= 1 {
		if f >= 0 {
			return 1
		}
		return 0
	}
	if f < 0 {
		return 0
	}
	return float64(f) / float64(n-1)
}
