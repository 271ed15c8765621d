package frames

import "time"

// State is the playback state.
type State int

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "idle"
}

// Tick describes the outcome of one Advance call.
type Tick struct {
	Frame int
	// Restarted is set when a repeating playback wrapped back to frame 0.
	Restarted bool
	// Done is set when a non-repeating playback has nothing left to show.
	Done bool
}

// Playback drives a frame index from 0 to frames-1 on a fixed delay. It never
// stops on its own: a repeating playback wraps to 0 and a one-shot playback
// parks on the last frame until the display is closed.
type Playback struct {
	frames int
	repeat RepeatMode
	delay  time.Duration

	state  State
	cursor int
}

// NewPlayback returns an idle playback over frames frames.
func NewPlayback(frames int, repeat RepeatMode, delay time.Duration) *Playback {
	return &Playback{frames: frames, repeat: repeat, delay: delay, cursor: -1}
}

// Start begins playback from frame 0. Calling it again restarts.
func (p *Playback) Start() {
	p.state = Playing
	p.cursor = -1
}

// Advance moves to the next frame.
func (p *Playback) Advance() Tick {
	if p.state != Playing || p.frames == 0 {
		return Tick{Frame: -1, Done: true}
	}
	next := p.cursor + 1
	if next < p.frames {
		p.cursor = next
		return Tick{Frame: next}
	}
	if p.repeat == RepeatLoop {
		p.cursor = 0
		return Tick{Frame: 0, Restarted: true}
	}
	p.cursor = p.frames - 1
	return Tick{Frame: p.cursor, Done: true}
}

// State returns the current state.
func (p *Playback) State() State { return p.state }

// Repeat returns the repeat mode.
func (p *Playback) Repeat() RepeatMode { return p.repeat }

// Delay returns the wall-clock delay between frames.
func (p *Playback) Delay() time.Duration { return p.delay }
