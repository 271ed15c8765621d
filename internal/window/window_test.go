package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/olivier-w/simumotion/internal/frames"
	"github.com/olivier-w/simumotion/internal/kinematics"
	"github.com/olivier-w/simumotion/internal/visualizer"
)

func newTestGame(t *testing.T, samples int, repeat frames.RepeatMode, delay time.Duration) *Game {
	t.Helper()
	g, err := kinematics.NewTimeGrid(10, samples)
	if err != nil {
		t.Fatalf("NewTimeGrid() error = %v", err)
	}
	ps := kinematics.Simulate([]kinematics.Launch{{Speed: 5, AngleDeg: 45}}, kinematics.Vec2{Y: -1}, g)
	anim, err := frames.NewAnimator(ps, frames.TraceCumulative, "")
	if err != nil {
		t.Fatalf("NewAnimator() error = %v", err)
	}
	d := frames.NewDriver(anim, frames.NewPlayback(anim.Frames(), repeat, delay))
	return New(d, Options{Title: "Animation", View: visualizer.Viewport{XMax: 30, YMax: 15}}, zerolog.Nop())
}

func TestAdvanceWaitsForDelay(t *testing.T) {
	g := newTestGame(t, 10, frames.RepeatOnce, 100*time.Millisecond)

	if n := g.advance(16 * time.Millisecond); n != 1 {
		t.Fatalf("expected first frame on start, got %d", n)
	}
	if got := g.driver.Animator().Frame(); got != 0 {
		t.Fatalf("expected frame 0, got %d", got)
	}
	if n := g.advance(50 * time.Millisecond); n != 0 {
		t.Fatalf("expected no frame before the delay, got %d", n)
	}
	if n := g.advance(50 * time.Millisecond); n != 1 {
		t.Fatalf("expected one frame after the delay, got %d", n)
	}
	if n := g.advance(250 * time.Millisecond); n != 2 {
		t.Fatalf("expected two catch-up frames, got %d", n)
	}
	if got := g.driver.Animator().Frame(); got != 3 {
		t.Fatalf("expected frame 3, got %d", got)
	}
}

func TestAdvanceStopsAfterLastFrame(t *testing.T) {
	g := newTestGame(t, 3, frames.RepeatOnce, 10*time.Millisecond)
	g.advance(0)
	g.advance(time.Second)
	if !g.finished {
		t.Fatal("expected finished playback")
	}
	if got := g.driver.Animator().Frame(); got != 2 {
		t.Fatalf("expected last frame kept, got %d", got)
	}
	if n := g.advance(time.Second); n != 0 {
		t.Fatalf("expected no frames after finishing, got %d", n)
	}
}

func TestAdvanceLoops(t *testing.T) {
	g := newTestGame(t, 3, frames.RepeatLoop, 10*time.Millisecond)
	g.advance(0)
	if n := g.advance(50 * time.Millisecond); n != 5 {
		t.Fatalf("expected 5 frames, got %d", n)
	}
	if g.finished {
		t.Fatal("expected looping playback to keep going")
	}
	// frames 0,1,2,0,1,2 drawn in total
	if got := g.driver.Animator().Frame(); got != 2 {
		t.Fatalf("expected frame 2, got %d", got)
	}
}

func TestToScreenMapsCorners(t *testing.T) {
	g := newTestGame(t, 2, frames.RepeatOnce, time.Millisecond)
	x0, y0, x1, y1 := plotRect()

	sx, sy, ok := g.toScreen(0, 0)
	if !ok || sx != x0 || sy != y1 {
		t.Fatalf("expected origin at (%v,%v), got (%v,%v,%v)", x0, y1, sx, sy, ok)
	}
	sx, sy, ok = g.toScreen(30, 15)
	if !ok || sx != x1 || sy != y0 {
		t.Fatalf("expected far corner at (%v,%v), got (%v,%v,%v)", x1, y0, sx, sy, ok)
	}
	if _, _, ok := g.toScreen(31, 1); ok {
		t.Fatal("expected point outside the viewport to be clipped")
	}
}

func TestCheckDisplay(t *testing.T) {
	empty := func(string) string { return "" }
	if err := checkDisplay("linux", empty); !errors.Is(err, frames.ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
	wayland := func(k string) string {
		if k == "WAYLAND_DISPLAY" {
			return "wayland-0"
		}
		return ""
	}
	if err := checkDisplay("linux", wayland); err != nil {
		t.Fatalf("expected wayland session to pass, got %v", err)
	}
	if err := checkDisplay("darwin", empty); err != nil {
		t.Fatalf("expected darwin to pass, got %v", err)
	}
}

func TestDrawRendersFrame(t *testing.T) {
	g := newTestGame(t, 5, frames.RepeatOnce, time.Millisecond)
	g.advance(0)
	screen := ebiten.NewImage(g.Layout(0, 0))
	defer screen.Deallocate()
	g.Draw(screen)
}
