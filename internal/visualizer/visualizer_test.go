package visualizer

import (
	"math"
	"strings"
	"testing"

	"github.com/olivier-w/simumotion/internal/frames"
)

func plainScatter(view Viewport) *Scatter {
	s := NewScatter(view)
	s.profile = colorNone
	return s
}

func TestScatterPlacesCornerDots(t *testing.T) {
	s := plainScatter(Viewport{XMax: 10, YMax: 10})
	s.Update(Frame{Points: []frames.Point{
		{X: 0, Y: 10},
		{X: 10, Y: 0, Series: 1},
	}}, 5, 2)

	rows := strings.Split(s.View(), "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	top := []rune(rows[0])
	bottom := []rune(rows[1])
	if len(top) != 5 || len(bottom) != 5 {
		t.Fatalf("expected 5 columns, got %d and %d", len(top), len(bottom))
	}
	if top[0] != 0x2801 {
		t.Fatalf("expected top-left dot, got %U", top[0])
	}
	if bottom[4] != 0x2880 {
		t.Fatalf("expected bottom-right dot, got %U", bottom[4])
	}
	if top[4] != 0x2800 || bottom[0] != 0x2800 {
		t.Fatal("expected other corners blank")
	}
}

func TestScatterClipsOutsideViewport(t *testing.T) {
	s := plainScatter(Viewport{XMax: 30, YMax: 15})
	s.Update(Frame{Points: []frames.Point{{X: 31, Y: 1}, {X: 5, Y: -0.1}, {X: 5, Y: 16}}}, 10, 3)
	if s.View() != blankCanvas(10, 3) {
		t.Fatalf("expected blank canvas, got %q", s.View())
	}
}

func TestScatterColoursBySeries(t *testing.T) {
	s := NewScatter(Viewport{XMax: 1, YMax: 1})
	s.profile = colorTrueColor
	s.Update(Frame{Points: []frames.Point{{X: 0.5, Y: 0.5, Series: 1}}}, 4, 2)
	want := colorSequence(colorTrueColor, seriesColor(1))
	if !strings.Contains(s.View(), want) {
		t.Fatalf("expected series colour escape in %q", s.View())
	}
	if !strings.Contains(s.View(), "\x1b[0m") {
		t.Fatal("expected colour reset at row end")
	}
}

func TestScatterDegenerateViewport(t *testing.T) {
	s := plainScatter(Viewport{XMin: 1, XMax: 1, YMax: 1})
	s.Update(Frame{Points: []frames.Point{{X: 1, Y: 0.5}}}, 3, 1)
	if s.View() != blankCanvas(3, 1) {
		t.Fatalf("expected blank canvas, got %q", s.View())
	}
}

func TestAltitudeRendersCaption(t *testing.T) {
	a := NewAltitude(15, "height")
	a.profile = colorNone
	a.Update(Frame{Heights: [][]float64{{0, 2, 3, 2, 0}, {0, 1, 1.5, 1, 0}}}, 20, 4)
	if !strings.Contains(a.View(), "height") {
		t.Fatalf("expected caption in chart, got %q", a.View())
	}
	if strings.Contains(a.View(), "\x1b[") {
		t.Fatal("expected no colour escapes without a colour profile")
	}
}

func TestAltitudeNeedsTwoSamples(t *testing.T) {
	a := NewAltitude(15, "")
	a.Update(Frame{Heights: [][]float64{{1}}}, 20, 4)
	if a.View() != "" {
		t.Fatalf("expected empty chart, got %q", a.View())
	}
}

func TestSmootherConverges(t *testing.T) {
	s := NewSmoother(60, 6, 1)
	for range 240 {
		s.Step(1)
	}
	if math.Abs(s.Value()-1) > 1e-3 {
		t.Fatalf("expected smoother near 1, got %v", s.Value())
	}
	s.Snap(0)
	if s.Value() != 0 {
		t.Fatalf("expected snap to 0, got %v", s.Value())
	}
}

func TestSeriesColourWraps(t *testing.T) {
	if SeriesRGBA(0) != SeriesRGBA(len(palette)) {
		t.Fatal("expected palette to wrap")
	}
}

func TestVisualizersHandleEmptyFrame(t *testing.T) {
	view := Viewport{XMax: 30, YMax: 15}
	for _, v := range []Visualizer{NewScatter(view), NewAltitude(15, "")} {
		v.Update(Frame{}, 20, 4)
		if v.Name() == "" {
			t.Fatal("expected a visualizer name")
		}
	}
}
