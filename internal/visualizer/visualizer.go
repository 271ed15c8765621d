package visualizer

import "github.com/olivier-w/simumotion/internal/frames"

// Frame is the display state handed to visualizers on every animation tick.
type Frame struct {
	Points  []frames.Point
	Heights [][]float64
}

// Visualizer renders animation state as terminal text.
type Visualizer interface {
	Name() string
	Update(f Frame, width, height int)
	View() string
}

var (
	_ Visualizer = (*Scatter)(nil)
	_ Visualizer = (*Altitude)(nil)
)

// Viewport is the rectangle of simulation space mapped onto the plot.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether (x, y) lies inside the viewport, edges included.
func (v Viewport) Contains(x, y float64) bool {
	return x >= v.XMin && x <= v.XMax && y >= v.YMin && y <= v.YMax
}
