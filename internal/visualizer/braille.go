package visualizer

import (
	"math"
	"strings"
)

// Scatter renders projectile markers on a Unicode Braille canvas. Each cell is
// a 2x4 dot grid, giving 2x horizontal and 4x vertical resolution.
type Scatter struct {
	view    Viewport
	output  string
	profile colorProfile
}

// NewScatter creates a scatter plot of the given viewport.
func NewScatter(view Viewport) *Scatter {
	return &Scatter{view: view, profile: currentColorProfile()}
}

func (s *Scatter) Name() string { return "scatter" }

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Update plots f.Points into a width x height cell canvas. Points outside the
// viewport are clipped. A cell shared by several projectiles takes the colour
// of the last one drawn.
func (s *Scatter) Update(f Frame, width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dotCols := width * 2
	dotRows := height * 4

	patterns := make([]uint, width*height)
	series := make([]int, width*height)
	for i := range series {
		series[i] = -1
	}

	spanX := s.view.XMax - s.view.XMin
	spanY := s.view.YMax - s.view.YMin
	if spanX <= 0 || spanY <= 0 {
		s.output = blankCanvas(width, height)
		return
	}

	for _, p := range f.Points {
		if !s.view.Contains(p.X, p.Y) {
			continue
		}
		dc := int(math.Round((p.X - s.view.XMin) / spanX * float64(dotCols-1)))
		dr := int(math.Round((s.view.YMax - p.Y) / spanY * float64(dotRows-1)))
		col, row := dc/2, dr/4
		idx := row*width + col
		patterns[idx] |= 1 << brailleBits[dc%2][dr%4]
		series[idx] = p.Series
	}

	var out strings.Builder
	color := newANSIState(s.profile)
	for row := range height {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range width {
			idx := row*width + col
			if patterns[idx] != 0 && series[idx] >= 0 {
				color.set(&out, seriesColor(series[idx]))
			}
			out.WriteRune(rune(0x2800 + patterns[idx]))
		}
		color.reset(&out)
	}
	s.output = out.String()
}

func (s *Scatter) View() string {
	return s.output
}

func blankCanvas(width, height int) string {
	row := strings.Repeat(string(rune(0x2800)), width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
