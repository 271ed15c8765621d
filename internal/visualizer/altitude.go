package visualizer

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

var altitudeColors = []asciigraph.AnsiColor{
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
	asciigraph.Cyan,
	asciigraph.Magenta,
	asciigraph.Gray,
}

// Altitude charts the height of every projectile against frame index.
type Altitude struct {
	ceiling float64
	caption string
	output  string
	profile colorProfile
}

// NewAltitude creates a chart whose y axis runs from ground to ceiling.
func NewAltitude(ceiling float64, caption string) *Altitude {
	return &Altitude{ceiling: ceiling, caption: caption, profile: currentColorProfile()}
}

func (a *Altitude) Name() string { return "altitude" }

func (a *Altitude) Update(f Frame, width, height int) {
	if len(f.Heights) == 0 || len(f.Heights[0]) < 2 || width < 10 || height < 2 {
		a.output = ""
		return
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.Precision(1),
	}
	if a.ceiling > 0 {
		opts = append(opts, asciigraph.UpperBound(a.ceiling))
	}
	if a.caption != "" {
		opts = append(opts, asciigraph.Caption(a.caption))
	}
	if a.profile != colorNone {
		colors := make([]asciigraph.AnsiColor, len(f.Heights))
		for i := range colors {
			colors[i] = altitudeColors[i%len(altitudeColors)]
		}
		opts = append(opts, asciigraph.SeriesColors(colors...))
	}
	a.output = strings.TrimRight(asciigraph.PlotMany(f.Heights, opts...), "\n")
}

func (a *Altitude) View() string {
	return a.output
}
