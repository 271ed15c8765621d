package window

import (
	"fmt"
	"image/color"
	"os"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/olivier-w/simumotion/internal/frames"
	"github.com/olivier-w/simumotion/internal/util"
	"github.com/olivier-w/simumotion/internal/visualizer"
)

const (
	screenW = 640
	screenH = 400

	marginLeft   = 48
	marginRight  = 16
	marginTop    = 40
	marginBottom = 48

	xDivisions = 6
	yDivisions = 5

	markerRadius = 3
	// debug font cell
	glyphW = 6
	glyphH = 16
)

var (
	backgroundColor = color.RGBA{0x1c, 0x1c, 0x22, 0xff}
	gridColor       = color.RGBA{0x3a, 0x3a, 0x44, 0xff}
	axisColor       = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
)

// Options holds the fixed plot cosmetics.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	View   visualizer.Viewport
}

// Game plays a Driver in an Ebiten window.
type Game struct {
	driver *frames.Driver
	opts   Options
	log    zerolog.Logger

	elapsed  time.Duration
	started  bool
	finished bool
}

// New returns a Game around an idle driver. Playback starts on the first
// Update.
func New(d *frames.Driver, opts Options, log zerolog.Logger) *Game {
	return &Game{driver: d, opts: opts, log: log}
}

// Update handles quit keys and advances the animation clock by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Debug().Msg("window closed by user")
		return ebiten.Termination
	}
	g.advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// advance accumulates dt and draws one frame each time the playback delay
// has elapsed. It returns the number of frames drawn.
func (g *Game) advance(dt time.Duration) int {
	if !g.started {
		g.driver.Start()
		g.started = true
		g.elapsed = 0
		g.log.Debug().
			Int("frames", g.driver.Animator().Frames()).
			Dur("delay", g.driver.Playback().Delay()).
			Msg("playback started")
		if g.driver.Tick() {
			return 1
		}
		return 0
	}
	if g.finished {
		return 0
	}

	delay := g.driver.Playback().Delay()
	if delay <= 0 {
		delay = time.Second / 60
	}
	g.elapsed += dt
	drawn := 0
	for g.elapsed >= delay {
		g.elapsed -= delay
		if !g.driver.Tick() {
			g.finished = true
			g.log.Debug().Msg("playback finished")
			break
		}
		drawn++
	}
	return drawn
}

// plotRect returns the plot area in screen pixels.
func plotRect() (x0, y0, x1, y1 float32) {
	return marginLeft, marginTop, screenW - marginRight, screenH - marginBottom
}

// toScreen maps simulation coordinates onto the plot area. ok is false for
// points outside the viewport.
func (g *Game) toScreen(x, y float64) (sx, sy float32, ok bool) {
	v := g.opts.View
	if v.XMax <= v.XMin || v.YMax <= v.YMin || !v.Contains(x, y) {
		return 0, 0, false
	}
	x0, y0, x1, y1 := plotRect()
	fx := (x - v.XMin) / (v.XMax - v.XMin)
	fy := (y - v.YMin) / (v.YMax - v.YMin)
	sx = x0 + float32(fx)*(x1-x0)
	sy = y1 - float32(fy)*(y1-y0)
	return sx, sy, true
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawAxes(screen)

	for _, p := range g.driver.Animator().Points() {
		sx, sy, ok := g.toScreen(p.X, p.Y)
		if !ok {
			continue
		}
		vector.FillCircle(screen, sx, sy, markerRadius, visualizer.SeriesRGBA(p.Series), true)
	}

	x0, _, x1, y1 := plotRect()
	ebitenutil.DebugPrintAt(screen, g.opts.Title, int(x0+x1)/2-len(g.opts.Title)*glyphW/2, 8)
	ebitenutil.DebugPrintAt(screen, g.opts.YLabel, 4, 8)
	ebitenutil.DebugPrintAt(screen, g.opts.XLabel, int(x1)-len(g.opts.XLabel)*glyphW, int(y1)+glyphH+4)
	ebitenutil.DebugPrintAt(screen, g.driver.Animator().Label(), int(x0)+8, marginTop+4)
}

func (g *Game) drawAxes(screen *ebiten.Image) {
	v := g.opts.View
	x0, y0, x1, y1 := plotRect()

	for i := 0; i <= xDivisions; i++ {
		f := float32(i) / xDivisions
		x := x0 + f*(x1-x0)
		vector.StrokeLine(screen, x, y0, x, y1, 1, gridColor, false)
		label := util.FormatTick(v.XMin + float64(i)/xDivisions*(v.XMax-v.XMin))
		ebitenutil.DebugPrintAt(screen, label, int(x)-len(label)*glyphW/2, int(y1)+2)
	}
	for i := 0; i <= yDivisions; i++ {
		f := float32(i) / yDivisions
		y := y1 - f*(y1-y0)
		vector.StrokeLine(screen, x0, y, x1, y, 1, gridColor, false)
		label := util.FormatTick(v.YMin + float64(i)/yDivisions*(v.YMax-v.YMin))
		ebitenutil.DebugPrintAt(screen, label, int(x0)-len(label)*glyphW-4, int(y)-glyphH/2)
	}

	vector.StrokeLine(screen, x0, y1, x1, y1, 1, axisColor, false)
	vector.StrokeLine(screen, x0, y0, x0, y1, 1, axisColor, false)
}

func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }

// CheckDisplay fails fast when no window system is reachable.
func CheckDisplay() error {
	return checkDisplay(runtime.GOOS, os.Getenv)
}

func checkDisplay(goos string, getenv func(string) string) error {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("%w: neither DISPLAY nor WAYLAND_DISPLAY is set", frames.ErrNoDisplay)
		}
	}
	return nil
}

// Run opens the window and plays g until it is closed.
func Run(g *Game) error {
	if err := CheckDisplay(); err != nil {
		return err
	}
	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetWindowTitle(g.opts.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window display: %w", err)
	}
	return nil
}
