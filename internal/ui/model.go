package ui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/olivier-w/simumotion/internal/frames"
	"github.com/olivier-w/simumotion/internal/visualizer"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows used by everything except the plot and the altitude chart
	chromeRows   = 12
	chartRows    = 6
	minPlotRows  = 4
	minPlotCols  = 10
	chartMinRows = chromeRows + chartRows + 3 + 10
)

// Options holds the fixed plot cosmetics.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	View   visualizer.Viewport
}

// Model is the Bubbletea model that plays the trajectories in the terminal.
type Model struct {
	driver   *frames.Driver
	opts     Options
	log      zerolog.Logger
	scatter  *visualizer.Scatter
	altitude *visualizer.Altitude
	ease     *visualizer.Smoother
	progress progress.Model
	help     help.Model
	keys     keyMap

	width    int
	height   int
	finished bool
	quitting bool
}

// New creates a Model around an idle driver. Playback starts in Init.
func New(d *frames.Driver, opts Options, log zerolog.Logger) Model {
	fps := 1
	if delay := d.Playback().Delay(); delay > 0 {
		fps = max(1, int(time.Second/delay))
	}
	return Model{
		driver:   d,
		opts:     opts,
		log:      log,
		scatter:  visualizer.NewScatter(opts.View),
		altitude: visualizer.NewAltitude(opts.View.YMax, opts.YLabel+" vs frame"),
		ease:     visualizer.NewSmoother(fps, 8, 1),
		progress: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
		),
		help:   help.New(),
		keys:   newKeyMap(),
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	m.driver.Start()
	m.ease.Snap(0)
	m.log.Debug().
		Int("frames", m.driver.Animator().Frames()).
		Dur("delay", m.driver.Playback().Delay()).
		Str("repeat", m.driver.Playback().Repeat().String()).
		Msg("playback started")
	return tea.Batch(tickCmd(m.driver.Playback().Delay()), tea.SetWindowTitle(m.opts.Title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(m.keys, msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		return m, nil

	case tickMsg:
		if !m.driver.Tick() {
			if !m.finished {
				m.log.Debug().Msg("playback finished")
			}
			m.finished = true
			m.ease.Snap(1)
			m.render()
			return m, nil
		}
		if m.driver.Animator().Frame() == 0 {
			m.ease.Snap(0)
			m.log.Trace().Msg("playback at frame 0")
		}
		m.render()
		return m, tickCmd(m.driver.Playback().Delay())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(10, min(60, msg.Width-8))
		m.help.Width = msg.Width
		m.render()
		return m, nil
	}

	return m, nil
}

// layout returns the plot size in cells and the altitude chart height (0 when
// the terminal is too short for it).
func (m Model) layout() (cols, rows, chart int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	if h >= chartMinRows {
		chart = chartRows
	}
	rows = h - chromeRows
	if chart > 0 {
		rows -= chart + 3
	}
	rows = max(minPlotRows, rows)
	cols = max(minPlotCols, w-2-plotLabelWidth(m.opts.View, rows)-2)
	return cols, rows, chart
}

func (m *Model) render() {
	anim := m.driver.Animator()
	f := visualizer.Frame{Points: anim.Points()}
	cols, rows, chart := m.layout()
	if chart > 0 {
		f.Heights = anim.Heights(anim.Frame())
		m.altitude.Update(f, max(10, cols-8), chart)
	}
	m.scatter.Update(f, cols, rows)
	m.ease.Step(m.driver.Progress())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	cols, rows, chart := m.layout()
	anim := m.driver.Animator()

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(m.opts.Title) + "\n\n")
	b.WriteString("  " + labelStyle.Render(m.opts.YLabel) + "\n")
	b.WriteString(framePlot(m.scatter.View(), m.opts.View, cols, rows))
	b.WriteString("  " + labelStyle.Render(padLeft(m.opts.XLabel, cols+plotLabelWidth(m.opts.View, rows)+2)) + "\n")

	b.WriteString("  " + timeStyle.Render(anim.Label()) + "\n")
	pct := math.Max(0, math.Min(1, m.ease.Value()))
	b.WriteString("  " + m.progress.ViewAs(pct) + "\n")

	if chart > 0 && m.altitude.View() != "" {
		b.WriteString("\n")
		for _, line := range strings.Split(m.altitude.View(), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n  " + statusStyle.Render(m.statusLine()) + "\n")
	b.WriteString("  " + helpStyle.Render(m.help.View(m.keys)) + "\n")
	return b.String()
}

func (m Model) statusLine() string {
	anim := m.driver.Animator()
	pb := m.driver.Playback()

	icon, text := "▶", "playing"
	if m.finished {
		icon, text = "■", "finished"
	}
	left := fmt.Sprintf("%s  %s", icon, text)
	if r := pb.Repeat().Icon(); r != "" {
		left += "  " + r
	}
	left += "  trace " + anim.Mode().String()
	return fmt.Sprintf("%s  frame %d/%d", left, anim.Frame()+1, anim.Frames())
}

// CheckTerminal fails fast when out cannot host the animation.
func CheckTerminal(out *os.File) error {
	fd := out.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return fmt.Errorf("%w: %s is not a terminal", frames.ErrNoDisplay, out.Name())
}

// Run plays m full screen on out until the user quits.
func Run(m Model, out *os.File) error {
	if err := CheckTerminal(out); err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal display: %w", err)
	}
	return nil
}
