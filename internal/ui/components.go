package ui

import (
	"strings"

	"github.com/olivier-w/simumotion/internal/util"
	"github.com/olivier-w/simumotion/internal/visualizer"
)

// yTicks returns one label per plot row: the top, middle and bottom rows are
// labelled, the rest are blank.
func yTicks(view visualizer.Viewport, rows int) []string {
	labels := make([]string, rows)
	if rows < 1 {
		return labels
	}
	labels[0] = util.FormatTick(view.YMax)
	labels[rows-1] = util.FormatTick(view.YMin)
	if rows >= 5 {
		labels[(rows-1)/2] = util.FormatTick(view.YMin + (view.YMax-view.YMin)*float64(rows-1-(rows-1)/2)/float64(rows-1))
	}
	return labels
}

// xTicks lays out the min, middle and max x labels under a plot of width cols.
func xTicks(view visualizer.Viewport, cols int) string {
	lo := util.FormatTick(view.XMin)
	mid := util.FormatTick((view.XMin + view.XMax) / 2)
	hi := util.FormatTick(view.XMax)
	line := []rune(spaces(cols))
	place := func(s string, at int) {
		r := []rune(s)
		if at+len(r) > len(line) {
			at = len(line) - len(r)
		}
		if at < 0 {
			at = 0
		}
		for i, c := range r {
			if at+i < len(line) {
				line[at+i] = c
			}
		}
	}
	place(lo, 0)
	if cols >= len(lo)+len(mid)+len(hi)+4 {
		place(mid, cols/2-len(mid)/2)
	}
	place(hi, cols-len(hi))
	return string(line)
}

// framePlot joins the braille canvas with its axes and tick labels.
func framePlot(canvas string, view visualizer.Viewport, cols, rows int) string {
	labels := yTicks(view, rows)
	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, len(l))
	}
	canvasRows := strings.Split(canvas, "\n")

	var b strings.Builder
	for i := range rows {
		row := ""
		if i < len(canvasRows) {
			row = canvasRows[i]
		}
		b.WriteString("  ")
		b.WriteString(axisStyle.Render(padLeft(labels[i], labelW) + " │"))
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(axisStyle.Render(spaces(labelW) + " └" + strings.Repeat("─", cols)))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(axisStyle.Render(spaces(labelW+2) + xTicks(view, cols)))
	b.WriteString("\n")
	return b.String()
}

func plotLabelWidth(view visualizer.Viewport, rows int) int {
	w := 0
	for _, l := range yTicks(view, rows) {
		w = max(w, len(l))
	}
	return w
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return spaces(n-len(s)) + s
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
