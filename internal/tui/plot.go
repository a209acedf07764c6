package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	glyphRaw    = '·'
	glyphSmooth = '•'
	axisWidth   = 7
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellRaw
	cellSmooth
)

// plotData is what the plot pane draws: the raw series as points and the
// smoothed series as a line over the same years.
type plotData struct {
	Title    string
	Series   string
	Info     string
	Years    []int
	Raw      []float64
	Smoothed []float64
}

func (p plotData) valueRange() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vals := range [][]float64{p.Raw, p.Smoothed} {
		for _, v := range vals {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return lo, hi
}

// renderPlot draws p into a width x height character grid with a value axis
// on the left and the first and last year underneath.
func renderPlot(theme Theme, p plotData, width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(truncateLabel(p.Title, width)) + "\n")
	plotW := width - axisWidth - 1
	if len(p.Years) == 0 || plotW < 4 || height < 3 {
		b.WriteString(theme.Dim.Render("No data in the selected years."))
		return b.String()
	}

	grid := make([][]cellKind, height)
	for i := range grid {
		grid[i] = make([]cellKind, plotW)
	}
	lo, hi := p.valueRange()
	firstYear, lastYear := p.Years[0], p.Years[len(p.Years)-1]
	colOf := func(year int) int {
		if lastYear == firstYear {
			return plotW / 2
		}
		return int(math.Round(float64(year-firstYear) * float64(plotW-1) / float64(lastYear-firstYear)))
	}
	rowOf := func(v float64) int {
		return int(math.Round((hi - v) * float64(height-1) / (hi - lo)))
	}

	for i, y := range p.Years {
		if i < len(p.Raw) && !math.IsNaN(p.Raw[i]) {
			grid[rowOf(p.Raw[i])][colOf(y)] = cellRaw
		}
	}
	if len(p.Smoothed) == len(p.Years) {
		for col := 0; col < plotW; col++ {
			v, ok := interpolateAt(p.Years, p.Smoothed, firstYear, lastYear, col, plotW)
			if ok && !math.IsNaN(v) {
				grid[rowOf(v)][col] = cellSmooth
			}
		}
	}

	for r := 0; r < height; r++ {
		b.WriteString(theme.Axis.Render(axisLabel(r, height, lo, hi)) + theme.Axis.Render("┤"))
		b.WriteString(renderGridRow(theme, grid[r]))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", axisWidth) + theme.Axis.Render("└"+strings.Repeat("─", plotW)) + "\n")
	b.WriteString(strings.Repeat(" ", axisWidth+1) + theme.Axis.Render(yearAxis(firstYear, lastYear, plotW)) + "\n")
	legend := theme.PlotRaw.Render(string(glyphRaw)+" "+p.Series) + "  " +
		theme.PlotSmooth.Render(string(glyphSmooth)+" smoothed ("+p.Info+")")
	b.WriteString(legend)
	return b.String()
}

func renderGridRow(theme Theme, row []cellKind) string {
	var b strings.Builder
	for _, c := range row {
		switch c {
		case cellRaw:
			b.WriteString(theme.PlotRaw.Render(string(glyphRaw)))
		case cellSmooth:
			b.WriteString(theme.PlotSmooth.Render(string(glyphSmooth)))
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// interpolateAt returns the smoothed value at the year under column col.
func interpolateAt(years []int, values []float64, first, last, col, cols int) (float64, bool) {
	if len(years) == 0 {
		return 0, false
	}
	if first == last || cols <= 1 {
		return values[0], col == cols/2
	}
	x := float64(first) + float64(col)*float64(last-first)/float64(cols-1)
	for i := 1; i < len(years); i++ {
		x0, x1 := float64(years[i-1]), float64(years[i])
		if x > x1 {
			continue
		}
		if x1 == x0 {
			return values[i], true
		}
		t := (x - x0) / (x1 - x0)
		return values[i-1] + t*(values[i]-values[i-1]), true
	}
	return values[len(values)-1], true
}

// axisLabel labels the top, middle and bottom rows.
func axisLabel(row, height int, lo, hi float64) string {
	var v float64
	switch row {
	case 0:
		v = hi
	case height - 1:
		v = lo
	case (height - 1) / 2:
		v = hi - (hi-lo)*float64(row)/float64(height-1)
	default:
		return strings.Repeat(" ", axisWidth)
	}
	return fmt.Sprintf("%*s", axisWidth, fmt.Sprintf("%+.2f", v))
}

func yearAxis(first, last, width int) string {
	left, right := fmt.Sprint(first), fmt.Sprint(last)
	if first == last {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, left)
	}
	gap := width - len(left) - len(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
