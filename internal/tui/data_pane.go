package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/tempdash/internal/config"
	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	yearColumnWidth = 6
	accordionTitle  = "Selected Data"
)

// DataPane holds the rows of the current selection, the plotted series and
// its smoothed counterpart, and the collapsible table showing them.
type DataPane struct {
	Open     bool
	Table    models.Table
	Series   string
	Years    []int
	Raw      []float64
	Smoothed []float64
	grid     table.Model
}

func newDataPane(series string) DataPane {
	grid := table.New(
		table.WithHeight(config.DataTableHeight),
		table.WithFocused(false),
	)
	return DataPane{Series: series, grid: grid}
}

func (d *DataPane) applyTheme(theme Theme) {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Focused
	d.grid.SetStyles(styles)
}

// setData replaces the table contents.
func (d *DataPane) setData(t models.Table, years []int, raw, smoothed []float64) {
	d.Table, d.Years, d.Raw, d.Smoothed = t, years, raw, smoothed
	d.grid.SetRows(nil)
	d.grid.SetColumns(d.columns())
	d.grid.SetRows(d.rows())
	d.grid.GotoTop()
}

func (d DataPane) columns() []table.Column {
	cols := []table.Column{{Title: config.YearColumn, Width: yearColumnWidth}}
	for _, name := range d.Table.Columns {
		cols = append(cols, table.Column{Title: truncateLabel(name, config.ColumnCellWidth), Width: config.ColumnCellWidth})
	}
	return append(cols, table.Column{Title: "Smoothed", Width: config.ColumnCellWidth})
}

func (d DataPane) rows() []table.Row {
	smoothedByYear := make(map[int]float64, len(d.Years))
	for i, y := range d.Years {
		if i < len(d.Smoothed) {
			smoothedByYear[y] = d.Smoothed[i]
		}
	}
	out := make([]table.Row, 0, len(d.Table.Rows))
	for _, r := range d.Table.Rows {
		row := table.Row{strconv.Itoa(r.Year)}
		for i := range d.Table.Columns {
			v := math.NaN()
			if i < len(r.Values) {
				v = r.Values[i]
			}
			row = append(row, FormatValue(v))
		}
		smooth, ok := smoothedByYear[r.Year]
		if !ok {
			smooth = math.NaN()
		}
		out = append(out, append(row, FormatValue(smooth)))
	}
	return out
}

func (d *DataPane) Toggle() {
	d.Open = !d.Open
	if d.Open {
		d.grid.Focus()
	} else {
		d.grid.Blur()
	}
}

func (d *DataPane) ScrollUp(n int)   { d.grid.MoveUp(n) }
func (d *DataPane) ScrollDown(n int) { d.grid.MoveDown(n) }

// View renders the accordion header and, when open, the table.
func (d DataPane) View(theme Theme, width int) string {
	arrow := "▸"
	if d.Open {
		arrow = "▾"
	}
	header := theme.Title.Render(fmt.Sprintf("%s %s", arrow, accordionTitle)) +
		theme.Dim.Render(fmt.Sprintf(" (%d rows)", len(d.Table.Rows)))
	if !d.Open {
		return header
	}
	if len(d.Table.Rows) == 0 {
		return header + "\n" + theme.Dim.Render("No rows in the selected years.")
	}
	body := d.grid.View()
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = truncateLabel(line, width)
	}
	return header + "\n" + strings.Join(lines, "\n")
}
