package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/go-pdf/fpdf"
)

// ReportSnapshot is the state written into a PDF report.
type ReportSnapshot struct {
	Source    string
	MinYear   int
	MaxYear   int
	Selection models.Selection
	Table     models.Table
	Series    string
	Years     []int
	Raw       []float64
	Smoothed  []float64
	Generated time.Time
}

// Chart area on the page, in millimetres.
const (
	chartX = 20.0
	chartY = 52.0
	chartW = 170.0
	chartH = 70.0
)

// ReportFileName is the name GeneratePDFReport writes under its directory.
func ReportFileName(s models.Selection) string {
	return fmt.Sprintf("report_%d-%d.pdf", s.YearRange.Low, s.YearRange.High)
}

// GeneratePDFReport writes the snapshot to dir and returns the file path.
func GeneratePDFReport(dir string, snap ReportSnapshot) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	if snap.Generated.IsZero() {
		snap.Generated = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Temperature selection report", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Selection Report: %s", snap.Selection.YearRange))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	lines := []string{
		fmt.Sprintf("Source: %s (years %d-%d)", snap.Source, snap.MinYear, snap.MaxYear),
		fmt.Sprintf("Series: %s", snap.Series),
		fmt.Sprintf("Window size: %d    Polynomial order: %d", snap.Selection.WindowSize, snap.Selection.PolynomialOrder),
		fmt.Sprintf("Generated: %s", snap.Generated.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	drawChart(pdf, snap)
	pdf.SetY(chartY + chartH + 12)
	drawTable(pdf, snap)

	path := filepath.Join(dir, ReportFileName(snap.Selection))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func drawChart(pdf *fpdf.Fpdf, snap ReportSnapshot) {
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.2)
	pdf.Rect(chartX, chartY, chartW, chartH, "D")
	if len(snap.Years) == 0 {
		pdf.SetXY(chartX, chartY+chartH/2)
		pdf.CellFormat(chartW, 6, "No data in the selected years.", "", 0, "C", false, 0, "")
		return
	}
	p := plotData{Years: snap.Years, Raw: snap.Raw, Smoothed: snap.Smoothed}
	lo, hi := p.valueRange()
	first, last := snap.Years[0], snap.Years[len(snap.Years)-1]
	xOf := func(year int) float64 {
		if first == last {
			return chartX + chartW/2
		}
		return chartX + float64(year-first)*chartW/float64(last-first)
	}
	yOf := func(v float64) float64 {
		return chartY + (hi-v)*chartH/(hi-lo)
	}

	pdf.SetFont("Arial", "", 8)
	pdf.SetXY(chartX-16, chartY-2)
	pdf.CellFormat(15, 4, fmt.Sprintf("%+.2f", hi), "", 0, "R", false, 0, "")
	pdf.SetXY(chartX-16, chartY+chartH-2)
	pdf.CellFormat(15, 4, fmt.Sprintf("%+.2f", lo), "", 0, "R", false, 0, "")
	pdf.SetXY(chartX, chartY+chartH+1)
	pdf.CellFormat(20, 4, fmt.Sprint(first), "", 0, "L", false, 0, "")
	pdf.SetXY(chartX+chartW-20, chartY+chartH+1)
	pdf.CellFormat(20, 4, fmt.Sprint(last), "", 0, "R", false, 0, "")

	pdf.SetFillColor(150, 150, 150)
	for i, y := range snap.Years {
		if i >= len(snap.Raw) || math.IsNaN(snap.Raw[i]) {
			continue
		}
		pdf.Circle(xOf(y), yOf(snap.Raw[i]), 0.5, "F")
	}
	if len(snap.Smoothed) == len(snap.Years) {
		pdf.SetDrawColor(200, 40, 40)
		pdf.SetLineWidth(0.5)
		for i := 1; i < len(snap.Years); i++ {
			pdf.Line(xOf(snap.Years[i-1]), yOf(snap.Smoothed[i-1]), xOf(snap.Years[i]), yOf(snap.Smoothed[i]))
		}
	}
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
}

func drawTable(pdf *fpdf.Fpdf, snap ReportSnapshot) {
	pane := DataPane{Table: snap.Table, Years: snap.Years, Smoothed: snap.Smoothed}
	headers := []string{"Year"}
	headers = append(headers, snap.Table.Columns...)
	headers = append(headers, "Smoothed")
	colW := 170.0 / float64(len(headers))

	pdf.SetFont("Arial", "B", 9)
	for _, h := range headers {
		pdf.CellFormat(colW, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, row := range pane.rows() {
		for _, cell := range row {
			if cell == "–" {
				cell = "-"
			}
			pdf.CellFormat(colW, 5, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
