package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// DatasetBuilder provides a fluent API for building CSV datasets in tests.
type DatasetBuilder struct {
	columns  []string
	comments []string
	rows     [][]string
}

func NewDataset() *DatasetBuilder {
	return &DatasetBuilder{
		columns: []string{"Year", "No_Smoothing", "Lowess(5)"},
	}
}

// WithColumns replaces the header row.
func (b *DatasetBuilder) WithColumns(cols ...string) *DatasetBuilder {
	b.columns = append([]string{}, cols...)
	return b
}

// WithComment adds a '#' line above the header.
func (b *DatasetBuilder) WithComment(text string) *DatasetBuilder {
	b.comments = append(b.comments, "# "+text)
	return b
}

func (b *DatasetBuilder) WithRow(year int, values ...float64) *DatasetBuilder {
	cells := []string{strconv.Itoa(year)}
	for _, v := range values {
		cells = append(cells, strconv.FormatFloat(v, 'f', -1, 64))
	}
	b.rows = append(b.rows, cells)
	return b
}

// WithRawRow appends cells verbatim, for malformed input.
func (b *DatasetBuilder) WithRawRow(cells ...string) *DatasetBuilder {
	b.rows = append(b.rows, cells)
	return b
}

// WithYears appends one row per year in [from, to] using fn for the values.
func (b *DatasetBuilder) WithYears(from, to int, fn func(year int) []float64) *DatasetBuilder {
	for y := from; y <= to; y++ {
		b.WithRow(y, fn(y)...)
	}
	return b
}

func (b *DatasetBuilder) CSV() string {
	var sb strings.Builder
	for _, c := range b.comments {
		sb.WriteString(c + "\n")
	}
	sb.WriteString(strings.Join(b.columns, ",") + "\n")
	for _, r := range b.rows {
		sb.WriteString(strings.Join(r, ",") + "\n")
	}
	return sb.String()
}

func (b *DatasetBuilder) Reader() io.Reader {
	return strings.NewReader(b.CSV())
}

// WriteFile writes the dataset into dir and returns its path.
func (b *DatasetBuilder) WriteFile(t testing.TB, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "dataset.csv")
	if err := os.WriteFile(path, []byte(b.CSV()), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

// Anomaly is a deterministic temperature-like series for fixtures.
func Anomaly(year int) []float64 {
	raw := float64((year*37)%23-11) / 20
	return []float64{raw, raw / 2}
}
