package models

import (
	"fmt"
	"math"
)

// YearRange is an inclusive (Low, High) span of years.
type YearRange struct {
	Low  int
	High int
}

// Contains reports whether year lies inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Low && year <= r.High
}

// Span is the number of years covered, zero for reversed ranges.
func (r YearRange) Span() int {
	if r.High < r.Low {
		return 0
	}
	return r.High - r.Low + 1
}

func (r YearRange) String() string {
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

// Selection is the data selection driving the table and the plot.
type Selection struct {
	YearRange       YearRange
	WindowSize      int // smoothing window length
	PolynomialOrder int // degree of the fitted polynomial
}

// Row is one year of the dataset. Values follow Table.Columns; missing
// cells are NaN.
type Row struct {
	Year   int
	Values []float64
}

// Value returns the cell at column index i and whether it is present.
func (r Row) Value(i int) (float64, bool) {
	if i < 0 || i >= len(r.Values) {
		return 0, false
	}
	v := r.Values[i]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Table is the slice of the dataset returned for a year range.
type Table struct {
	Columns []string
	Rows    []Row
}

// ColumnIndex returns the position of name in Columns, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
