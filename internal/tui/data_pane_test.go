package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestDataPaneRows(t *testing.T) {
	d := newDataPane("A")
	table := models.Table{
		Columns: []string{"A", "B"},
		Rows: []models.Row{
			{Year: 1990, Values: []float64{0.5, math.NaN()}},
			{Year: 1991, Values: []float64{math.NaN(), -0.25}},
		},
	}
	// 1991 has no value for A, so it has no smoothed value either.
	d.setData(table, []int{1990}, []float64{0.5}, []float64{0.5})

	want := [][]string{
		{"1990", "+0.50", "–", "+0.50"},
		{"1991", "–", "-0.25", "–"},
	}
	var got [][]string
	for _, r := range d.rows() {
		got = append(got, []string(r))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if n := len(d.columns()); n != 4 {
		t.Fatalf("expected 4 columns, got %d", n)
	}
}

func TestDataPaneView(t *testing.T) {
	d := newDataPane("A")
	theme := Themes["default"]
	if got := d.View(theme, 60); !strings.Contains(got, "▸ Selected Data") || !strings.Contains(got, "(0 rows)") {
		t.Fatalf("unexpected closed view %q", got)
	}
	d.Toggle()
	if got := d.View(theme, 60); !strings.Contains(got, "No rows in the selected years.") {
		t.Fatalf("unexpected empty open view %q", got)
	}
}
