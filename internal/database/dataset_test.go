package database

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestLoadCSVAndBounds(t *testing.T) {
	ctx := context.Background()
	b := testutil.NewDataset().
		WithComment("GISTEMP land-ocean temperature index").
		WithYears(1880, 1900, testutil.Anomaly)
	db := setupTestDB(t, ctx)

	stats, err := db.LoadCSV(ctx, b.Reader())
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if stats.Rows != 21 || stats.Missing != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if diff := cmp.Diff([]string{"No_Smoothing", "Lowess(5)"}, stats.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	minYear, maxYear, err := db.YearBounds(ctx)
	if err != nil {
		t.Fatalf("YearBounds failed: %v", err)
	}
	if minYear != 1880 || maxYear != 1900 {
		t.Fatalf("YearBounds = %d, %d", minYear, maxYear)
	}
	if _, ok := db.GetMetadata(ctx, MetaLoadedAt); !ok {
		t.Fatalf("expected loaded_at metadata")
	}
}

func TestLoadCSVMissingCells(t *testing.T) {
	ctx := context.Background()
	b := testutil.NewDataset().
		WithRow(1990, 0.1, 0.2).
		WithRawRow("1991", "***", "0.3").
		WithRawRow("1992", "0.4").
		WithRow(1993, 0.5, 0.6)
	db := setupTestDB(t, ctx)
	stats, err := db.LoadCSV(ctx, b.Reader())
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if stats.Missing != 2 {
		t.Fatalf("Missing = %d, want 2", stats.Missing)
	}

	table, err := db.Observations(ctx, models.YearRange{Low: 1991, High: 1992})
	if err != nil {
		t.Fatalf("Observations failed: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if !math.IsNaN(table.Rows[0].Values[0]) || table.Rows[0].Values[1] != 0.3 {
		t.Fatalf("unexpected 1991 values %v", table.Rows[0].Values)
	}
	if table.Rows[1].Values[0] != 0.4 || !math.IsNaN(table.Rows[1].Values[1]) {
		t.Fatalf("unexpected 1992 values %v", table.Rows[1].Values)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want error
	}{
		{"empty input", "", ErrEmptyDataset},
		{"only comments", "# nothing here\n", ErrEmptyDataset},
		{"header only", "Year,Value\n", ErrEmptyDataset},
		{"no year column", "When,Value\n1990,0.1\n", ErrNoYearColumn},
		{"bad year", "Year,Value\n1990,0.1\nnineteen,0.2\n", ErrInvalidRow},
		{"duplicate year", "Year,Value\n1990,0.1\n1990,0.2\n", ErrInvalidRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			db := setupTestDB(t, ctx)
			_, err := db.LoadCSV(ctx, strings.NewReader(tt.csv))
			if !errors.Is(err, tt.want) {
				t.Fatalf("LoadCSV error = %v, want %v", err, tt.want)
			}
			var opErr *OpError
			if !errors.As(err, &opErr) {
				t.Fatalf("expected *OpError, got %T", err)
			}
		})
	}
}

func TestLoadCSVBadRowReportsLine(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	_, err := db.LoadCSV(ctx, strings.NewReader("# comment\nYear,Value\n1990,0.1\nbad,0.2\n"))
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OpError, got %v", err)
	}
	if opErr.Line != 4 {
		t.Fatalf("Line = %d, want 4", opErr.Line)
	}
}

func TestLoadCSVFailureKeepsPreviousDataset(t *testing.T) {
	ctx := context.Background()
	db := setupLoadedDB(t, ctx, testutil.NewDataset().WithYears(1950, 1960, testutil.Anomaly))
	if _, err := db.LoadCSV(ctx, strings.NewReader("Year,Value\n2000,1\nbad,2\n")); err == nil {
		t.Fatalf("expected load failure")
	}
	minYear, maxYear, err := db.YearBounds(ctx)
	if err != nil {
		t.Fatalf("YearBounds failed: %v", err)
	}
	if minYear != 1950 || maxYear != 1960 {
		t.Fatalf("previous dataset lost: %d-%d", minYear, maxYear)
	}
}

func TestLoadCSVReplacesDataset(t *testing.T) {
	ctx := context.Background()
	db := setupLoadedDB(t, ctx, testutil.NewDataset().WithYears(1950, 1960, testutil.Anomaly))
	if _, err := db.LoadCSV(ctx, strings.NewReader("year,Only\n2001,1\n2002,2\n")); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	cols, err := db.Columns(ctx)
	if err != nil {
		t.Fatalf("Columns failed: %v", err)
	}
	if diff := cmp.Diff([]string{"Only"}, cols); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	minYear, maxYear, _ := db.YearBounds(ctx)
	if minYear != 2001 || maxYear != 2002 {
		t.Fatalf("YearBounds = %d-%d", minYear, maxYear)
	}
}

func TestLoadFileRecordsSource(t *testing.T) {
	ctx := context.Background()
	path := testutil.NewDataset().WithYears(1880, 1885, testutil.Anomaly).WriteFile(t, t.TempDir())
	db := setupTestDB(t, ctx)
	if _, err := db.LoadFile(ctx, path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got, ok := db.GetMetadata(ctx, MetaSource); !ok || got != path {
		t.Fatalf("source = %q, %v", got, ok)
	}
	if _, err := db.LoadFile(ctx, filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestYearBoundsEmpty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, _, err := db.YearBounds(ctx); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("YearBounds error = %v, want ErrEmptyDataset", err)
	}
}
