package tui

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/selection"
)

func TestFormatValue(t *testing.T) {
	if got := FormatValue(0.254); got != "+0.25" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatValue(-1.5); got != "-1.50" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatValue(math.NaN()); got != "–" {
		t.Fatalf("unexpected %q for NaN", got)
	}
}

func TestFormatSelection(t *testing.T) {
	s := models.Selection{YearRange: models.YearRange{Low: 1900, High: 1950}, WindowSize: 7, PolynomialOrder: 3}
	if got := FormatSelection(s); got != "Years 1900-1950 | window 7 · order 3" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatValidation(t *testing.T) {
	err := &selection.ValidationError{Violations: []selection.Violation{
		{Field: selection.FieldWindowSize, Constraint: "must be between 2 and 100", Value: "101"},
		{Field: selection.FieldPolynomialOrder, Constraint: "must be between 1 and 10"},
	}}
	got := FormatValidation(err)
	if !strings.HasPrefix(got, "Rejected: ") {
		t.Fatalf("unexpected prefix in %q", got)
	}
	if !strings.Contains(got, "(got 101)") || !strings.Contains(got, "; ") {
		t.Fatalf("expected both violations in %q", got)
	}
	if got := FormatValidation(errors.New("boom")); got != "Error: boom" {
		t.Fatalf("unexpected %q for plain error", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("Lowess(5)", 20); got != "Lowess(5)" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncateLabel("Lowess(5)", 4); got != "Low…" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncateLabel("x", 0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
