package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/akyairhashvil/tempdash/internal/config"
	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/selection"
	"github.com/charmbracelet/x/ansi"
)

// FormatValue formats a dataset cell, using a dash for missing values.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "–"
	}
	return fmt.Sprintf("%+.2f", v)
}

// FormatSmoothingInfo describes the smoothing applied to the plot.
func FormatSmoothingInfo(s models.Selection) string {
	return fmt.Sprintf("window %d · order %d", s.WindowSize, s.PolynomialOrder)
}

// FormatSelection is the one line summary used in the header and reports.
func FormatSelection(s models.Selection) string {
	return fmt.Sprintf("Years %s | %s", s.YearRange, FormatSmoothingInfo(s))
}

// FormatValidation turns a validation failure into a status line.
func FormatValidation(err error) string {
	ve, ok := selection.AsValidationError(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	parts := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		msg := v.Field.Label() + ": " + v.Constraint
		if v.Value != "" {
			msg += " (got " + v.Value + ")"
		}
		parts = append(parts, msg)
	}
	return "Rejected: " + strings.Join(parts, "; ")
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
