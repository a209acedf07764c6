package selection

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/tempdash/internal/config"
	"github.com/akyairhashvil/tempdash/internal/models"
)

// Default is the selection the dashboard starts from.
func Default() models.Selection {
	return models.Selection{
		YearRange:       models.YearRange{Low: config.DefaultYearLow, High: config.DefaultYearHigh},
		WindowSize:      config.DefaultWindowSize,
		PolynomialOrder: config.DefaultPolynomialOrder,
	}
}

// Validate checks s against b. Field ranges are checked first and all their
// failures are reported together; the polynomial order / window size
// relation is only checked once every field is individually valid.
func Validate(b *Bounds, s models.Selection) error {
	var violations []Violation
	violations = append(violations, checkYearRange(b, s.YearRange)...)
	violations = append(violations, checkRange(FieldWindowSize, s.WindowSize, config.MinWindowSize, config.MaxWindowSize)...)
	violations = append(violations, checkRange(FieldPolynomialOrder, s.PolynomialOrder, config.MinPolynomialOrder, config.MaxPolynomialOrder)...)
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	if s.PolynomialOrder > s.WindowSize-1 {
		return &ValidationError{Violations: []Violation{{
			Field:      FieldPolynomialOrder,
			Constraint: "polynomial order must be smaller than window size",
			Value:      fmt.Sprintf("order %d, window %d", s.PolynomialOrder, s.WindowSize),
		}}}
	}
	return nil
}

func checkYearRange(b *Bounds, r models.YearRange) []Violation {
	if b == nil {
		return []Violation{{Field: FieldYearRange, Constraint: "year bounds are not initialised"}}
	}
	var out []Violation
	for _, year := range []int{r.Low, r.High} {
		if !b.Contains(year) {
			out = append(out, Violation{
				Field:      FieldYearRange,
				Constraint: fmt.Sprintf("year must be between %d and %d", b.MinYear(), b.MaxYear()),
				Value:      strconv.Itoa(year),
			})
		}
	}
	if r.Low > r.High {
		out = append(out, Violation{
			Field:      FieldYearRange,
			Constraint: "start year must not be after end year",
			Value:      r.String(),
		})
	}
	return out
}

func checkRange(f Field, value, min, max int) []Violation {
	if value >= min && value <= max {
		return nil
	}
	return []Violation{{
		Field:      f,
		Constraint: fmt.Sprintf("must be between %d and %d", min, max),
		Value:      strconv.Itoa(value),
	}}
}
