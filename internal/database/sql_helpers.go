package database

import (
	"database/sql"
	"math"
)

// floatOrNaN maps a NULL column to NaN, the missing-value marker in models.Row.
func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// missingRow returns a value slice of n NaNs.
func missingRow(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
