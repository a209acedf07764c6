// Package smoothing fits the plotted series with a sliding least-squares
// polynomial (Savitzky–Golay), the smoothing controlled by the dashboard's
// window size and polynomial order.
package smoothing

import (
	"errors"
	"fmt"
	"math"

	"github.com/akyairhashvil/tempdash/internal/models"
	"gonum.org/v1/gonum/mat"
)

var ErrInvalidWindow = errors.New("smoothing: invalid window")

// SavitzkyGolay smooths values with a polynomial of the given order fitted
// over window consecutive points. Near the ends the window is shifted
// inward so that every output uses exactly window inputs. A window longer
// than the series is shrunk to the series length, and the order with it.
func SavitzkyGolay(values []float64, window, order int) ([]float64, error) {
	if window < 1 || order < 0 || order >= window {
		return nil, fmt.Errorf("%w: window %d, order %d", ErrInvalidWindow, window, order)
	}
	n := len(values)
	if n == 0 {
		return nil, nil
	}
	if window > n {
		window = n
	}
	if order > window-1 {
		order = window - 1
	}

	weights, err := fitWeights(window, order)
	if err != nil {
		return nil, err
	}
	half := (window - 1) / 2
	out := make([]float64, n)
	for i := range values {
		start := i - half
		if start < 0 {
			start = 0
		}
		if start > n-window {
			start = n - window
		}
		row := weights.RawRowView(i - start)
		var sum float64
		for j, w := range row {
			sum += w * values[start+j]
		}
		out[i] = sum
	}
	return out, nil
}

// fitWeights returns the window x window hat matrix of a least-squares
// polynomial fit: row k holds the weights producing the fitted value at
// position k of the window.
func fitWeights(window, order int) (*mat.Dense, error) {
	center := float64(window-1) / 2
	scale := math.Max(center, 1)

	vander := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		x := (float64(i) - center) / scale
		p := 1.0
		for j := 0; j <= order; j++ {
			vander.Set(i, j, p)
			p *= x
		}
	}

	var qr mat.QR
	qr.Factorize(vander)
	identity := mat.NewDiagDense(window, ones(window))
	var pinv mat.Dense
	if err := qr.SolveTo(&pinv, false, identity); err != nil {
		return nil, fmt.Errorf("smoothing: fit window %d order %d: %w", window, order, err)
	}
	var hat mat.Dense
	hat.Mul(vander, &pinv)
	return &hat, nil
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Series extracts the named column from t, skipping missing cells.
func Series(t models.Table, column string) ([]int, []float64) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, nil
	}
	years := make([]int, 0, len(t.Rows))
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		v, ok := row.Value(idx)
		if !ok {
			continue
		}
		years = append(years, row.Year)
		values = append(values, v)
	}
	return years, values
}
