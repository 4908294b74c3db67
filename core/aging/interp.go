package aging

import (
	"gonum.org/v1/gonum/interp"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

// Table interpolates a tabulated series piecewise-linearly. Queries outside
// the table's domain clamp to the nearest boundary value; queries at a table
// point return that point's value exactly.
type Table struct {
	pl interp.PiecewiseLinear
}

// NewTable validates the table and fits the interpolant. xs must be strictly
// increasing and of the same length as ys, with at least two entries.
func NewTable(xs, ys []float64) (*Table, error) {
	if len(xs) != len(ys) {
		return nil, model.Invalidf("table length mismatch: %d xs, %d ys", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, model.Invalidf("table needs at least two points, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, model.Invalidf("table xs must be strictly increasing")
		}
	}
	var t Table
	if err := t.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return &t, nil
}

// At returns the interpolated value at x. PiecewiseLinear already returns the
// boundary value for x outside the fitted range, which is exactly the
// no-extrapolation policy the aging table needs.
func (t *Table) At(x float64) float64 {
	return t.pl.Predict(x)
}
