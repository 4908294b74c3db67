package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DaysPerMonth is the average month length used to fold days and hours into
// the months axis.
const DaysPerMonth = 30.42

// TemperatureSweep generates the ordered set of temperatures the capacity
// model is evaluated at.
type TemperatureSweep struct {
	MinC  float64 `json:"min_c"`
	MaxC  float64 `json:"max_c"`
	StepC float64 `json:"step_c"`
}

// Validate enforces min <= max and a positive step.
func (s TemperatureSweep) Validate() error {
	if s.StepC <= 0 {
		return Invalidf("temperature step must be positive, got %g", s.StepC)
	}
	if s.MinC > s.MaxC {
		return Invalidf("temperature bounds inverted: min %g > max %g", s.MinC, s.MaxC)
	}
	return nil
}

// Values returns the strictly increasing temperatures min, min+step, ... <= max.
func (s TemperatureSweep) Values() []float64 {
	n := int(math.Floor((s.MaxC-s.MinC)/s.StepC+1e-9)) + 1
	vals := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		vals = append(vals, s.MinC+float64(i)*s.StepC)
	}
	return vals
}

// ClosestIndex returns the index of the value in vals nearest to target.
// It maps a user-chosen temperature onto the nearest sweep bucket.
func ClosestIndex(vals []float64, target float64) int {
	if len(vals) == 0 {
		return -1
	}
	dist := make([]float64, len(vals))
	for i, v := range vals {
		dist[i] = math.Abs(v - target)
	}
	return floats.MinIdx(dist)
}

// MonthsAxis builds the storage time axis in months, starting at zero, at the
// given resolution. Days and hours are folded in using the average month
// length. The axis always contains at least the origin.
func MonthsAxis(months, days, hours, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, Invalidf("time resolution must be positive, got %g", step)
	}
	if months < 0 || days < 0 || hours < 0 {
		return nil, Invalidf("storage duration must be non-negative")
	}
	total := months + days/DaysPerMonth + hours/24/DaysPerMonth
	n := int(math.Floor(total/step+1e-9)) + 1
	axis := make([]float64, n)
	if n > 1 {
		floats.Span(axis, 0, float64(n-1)*step)
	}
	return axis, nil
}
