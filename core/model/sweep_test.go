package model

import (
	"errors"
	"math"
	"testing"
)

func TestSweepValues(t *testing.T) {
	s := TemperatureSweep{MinC: -15, MaxC: 45, StepC: 5}
	vals := s.Values()
	if len(vals) != 13 {
		t.Fatalf("len = %d, want 13", len(vals))
	}
	if vals[0] != -15 || vals[len(vals)-1] != 45 {
		t.Errorf("bounds = %g..%g", vals[0], vals[len(vals)-1])
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			t.Fatal("values not strictly increasing")
		}
	}
}

func TestSweepValuesStepBeyondMax(t *testing.T) {
	s := TemperatureSweep{MinC: 25, MaxC: 25, StepC: 5}
	vals := s.Values()
	if len(vals) != 1 || vals[0] != 25 {
		t.Fatalf("degenerate sweep: %v", vals)
	}
}

func TestSweepValidate(t *testing.T) {
	if err := (TemperatureSweep{MinC: 30, MaxC: 25, StepC: 5}).Validate(); !errors.Is(err, ErrInvalidDomainInput) {
		t.Errorf("inverted bounds: got %v", err)
	}
	if err := (TemperatureSweep{MinC: -15, MaxC: 45, StepC: 0}).Validate(); !errors.Is(err, ErrInvalidDomainInput) {
		t.Errorf("zero step: got %v", err)
	}
	if err := (TemperatureSweep{MinC: -15, MaxC: 45, StepC: 5}).Validate(); err != nil {
		t.Errorf("valid sweep rejected: %v", err)
	}
}

func TestClosestIndex(t *testing.T) {
	vals := []float64{-15, -10, -5, 0, 5}
	cases := []struct {
		target float64
		want   int
	}{
		{-5, 2},
		{-6, 2},
		{-14, 0},
		{100, 4},
		{-100, 0},
	}
	for _, c := range cases {
		if got := ClosestIndex(vals, c.target); got != c.want {
			t.Errorf("ClosestIndex(%g) = %d, want %d", c.target, got, c.want)
		}
	}
	if got := ClosestIndex(nil, 1); got != -1 {
		t.Errorf("empty slice: got %d", got)
	}
}

func TestMonthsAxis(t *testing.T) {
	axis, err := MonthsAxis(1, 0, 0, 0.1)
	if err != nil {
		t.Fatalf("axis: %v", err)
	}
	if axis[0] != 0 {
		t.Errorf("axis must start at 0, got %g", axis[0])
	}
	if len(axis) != 11 {
		t.Fatalf("len = %d, want 11", len(axis))
	}
	if math.Abs(axis[len(axis)-1]-1.0) > 1e-9 {
		t.Errorf("last = %g, want 1.0", axis[len(axis)-1])
	}
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			t.Fatal("axis not monotonically increasing")
		}
	}
}

func TestMonthsAxisFoldsDaysAndHours(t *testing.T) {
	axis, err := MonthsAxis(0, DaysPerMonth, 0, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(axis[len(axis)-1]-1.0) > 0.05 {
		t.Errorf("30.42 days should span ~1 month, got %g", axis[len(axis)-1])
	}
	zero, err := MonthsAxis(0, 0, 0, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(zero) != 1 || zero[0] != 0 {
		t.Errorf("zero duration axis = %v", zero)
	}
}

func TestMonthsAxisInvalid(t *testing.T) {
	if _, err := MonthsAxis(1, 0, 0, 0); !errors.Is(err, ErrInvalidDomainInput) {
		t.Errorf("zero step: got %v", err)
	}
	if _, err := MonthsAxis(-1, 0, 0, 0.1); !errors.Is(err, ErrInvalidDomainInput) {
		t.Errorf("negative months: got %v", err)
	}
}
