package model

import (
	"errors"
	"testing"
)

func TestDefaultInputValid(t *testing.T) {
	if err := DefaultInput().Validate(); err != nil {
		t.Fatalf("default input rejected: %v", err)
	}
}

func TestInputValidateBounds(t *testing.T) {
	mutations := []struct {
		name string
		mut  func(*EvaluationInput)
	}{
		{"capacity too low", func(in *EvaluationInput) { in.InitialCapacityPct = 40 }},
		{"capacity too high", func(in *EvaluationInput) { in.InitialCapacityPct = 101 }},
		{"months negative", func(in *EvaluationInput) { in.StorageMonths = -1 }},
		{"months too long", func(in *EvaluationInput) { in.StorageMonths = 121 }},
		{"days out of range", func(in *EvaluationInput) { in.StorageDays = 32 }},
		{"hours out of range", func(in *EvaluationInput) { in.StorageHours = 24 }},
		{"min temp too low", func(in *EvaluationInput) { in.Sweep.MinC = -21 }},
		{"max temp too high", func(in *EvaluationInput) { in.Sweep.MaxC = 61 }},
		{"step too large", func(in *EvaluationInput) { in.Sweep.StepC = 11 }},
		{"inverted sweep", func(in *EvaluationInput) { in.Sweep.MinC = 25; in.Sweep.MaxC = 25; in.Sweep.MinC = 30 }},
		{"voltage too low", func(in *EvaluationInput) { in.NominalVoltageV = 11 }},
		{"voltage too high", func(in *EvaluationInput) { in.NominalVoltageV = 601 }},
		{"power too low", func(in *EvaluationInput) { in.MaxLoadPowerKW = 0.5 }},
		{"power too high", func(in *EvaluationInput) { in.MaxLoadPowerKW = 51 }},
		{"aging year out of range", func(in *EvaluationInput) { in.AgingYear = 5.1 }},
		{"negative load resistance", func(in *EvaluationInput) { in.LoadResistanceOhm = -1 }},
	}
	for _, m := range mutations {
		in := DefaultInput()
		m.mut(&in)
		if err := in.Validate(); !errors.Is(err, ErrInvalidDomainInput) {
			t.Errorf("%s: got %v, want ErrInvalidDomainInput", m.name, err)
		}
	}
}

func TestBatterySpecValidate(t *testing.T) {
	if err := DefaultBatterySpec().Validate(); err != nil {
		t.Fatalf("default spec rejected: %v", err)
	}
	bad := DefaultBatterySpec()
	bad.NominalCapacityAh = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDomainInput) {
		t.Errorf("zero capacity: got %v", err)
	}
	bad = DefaultBatterySpec()
	bad.ResistanceYears = bad.ResistanceYears[:5]
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDomainInput) {
		t.Errorf("table mismatch: got %v", err)
	}
	bad = DefaultBatterySpec()
	bad.ResistanceYears[3] = bad.ResistanceYears[2]
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDomainInput) {
		t.Errorf("non-increasing years: got %v", err)
	}
}

func TestDefaultBatterySpecTable(t *testing.T) {
	spec := DefaultBatterySpec()
	if len(spec.ResistanceYears) != 11 {
		t.Fatalf("table size = %d, want 11", len(spec.ResistanceYears))
	}
	if spec.ResistanceMilliOhm[0] != 13.83 {
		t.Errorf("year-0 resistance = %g, want 13.83", spec.ResistanceMilliOhm[0])
	}
	if spec.ResistanceMilliOhm[10] != 4.5*13.83 {
		t.Errorf("year-10 resistance = %g, want %g", spec.ResistanceMilliOhm[10], 4.5*13.83)
	}
}
