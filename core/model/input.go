package model

// EvaluationInput carries every user-adjustable parameter of one evaluation
// pass. It replaces the sidebar widget state of the interactive tool: an
// immutable record handed to the evaluator, never shared or mutated.
type EvaluationInput struct {
	InitialCapacityPct float64 `json:"initial_capacity_pct"`

	StorageMonths float64 `json:"storage_months"`
	StorageDays   float64 `json:"storage_days"`
	StorageHours  float64 `json:"storage_hours"`

	Sweep TemperatureSweep `json:"sweep"`

	// HighlightLowC and HighlightHighC select the two curves the shaded
	// band is drawn between. Each is snapped to the nearest sweep bucket.
	HighlightLowC  float64 `json:"highlight_low_c"`
	HighlightHighC float64 `json:"highlight_high_c"`

	// EstimationTempC is the temperature the self-discharge figures are
	// reported at.
	EstimationTempC float64 `json:"estimation_temp_c"`

	// NominalVoltageV is the bus voltage the inrush and terminal-voltage
	// figures are computed against. It is a property of the installation,
	// not of the battery, hence an input rather than a spec constant.
	NominalVoltageV float64 `json:"nominal_voltage_v"`
	MaxLoadPowerKW  float64 `json:"max_load_power_kw"`

	// OpenCircuitVoltageV, InternalResistanceOhm and LoadResistanceOhm feed
	// the resistive-divider inrush estimate. The estimate is only computed
	// when OpenCircuitVoltageV is positive.
	OpenCircuitVoltageV   float64 `json:"open_circuit_voltage_v"`
	InternalResistanceOhm float64 `json:"internal_resistance_ohm"`
	LoadResistanceOhm     float64 `json:"load_resistance_ohm"`

	// AgingYear selects the point on the corrected resistance table the
	// interpolated resistance is reported at.
	AgingYear float64 `json:"aging_year"`

	// TargetTempC is the temperature the resistance table is corrected to.
	TargetTempC float64 `json:"target_temp_c"`
}

// DefaultInput mirrors the dashboard's initial slider positions.
func DefaultInput() EvaluationInput {
	return EvaluationInput{
		InitialCapacityPct: 95,
		StorageMonths:      12,
		Sweep:              TemperatureSweep{MinC: -15, MaxC: 45, StepC: 5},
		HighlightLowC:      -5,
		HighlightHighC:     35,
		EstimationTempC:    25,
		NominalVoltageV:    240,
		MaxLoadPowerKW:     12,
		AgingYear:          5,
		TargetTempC:        15,
	}
}

// Validate enforces the recognized input domains. The presentation boundary
// is expected to keep its widgets within these bounds already; the core
// defends against them regardless.
func (in EvaluationInput) Validate() error {
	if in.InitialCapacityPct < 50 || in.InitialCapacityPct > 100 {
		return Invalidf("initial capacity %g%% outside [50,100]", in.InitialCapacityPct)
	}
	if in.StorageMonths < 0 || in.StorageMonths > 120 {
		return Invalidf("storage months %g outside [0,120]", in.StorageMonths)
	}
	if in.StorageDays < 0 || in.StorageDays > 31 {
		return Invalidf("storage days %g outside [0,31]", in.StorageDays)
	}
	if in.StorageHours < 0 || in.StorageHours > 23 {
		return Invalidf("storage hours %g outside [0,23]", in.StorageHours)
	}
	if err := in.Sweep.Validate(); err != nil {
		return err
	}
	if in.Sweep.MinC < -20 || in.Sweep.MinC > 25 {
		return Invalidf("min temperature %g outside [-20,25]", in.Sweep.MinC)
	}
	if in.Sweep.MaxC < 25 || in.Sweep.MaxC > 60 {
		return Invalidf("max temperature %g outside [25,60]", in.Sweep.MaxC)
	}
	if in.Sweep.StepC < 1 || in.Sweep.StepC > 10 {
		return Invalidf("temperature step %g outside [1,10]", in.Sweep.StepC)
	}
	if in.NominalVoltageV < 12 || in.NominalVoltageV > 600 {
		return Invalidf("nominal voltage %g V outside [12,600]", in.NominalVoltageV)
	}
	if in.MaxLoadPowerKW < 1 || in.MaxLoadPowerKW > 50 {
		return Invalidf("max load power %g kW outside [1,50]", in.MaxLoadPowerKW)
	}
	if in.AgingYear < 0 || in.AgingYear > 5 {
		return Invalidf("aging year %g outside [0,5]", in.AgingYear)
	}
	if in.OpenCircuitVoltageV < 0 || in.InternalResistanceOhm < 0 || in.LoadResistanceOhm < 0 {
		return Invalidf("resistive-divider parameters must be non-negative")
	}
	return nil
}
