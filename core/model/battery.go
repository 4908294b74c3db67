package model

// BatterySpec describes the battery under evaluation together with the
// empirical constants of its aging models. All models treat the spec as an
// immutable input; nothing mutates it after construction.
type BatterySpec struct {
	Name              string  `json:"name"`
	NominalCapacityAh float64 `json:"nominal_capacity_ah"`
	NominalVoltageV   float64 `json:"nominal_voltage_v"`

	// BaseSelfDischargeRate is the fractional capacity loss per month at
	// ReferenceTempC. The rate doubles for every 10 degC above the reference.
	BaseSelfDischargeRate float64 `json:"base_self_discharge_rate"`
	ReferenceTempC        float64 `json:"reference_temp_c"`

	// ActivationEnergyJPerMol and GasConstant parameterize the Arrhenius
	// temperature correction of internal resistance. They must be expressed
	// in matching units.
	ActivationEnergyJPerMol float64 `json:"activation_energy_j_per_mol"`
	GasConstant             float64 `json:"gas_constant"`

	// ResistanceYears and ResistanceMilliOhm form the base internal
	// resistance table at ReferenceTempC, one entry per aging year.
	ResistanceYears    []float64 `json:"resistance_years"`
	ResistanceMilliOhm []float64 `json:"resistance_milliohm"`
}

// DefaultBatterySpec returns the YUASA NPW45-12 constants the models were
// fitted against.
func DefaultBatterySpec() BatterySpec {
	years := make([]float64, 11)
	for i := range years {
		years[i] = float64(i)
	}
	base := []float64{1.0, 1.05, 1.1, 1.25, 1.5, 1.75, 2.0, 2.5, 3.0, 3.75, 4.5}
	milliohm := make([]float64, len(base))
	for i, r := range base {
		milliohm[i] = r * 13.83
	}
	return BatterySpec{
		Name:                    "YUASA NPW45-12",
		NominalCapacityAh:       7.5,
		NominalVoltageV:         12,
		BaseSelfDischargeRate:   0.0342,
		ReferenceTempC:          25,
		ActivationEnergyJPerMol: 5000,
		GasConstant:             8.314,
		ResistanceYears:         years,
		ResistanceMilliOhm:      milliohm,
	}
}

// Validate checks that the spec is usable by all models.
func (s BatterySpec) Validate() error {
	if s.NominalCapacityAh <= 0 {
		return Invalidf("nominal capacity must be positive, got %g Ah", s.NominalCapacityAh)
	}
	if s.NominalVoltageV <= 0 {
		return Invalidf("nominal voltage must be positive, got %g V", s.NominalVoltageV)
	}
	if s.BaseSelfDischargeRate <= 0 {
		return Invalidf("base self-discharge rate must be positive, got %g", s.BaseSelfDischargeRate)
	}
	if s.GasConstant <= 0 {
		return Invalidf("gas constant must be positive, got %g", s.GasConstant)
	}
	if len(s.ResistanceYears) != len(s.ResistanceMilliOhm) {
		return Invalidf("resistance table length mismatch: %d years, %d values",
			len(s.ResistanceYears), len(s.ResistanceMilliOhm))
	}
	if len(s.ResistanceYears) < 2 {
		return Invalidf("resistance table needs at least two entries, got %d", len(s.ResistanceYears))
	}
	for i := 1; i < len(s.ResistanceYears); i++ {
		if s.ResistanceYears[i] <= s.ResistanceYears[i-1] {
			return Invalidf("resistance table years must be strictly increasing")
		}
	}
	return nil
}
