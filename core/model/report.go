package model

import "time"

// CapacityCurve is one retention curve of the temperature sweep. Values are
// indexed against the report's shared months axis.
type CapacityCurve struct {
	TempC    float64   `json:"temp_c"`
	Values   []float64 `json:"values"`
	FinalPct float64   `json:"final_pct"`

	// OutsideModelDomain is set when the decay rate at this temperature
	// reaches or exceeds 1 per month, where the decay law stops being
	// physically meaningful. Values are still computed as specified.
	OutsideModelDomain bool `json:"outside_model_domain,omitempty"`
}

// Band is the shaded region between two selected temperature curves across
// the shared months axis.
type Band struct {
	LowerTempC float64   `json:"lower_temp_c"`
	UpperTempC float64   `json:"upper_temp_c"`
	Lower      []float64 `json:"lower"`
	Upper      []float64 `json:"upper"`
}

// SelfDischargeEstimate reports the self-discharge figures at one temperature.
type SelfDischargeEstimate struct {
	TempC               float64 `json:"temp_c"`
	RatePercentPerMonth float64 `json:"rate_percent_per_month"`
	CurrentMilliamps    float64 `json:"current_milliamps"`
}

// DividerEstimate is the resistive-divider inrush result.
type DividerEstimate struct {
	CurrentA           float64 `json:"current_a"`
	VoltageAcrossLoadV float64 `json:"voltage_across_load_v"`
}

// Report is the complete output of one evaluation pass: every series the
// presentation layer plots plus the formatted scalar summaries. It is
// assembled once and never mutated.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Battery BatterySpec     `json:"battery"`
	Input   EvaluationInput `json:"input"`

	// Capacity retention over storage time, one curve per sweep temperature.
	Months []float64       `json:"months"`
	Curves []CapacityCurve `json:"curves"`
	Band   *Band           `json:"band,omitempty"`

	SelfDischarge SelfDischargeEstimate `json:"self_discharge"`

	// InrushCurrentA is the power-based estimate at the nominal voltage.
	InrushCurrentA float64          `json:"inrush_current_a"`
	Divider        *DividerEstimate `json:"divider,omitempty"`

	// Aging series at the corrected target temperature.
	AgingYears         []float64 `json:"aging_years"`
	ResistanceMilliOhm []float64 `json:"resistance_milliohm"`
	TerminalVoltageV   []float64 `json:"terminal_voltage_v"`

	// ResistanceAtYearMilliOhm is the table interpolated at the selected
	// aging year.
	ResistanceAtYearMilliOhm float64 `json:"resistance_at_year_milliohm"`

	Warnings []string `json:"warnings,omitempty"`
}
