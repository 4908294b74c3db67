// Package scenarios runs YAML-described evaluation scenarios against the
// evaluator, checking the headline figures within a tolerance.
package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

// InputDef overrides evaluation input fields. Absent fields keep the default
// input values.
type InputDef struct {
	InitialCapacityPct *float64 `yaml:"initial_capacity_pct"`
	StorageMonths      *float64 `yaml:"storage_months"`
	StorageDays        *float64 `yaml:"storage_days"`
	StorageHours       *float64 `yaml:"storage_hours"`
	SweepMinC          *float64 `yaml:"sweep_min_c"`
	SweepMaxC          *float64 `yaml:"sweep_max_c"`
	SweepStepC         *float64 `yaml:"sweep_step_c"`
	HighlightLowC      *float64 `yaml:"highlight_low_c"`
	HighlightHighC     *float64 `yaml:"highlight_high_c"`
	EstimationTempC    *float64 `yaml:"estimation_temp_c"`
	NominalVoltageV    *float64 `yaml:"nominal_voltage_v"`
	MaxLoadPowerKW     *float64 `yaml:"max_load_power_kw"`
	OpenCircuitV       *float64 `yaml:"open_circuit_voltage_v"`
	InternalOhm        *float64 `yaml:"internal_resistance_ohm"`
	LoadOhm            *float64 `yaml:"load_resistance_ohm"`
	AgingYear          *float64 `yaml:"aging_year"`
	TargetTempC        *float64 `yaml:"target_temp_c"`
}

func set(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// ToModel applies the overrides on top of the default input.
func (d InputDef) ToModel() model.EvaluationInput {
	in := model.DefaultInput()
	set(&in.InitialCapacityPct, d.InitialCapacityPct)
	set(&in.StorageMonths, d.StorageMonths)
	set(&in.StorageDays, d.StorageDays)
	set(&in.StorageHours, d.StorageHours)
	set(&in.Sweep.MinC, d.SweepMinC)
	set(&in.Sweep.MaxC, d.SweepMaxC)
	set(&in.Sweep.StepC, d.SweepStepC)
	set(&in.HighlightLowC, d.HighlightLowC)
	set(&in.HighlightHighC, d.HighlightHighC)
	set(&in.EstimationTempC, d.EstimationTempC)
	set(&in.NominalVoltageV, d.NominalVoltageV)
	set(&in.MaxLoadPowerKW, d.MaxLoadPowerKW)
	set(&in.OpenCircuitVoltageV, d.OpenCircuitV)
	set(&in.InternalResistanceOhm, d.InternalOhm)
	set(&in.LoadResistanceOhm, d.LoadOhm)
	set(&in.AgingYear, d.AgingYear)
	set(&in.TargetTempC, d.TargetTempC)
	return in
}

// Expected lists the figures a scenario checks. Absent fields are skipped.
type Expected struct {
	FinalCapacityPct   *float64 `yaml:"final_capacity_pct"`
	SelfDischargeRate  *float64 `yaml:"self_discharge_rate_pct_month"`
	SelfDischargeMA    *float64 `yaml:"self_discharge_ma"`
	InrushCurrentA     *float64 `yaml:"inrush_current_a"`
	DividerCurrentA    *float64 `yaml:"divider_current_a"`
	DividerLoadV       *float64 `yaml:"divider_load_v"`
	ResistanceAtYear   *float64 `yaml:"resistance_at_year_mohm"`
	TerminalVoltageMin *float64 `yaml:"terminal_voltage_min_v"`
	Warnings           *int     `yaml:"warnings"`
}

// Scenario couples an input with its expected figures.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Input       InputDef `yaml:"input"`
	Tolerance   float64  `yaml:"tolerance"`
	Expected    Expected `yaml:"expected"`
}

// Load reads one scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Tolerance == 0 {
		sc.Tolerance = 0.01
	}
	return &sc, nil
}
