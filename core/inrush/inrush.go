// Package inrush estimates the transient current drawn when a load is first
// connected and the resulting terminal voltage, from the battery's internal
// resistance and the load description.
package inrush

import (
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

// FromPower estimates the inrush current as the steady-state current a load
// of maxPowerW draws at the nominal voltage.
func FromPower(maxPowerW, nominalVoltageV float64) (float64, error) {
	if nominalVoltageV == 0 {
		return 0, model.ErrDivisionByZero
	}
	if nominalVoltageV < 0 || maxPowerW < 0 {
		return 0, model.Invalidf("power and voltage must be non-negative")
	}
	return maxPowerW / nominalVoltageV, nil
}

// DividerResult is the outcome of the resistive-divider estimate.
type DividerResult struct {
	CurrentA           float64
	VoltageAcrossLoadV float64
}

// FromResistiveLoad treats the battery and load as a resistive divider at the
// connection instant: I = Voc / (Ri + Rl). A zero total resistance is an
// explicit error, never an infinite current.
func FromResistiveLoad(openCircuitV, internalOhm, loadOhm float64) (DividerResult, error) {
	if internalOhm < 0 || loadOhm < 0 {
		return DividerResult{}, model.Invalidf("resistances must be non-negative")
	}
	total := internalOhm + loadOhm
	if total == 0 {
		return DividerResult{}, model.ErrDivisionByZero
	}
	i := openCircuitV / total
	return DividerResult{CurrentA: i, VoltageAcrossLoadV: i * loadOhm}, nil
}

// TerminalVoltage returns the terminal voltage under the given current,
// clamped to [0, nominalVoltageV]. The clamp models the physical floor and
// ceiling; it deliberately discards how far below zero an over-discharged
// estimate would have gone.
func TerminalVoltage(nominalVoltageV, internalOhm, currentA float64) float64 {
	v := nominalVoltageV - internalOhm*currentA
	if v < 0 {
		return 0
	}
	if v > nominalVoltageV {
		return nominalVoltageV
	}
	return v
}

// TerminalVoltageCurve applies TerminalVoltage across a corrected resistance
// series expressed in milliohms, one point per aging year.
func TerminalVoltageCurve(nominalVoltageV float64, resistanceMilliOhm []float64, currentA float64) []float64 {
	out := make([]float64, len(resistanceMilliOhm))
	for i, r := range resistanceMilliOhm {
		out[i] = TerminalVoltage(nominalVoltageV, r/1000, currentA)
	}
	return out
}
