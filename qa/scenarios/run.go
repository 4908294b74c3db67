package scenarios

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/evaluate"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/logger"
)

func check(t *testing.T, name string, want *float64, got, tol float64) {
	t.Helper()
	if want == nil {
		return
	}
	assert.InDeltaf(t, *want, got, tol, "%s: want %v got %v", name, *want, got)
}

// Run evaluates the scenario input against the stock battery and checks every
// expected figure the file lists.
func Run(t *testing.T, sc *Scenario) {
	t.Helper()

	ev, err := evaluate.New(model.DefaultBatterySpec(), logger.NopLogger{})
	require.NoError(t, err)

	rep, err := ev.Evaluate(sc.Input.ToModel())
	require.NoError(t, err, "scenario %s", sc.Name)

	tol := sc.Tolerance
	exp := sc.Expected

	if exp.FinalCapacityPct != nil {
		idx := model.ClosestIndex(curveTemps(rep), rep.SelfDischarge.TempC)
		check(t, "final_capacity_pct", exp.FinalCapacityPct, rep.Curves[idx].FinalPct, tol)
	}
	check(t, "self_discharge_rate_pct_month", exp.SelfDischargeRate, rep.SelfDischarge.RatePercentPerMonth, tol)
	check(t, "self_discharge_ma", exp.SelfDischargeMA, rep.SelfDischarge.CurrentMilliamps, tol)
	check(t, "inrush_current_a", exp.InrushCurrentA, rep.InrushCurrentA, tol)
	if exp.DividerCurrentA != nil || exp.DividerLoadV != nil {
		require.NotNil(t, rep.Divider, "scenario %s expects a divider estimate", sc.Name)
		check(t, "divider_current_a", exp.DividerCurrentA, rep.Divider.CurrentA, tol)
		check(t, "divider_load_v", exp.DividerLoadV, rep.Divider.VoltageAcrossLoadV, tol)
	}
	check(t, "resistance_at_year_mohm", exp.ResistanceAtYear, rep.ResistanceAtYearMilliOhm, tol)
	if exp.TerminalVoltageMin != nil {
		min := math.Inf(1)
		for _, v := range rep.TerminalVoltageV {
			min = math.Min(min, v)
		}
		check(t, "terminal_voltage_min_v", exp.TerminalVoltageMin, min, tol)
	}
	if exp.Warnings != nil {
		assert.Len(t, rep.Warnings, *exp.Warnings, "scenario %s warnings", sc.Name)
	}
}

func curveTemps(rep *model.Report) []float64 {
	temps := make([]float64, len(rep.Curves))
	for i, c := range rep.Curves {
		temps[i] = c.TempC
	}
	return temps
}
