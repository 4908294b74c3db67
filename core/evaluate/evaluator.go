// Package evaluate assembles one full report from the individual models.
// It is the explicit recomputation entry point the presentation layer calls
// whenever an input parameter changes.
package evaluate

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/aging"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/inrush"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/logger"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/retention"
)

// MonthsResolution is the sampling step of the storage time axis.
const MonthsResolution = 0.1

// Evaluator runs every model over one immutable input record. It holds no
// state besides the battery spec; concurrent Evaluate calls are independent.
type Evaluator struct {
	spec model.BatterySpec
	log  logger.Logger
}

// New validates the battery spec and returns an Evaluator.
func New(spec model.BatterySpec, log logger.Logger) (*Evaluator, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("battery spec: %w", err)
	}
	return &Evaluator{spec: spec, log: log}, nil
}

// Spec returns the battery spec the evaluator was built with.
func (e *Evaluator) Spec() model.BatterySpec { return e.spec }

// Evaluate computes the full report for one input record.
func (e *Evaluator) Evaluate(in model.EvaluationInput) (*model.Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	months, err := model.MonthsAxis(in.StorageMonths, in.StorageDays, in.StorageHours, MonthsResolution)
	if err != nil {
		return nil, err
	}

	rep := &model.Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Battery:     e.spec,
		Input:       in,
		Months:      months,
	}

	temps := in.Sweep.Values()
	rep.Curves = make([]model.CapacityCurve, len(temps))
	for i, t := range temps {
		vals, outside := retention.Curve(in.InitialCapacityPct, t, months,
			e.spec.BaseSelfDischargeRate, e.spec.ReferenceTempC)
		rep.Curves[i] = model.CapacityCurve{
			TempC:              t,
			Values:             vals,
			FinalPct:           retention.Final(vals),
			OutsideModelDomain: outside,
		}
		if outside {
			rep.Warnings = append(rep.Warnings,
				fmt.Sprintf("decay rate at %g degC reaches 1 per month; curve is outside the model's validity region", t))
		}
	}

	rep.Band = band(rep.Curves, temps, in.HighlightLowC, in.HighlightHighC)

	rate, current := retention.SelfDischarge(in.EstimationTempC,
		e.spec.BaseSelfDischargeRate, e.spec.ReferenceTempC, e.spec.NominalCapacityAh)
	rep.SelfDischarge = model.SelfDischargeEstimate{
		TempC:               in.EstimationTempC,
		RatePercentPerMonth: rate,
		CurrentMilliamps:    current,
	}

	inrushA, err := inrush.FromPower(in.MaxLoadPowerKW*1000, in.NominalVoltageV)
	if err != nil {
		return nil, err
	}
	rep.InrushCurrentA = inrushA

	if in.OpenCircuitVoltageV > 0 {
		div, err := inrush.FromResistiveLoad(in.OpenCircuitVoltageV,
			in.InternalResistanceOhm, in.LoadResistanceOhm)
		if err != nil {
			return nil, err
		}
		rep.Divider = &model.DividerEstimate{
			CurrentA:           div.CurrentA,
			VoltageAcrossLoadV: div.VoltageAcrossLoadV,
		}
	}

	corrected, err := aging.CorrectSeries(e.spec.ResistanceMilliOhm,
		e.spec.ReferenceTempC, in.TargetTempC,
		e.spec.ActivationEnergyJPerMol, e.spec.GasConstant)
	if err != nil {
		return nil, err
	}
	rep.AgingYears = append([]float64(nil), e.spec.ResistanceYears...)
	rep.ResistanceMilliOhm = corrected
	rep.TerminalVoltageV = inrush.TerminalVoltageCurve(in.NominalVoltageV, corrected, inrushA)

	table, err := aging.NewTable(e.spec.ResistanceYears, corrected)
	if err != nil {
		return nil, err
	}
	rep.ResistanceAtYearMilliOhm = table.At(in.AgingYear)

	if e.log != nil {
		e.log.Debugw("evaluation complete", map[string]any{
			"report_id":    rep.ID,
			"temperatures": len(temps),
			"points":       len(months),
			"warnings":     len(rep.Warnings),
		})
	}
	return rep, nil
}

// band snaps the two highlight temperatures onto their nearest sweep buckets
// and returns the region between the resulting curves. No band is produced
// when both snap to the same bucket.
func band(curves []model.CapacityCurve, temps []float64, lowC, highC float64) *model.Band {
	li := model.ClosestIndex(temps, lowC)
	hi := model.ClosestIndex(temps, highC)
	if li < 0 || hi < 0 || li == hi {
		return nil
	}
	pair := []int{li, hi}
	sort.Ints(pair)
	return &model.Band{
		LowerTempC: curves[pair[1]].TempC,
		UpperTempC: curves[pair[0]].TempC,
		Lower:      curves[pair[1]].Values,
		Upper:      curves[pair[0]].Values,
	}
}
