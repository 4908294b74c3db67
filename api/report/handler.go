// Package report exposes the evaluator over HTTP. Each request is an
// independent evaluation pass; the handlers hold no cross-request state.
package report

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/evaluate"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/logger"
	coremetrics "github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/metrics"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

type errorPayload struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorPayload{Error: msg})
}

// NewReportHandler returns an HTTP handler computing a full evaluation report
// via POST /api/report. Request fields left out of the JSON body inherit the
// configured defaults. The sink records one event per request; hooks run after
// each successful evaluation, before the response is written.
func NewReportHandler(ev *evaluate.Evaluator, defaults model.EvaluationInput, sink coremetrics.Sink, log logger.Logger, hooks ...func(*model.Report)) http.Handler {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		in := defaults
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &in); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
				return
			}
		}

		start := time.Now()
		rep, err := ev.Evaluate(in)
		event := coremetrics.EvaluationEvent{
			Battery:  ev.Spec().Name,
			Outcome:  "ok",
			Duration: time.Since(start),
			Time:     time.Now(),
		}
		if err != nil {
			event.Outcome = "invalid_input"
			if serr := sink.RecordEvaluation(event); serr != nil && log != nil {
				log.Errorf("record evaluation: %v", serr)
			}
			switch {
			case errors.Is(err, model.ErrInvalidDomainInput), errors.Is(err, model.ErrDivisionByZero):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		event.ReportID = rep.ID
		event.TemperatureCount = len(rep.Curves)
		event.PointCount = len(rep.Months)
		event.InrushCurrentA = rep.InrushCurrentA
		event.Warnings = len(rep.Warnings)
		event.FinalCapacityPct = finalAtEstimation(rep)
		if serr := sink.RecordEvaluation(event); serr != nil && log != nil {
			log.Errorf("record evaluation: %v", serr)
		}
		for _, hook := range hooks {
			hook(rep)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rep); err != nil && log != nil {
			log.Errorf("encode report: %v", err)
		}
	})
}

// NewBatteryHandler returns the configured battery spec via GET /api/battery.
func NewBatteryHandler(spec model.BatterySpec) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(spec); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
	})
}

// finalAtEstimation picks the final capacity of the curve nearest the
// estimation temperature, the figure the dashboard headlines.
func finalAtEstimation(rep *model.Report) float64 {
	temps := make([]float64, len(rep.Curves))
	for i, c := range rep.Curves {
		temps[i] = c.TempC
	}
	if i := model.ClosestIndex(temps, rep.Input.EstimationTempC); i >= 0 {
		return rep.Curves[i].FinalPct
	}
	return 0
}
