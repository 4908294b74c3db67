// Package metrics defines the observability boundary of the evaluator.
// Concrete sinks live in infra/metrics.
package metrics

import "time"

// EvaluationEvent is recorded once per evaluation pass.
type EvaluationEvent struct {
	ReportID         string
	Battery          string
	Outcome          string // "ok" or "invalid_input"
	Duration         time.Duration
	TemperatureCount int
	PointCount       int
	FinalCapacityPct float64
	InrushCurrentA   float64
	Warnings         int
	Time             time.Time
}

// Sink records evaluation events for observability purposes.
type Sink interface {
	RecordEvaluation(ev EvaluationEvent) error
}

// NopSink discards all events.
type NopSink struct{}

// RecordEvaluation implements Sink.
func (NopSink) RecordEvaluation(EvaluationEvent) error { return nil }
