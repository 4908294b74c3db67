package metrics

import (
	"errors"

	coremetrics "github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/metrics"
)

// MultiSink fans an event out to several sinks and joins their errors.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink from the given sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordEvaluation forwards the event to every sink.
func (m *MultiSink) RecordEvaluation(ev coremetrics.EvaluationEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordEvaluation(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
