package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/metrics"
)

// PromSink records evaluation events in Prometheus metrics.
type PromSink struct {
	evaluations *prometheus.CounterVec
	duration    prometheus.Histogram
	finalCap    prometheus.Gauge
	warnings    prometheus.Counter
}

// NewPromSink registers evaluation metrics on the default Prometheus
// registerer. The Prometheus server is started separately on
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "battery_evaluations_total",
		Help: "Total number of evaluation passes",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "battery_evaluation_duration_seconds",
		Help:    "Wall time of one evaluation pass",
		Buckets: prometheus.DefBuckets,
	})
	finalCap := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "battery_final_capacity_percent",
		Help: "Final remaining capacity of the last evaluation at the estimation temperature",
	})
	warnings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "battery_model_domain_warnings_total",
		Help: "Evaluations whose decay curves left the model's validity region",
	})

	if err := reg.Register(evaluations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			evaluations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(finalCap); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			finalCap = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(warnings); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			warnings = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}

	return &PromSink{evaluations: evaluations, duration: duration, finalCap: finalCap, warnings: warnings}, nil
}

// RecordEvaluation implements the core metrics Sink.
func (s *PromSink) RecordEvaluation(ev coremetrics.EvaluationEvent) error {
	s.evaluations.WithLabelValues(ev.Outcome).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	if ev.Outcome == "ok" {
		s.finalCap.Set(ev.FinalCapacityPct)
	}
	if ev.Warnings > 0 {
		s.warnings.Inc()
	}
	return nil
}
