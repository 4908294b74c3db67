// Package app wires the evaluator, metric sinks and the HTTP API together.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/api/report"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/config"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/evaluate"
	coremetrics "github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/metrics"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/logger"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/metrics"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/mqtt"
)

// Service hosts the evaluation API.
type Service struct {
	Evaluator *evaluate.Evaluator

	cfg       *config.Config
	sink      coremetrics.Sink
	publisher mqtt.Publisher
	log       logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	ev, err := evaluate.New(cfg.Battery, logg)
	if err != nil {
		return nil, fmt.Errorf("evaluator: %w", err)
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	svc := &Service{Evaluator: ev, cfg: cfg, sink: sink, log: logg}
	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		svc.publisher = pub
	}
	return svc, nil
}

// Sink exposes the configured metrics sink.
func (s *Service) Sink() coremetrics.Sink { return s.sink }

// Publisher exposes the optional MQTT publisher, nil when disabled.
func (s *Service) Publisher() mqtt.Publisher { return s.publisher }

// Handler assembles the API routes.
func (s *Service) Handler() http.Handler {
	var hooks []func(*model.Report)
	if s.publisher != nil {
		hooks = append(hooks, func(rep *model.Report) {
			if err := s.publisher.PublishReport(rep); err != nil {
				s.log.Errorf("publish report %s: %v", rep.ID, err)
			}
		})
	}
	mux := http.NewServeMux()
	mux.Handle("/api/report", report.NewReportHandler(s.Evaluator, s.cfg.Defaults, s.sink, s.log, hooks...))
	mux.Handle("/api/battery", report.NewBatteryHandler(s.cfg.Battery))
	return mux
}

// Run serves the API until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.cfg.HTTP.Address, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("serving battery aging API on %s", s.cfg.HTTP.Address)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Close()
	}
	return nil
}
