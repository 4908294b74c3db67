// Package mqtt publishes evaluation summaries to an MQTT broker, for
// deployments where the calculator feeds a battery-monitoring dashboard
// instead of being queried over HTTP.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retain   bool   `json:"retain"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "battery-aging"
	}
	if c.Topic == "" {
		c.Topic = "battery/aging/report"
	}
}

// Validate checks mandatory fields when the publisher is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("mqtt broker is required when the publisher is enabled")
	}
	return nil
}

// Publisher sends evaluation summaries to interested consumers.
type Publisher interface {
	PublishReport(rep *model.Report) error
	Close()
}

// summary is the wire payload: the scalar figures without the full series.
type summary struct {
	ReportID                 string    `json:"report_id"`
	GeneratedAt              time.Time `json:"generated_at"`
	Battery                  string    `json:"battery"`
	FinalCapacityPct         float64   `json:"final_capacity_pct"`
	SelfDischargeMilliamps   float64   `json:"self_discharge_milliamps"`
	InrushCurrentA           float64   `json:"inrush_current_a"`
	ResistanceAtYearMilliOhm float64   `json:"resistance_at_year_milliohm"`
	Warnings                 int       `json:"warnings"`
}

type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// newMQTTClient can be overridden in tests.
var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// PahoPublisher implements Publisher using Eclipse Paho.
type PahoPublisher struct {
	cli    pahoClient
	topic  string
	qos    byte
	retain bool
	log    logger.Logger
}

// NewPahoPublisher connects to the broker described by cfg.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.New("mqtt-publisher")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{cli: c, topic: cfg.Topic, qos: cfg.QoS, retain: cfg.Retain, log: log}, nil
}

// PublishReport serializes the report summary and publishes it.
func (p *PahoPublisher) PublishReport(rep *model.Report) error {
	finalPct := 0.0
	temps := make([]float64, len(rep.Curves))
	for i, c := range rep.Curves {
		temps[i] = c.TempC
	}
	if i := model.ClosestIndex(temps, rep.Input.EstimationTempC); i >= 0 {
		finalPct = rep.Curves[i].FinalPct
	}
	payload, err := json.Marshal(summary{
		ReportID:                 rep.ID,
		GeneratedAt:              rep.GeneratedAt,
		Battery:                  rep.Battery.Name,
		FinalCapacityPct:         finalPct,
		SelfDischargeMilliamps:   rep.SelfDischarge.CurrentMilliamps,
		InrushCurrentA:           rep.InrushCurrentA,
		ResistanceAtYearMilliOhm: rep.ResistanceAtYearMilliOhm,
		Warnings:                 len(rep.Warnings),
	})
	if err != nil {
		return err
	}
	token := p.cli.Publish(p.topic, p.qos, p.retain, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish report: %w", token.Error())
	}
	return nil
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() { p.cli.Disconnect(250) }
