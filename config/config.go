// Package config loads the service configuration from a YAML or JSON file
// with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	coremetrics "github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/metrics"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/mqtt"
)

// HTTPConfig defines the API server settings.
type HTTPConfig struct {
	Address string `json:"address"`
}

// SetDefaults applies sane defaults.
func (c *HTTPConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}

// Config is the root configuration of the service.
type Config struct {
	Battery  model.BatterySpec     `json:"battery"`
	Defaults model.EvaluationInput `json:"defaults"`
	HTTP     HTTPConfig            `json:"http"`
	Metrics  coremetrics.Config    `json:"metrics"`
	MQTT     mqtt.Config           `json:"mqtt"`
}

// Load reads the configuration file at path, applies K_-prefixed environment
// overrides, fills defaults and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills every zero-valued section with its defaults. A battery
// section left empty falls back to the YUASA NPW45-12 constants.
func (c *Config) SetDefaults() {
	if c.Battery.Name == "" && c.Battery.NominalCapacityAh == 0 {
		c.Battery = model.DefaultBatterySpec()
	}
	if c.Defaults == (model.EvaluationInput{}) {
		c.Defaults = model.DefaultInput()
	}
	c.HTTP.SetDefaults()
	c.Metrics.SetDefaults()
	c.MQTT.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Battery.Validate(); err != nil {
		return fmt.Errorf("battery: %w", err)
	}
	if err := c.Defaults.Validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if err := c.MQTT.Validate(); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	return nil
}
