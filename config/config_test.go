package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `battery:
  name: "YUASA NPW45-12"
  nominal_capacity_ah: 7.5
  nominal_voltage_v: 12
  base_self_discharge_rate: 0.0342
  reference_temp_c: 25
  activation_energy_j_per_mol: 5000
  gas_constant: 8.314
  resistance_years: [0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10]
  resistance_milliohm: [13.83, 14.52, 15.21, 17.29, 20.75, 24.2, 27.66, 34.58, 41.49, 51.86, 62.24]
defaults:
  initial_capacity_pct: 90
  storage_months: 6
  sweep:
    min_c: -10
    max_c: 40
    step_c: 5
  highlight_low_c: -5
  highlight_high_c: 35
  estimation_temp_c: 20
  nominal_voltage_v: 240
  max_load_power_kw: 10
  aging_year: 3
  target_temp_c: 15
http:
  address: ":8081"
metrics:
  prometheus_enabled: true
  prometheus_port: ":9091"
mqtt:
  enabled: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"battery.name", cfg.Battery.Name, "YUASA NPW45-12"},
		{"battery.capacity", cfg.Battery.NominalCapacityAh, 7.5},
		{"battery.table", len(cfg.Battery.ResistanceMilliOhm), 11},
		{"defaults.initial", cfg.Defaults.InitialCapacityPct, 90.0},
		{"defaults.months", cfg.Defaults.StorageMonths, 6.0},
		{"defaults.sweep.min", cfg.Defaults.Sweep.MinC, -10.0},
		{"defaults.aging_year", cfg.Defaults.AgingYear, 3.0},
		{"http.address", cfg.HTTP.Address, ":8081"},
		{"metrics.prom", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.port", cfg.Metrics.PrometheusPort, ":9091"},
		{"mqtt.enabled", cfg.MQTT.Enabled, false},
		{"mqtt.topic_default", cfg.MQTT.Topic, "battery/aging/report"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  address: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Battery.Name != "YUASA NPW45-12" {
		t.Errorf("battery default not applied: %q", cfg.Battery.Name)
	}
	if cfg.Defaults.InitialCapacityPct != 95 {
		t.Errorf("input defaults not applied: %v", cfg.Defaults.InitialCapacityPct)
	}
	if cfg.HTTP.Address != ":8080" {
		t.Errorf("http default not applied: %q", cfg.HTTP.Address)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `battery:
  name: "broken"
  nominal_capacity_ah: -1
  nominal_voltage_v: 12
  base_self_discharge_rate: 0.03
  gas_constant: 8.314
  resistance_years: [0, 1]
  resistance_milliohm: [1, 2]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("invalid battery spec accepted")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
