// Package config loads the YAML configuration shared by the host
// tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level host tool configuration.
type Config struct {
	Serial SerialConfig `yaml:"serial"`
	Alert  AlertConfig  `yaml:"alert"`
	Sim    SimConfig    `yaml:"sim"`
}

// SerialConfig selects the board's serial port.
type SerialConfig struct {
	Device        string `yaml:"device"`
	Baud          int    `yaml:"baud"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`
}

// AlertConfig tunes the monitor's over-temperature warning.
type AlertConfig struct {
	MaxC uint8 `yaml:"max_c"`
}

// SimConfig shapes the tempsim run: the simulated task cadences mirror
// the board's task table, the converter parameters mirror the sampler
// defaults.
type SimConfig struct {
	TickHz          int    `yaml:"tick_hz"`
	ServicePeriodMs uint32 `yaml:"service_period_ms"` // sampler task cadence
	SamplePeriodMs  uint32 `yaml:"sample_period_ms"`  // one conversion per this many ticks
	ReportPeriodMs  uint32 `yaml:"report_period_ms"`
	Window          int    `yaml:"window"`
	MaxC            uint8  `yaml:"max_c"`
	FullScale       uint32 `yaml:"full_scale"`
	WavePeriodMs    uint32 `yaml:"wave_period_ms"` // synthetic waveform sweep time
}

// Default returns the configuration matching the reference board.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Serial.Device == "" {
		cfg.Serial.Device = "/dev/ttyACM0"
	}
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = 115200
	}
	if cfg.Serial.ReadTimeoutMs == 0 {
		cfg.Serial.ReadTimeoutMs = 500
	}

	if cfg.Alert.MaxC == 0 {
		cfg.Alert.MaxC = 35
	}

	if cfg.Sim.TickHz == 0 {
		cfg.Sim.TickHz = 1000
	}
	if cfg.Sim.ServicePeriodMs == 0 {
		cfg.Sim.ServicePeriodMs = 10
	}
	if cfg.Sim.SamplePeriodMs == 0 {
		cfg.Sim.SamplePeriodMs = 20
	}
	if cfg.Sim.ReportPeriodMs == 0 {
		cfg.Sim.ReportPeriodMs = 500
	}
	if cfg.Sim.Window == 0 {
		cfg.Sim.Window = 5
	}
	if cfg.Sim.MaxC == 0 {
		cfg.Sim.MaxC = 40
	}
	if cfg.Sim.FullScale == 0 {
		cfg.Sim.FullScale = 4096
	}
	if cfg.Sim.WavePeriodMs == 0 {
		cfg.Sim.WavePeriodMs = 2000
	}
}
