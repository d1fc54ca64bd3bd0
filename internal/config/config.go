// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads pulsesim run settings from YAML files and environment
// variables.
package config

import (
	"os"
	"strings"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	EnvLogLevel = "PULSESIM_LOG_LEVEL"
	EnvTarget   = "PULSESIM_TARGET"
)

// Config holds the settings of a simulation run.
type Config struct {
	// Presses is the number of presses used for the pulse count.
	Presses int `yaml:"presses"`

	// Bound is the maximum number of presses for period analysis.
	Bound int `yaml:"bound"`

	// Target is the output line expected to receive a low pulse.
	Target string `yaml:"target"`

	// Watch overrides the feeder modules derived from Target.
	Watch []string `yaml:"watch,omitempty"`

	// PulseLimit caps the number of pulses processed by a single press.
	PulseLimit int `yaml:"pulse_limit"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level is one of "error", "warn", "info" (default), "debug" or "trace".
	Level string `yaml:"level"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Presses:    1000,
		Bound:      100000,
		Target:     "rx",
		PulseLimit: pulsesim.DefaultPulseLimit,
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load returns the configuration from defaults, the optional file at path
// and then environment variables. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML configuration file. Settings missing from the
// file keep their default value.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTarget)); v != "" {
		c.Target = v
	}
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	switch {
	case c.Presses < 0:
		return errors.Errorf("presses must not be negative, got %d", c.Presses)
	case c.Bound <= 0:
		return errors.Errorf("bound must be positive, got %d", c.Bound)
	case c.Target == "" && len(c.Watch) == 0:
		return errors.New("either target or watch must be set")
	case c.PulseLimit < 0:
		return errors.Errorf("pulse_limit must not be negative, got %d", c.PulseLimit)
	}
	return nil
}
