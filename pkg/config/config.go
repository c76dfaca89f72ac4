// Package config provides configuration loading and management for
// meteointerp. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"meteointerp/pkg/interpolation"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Interpolation parameters
	Interpolation struct {
		// InitialRadius is the starting truncation radius in the planar
		// coordinate units of the station data
		InitialRadius float64 `yaml:"initialRadius" validate:"gt=0"`

		// Shape is the Gaussian shape parameter alpha
		Shape float64 `yaml:"shape" validate:"gt=0"`

		// TargetStationCount is the average number of stations that
		// should carry non-zero weight around a target point
		TargetStationCount int `yaml:"targetStationCount" validate:"gte=1"`

		// RadiusIterations is the fixed number of radius calibration steps
		RadiusIterations int `yaml:"radiusIterations" validate:"gte=1"`
	} `yaml:"interpolation"`

	// Output parameters
	Output struct {
		// Verbose controls the level of diagnostic output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Defaults from the reference literature
	cfg.Interpolation.InitialRadius = 140000
	cfg.Interpolation.Shape = 3.0
	cfg.Interpolation.TargetStationCount = 30
	cfg.Interpolation.RadiusIterations = 3

	cfg.Output.Verbose = false

	return cfg
}

// Validate checks the configuration against its struct-tag constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Params converts the configuration into the parameter value consumed by
// the interpolation package
func (c *Config) Params() interpolation.Params {
	return interpolation.Params{
		InitialRadius:      c.Interpolation.InitialRadius,
		Shape:              c.Interpolation.Shape,
		TargetStationCount: c.Interpolation.TargetStationCount,
		RadiusIterations:   c.Interpolation.RadiusIterations,
		Verbose:            c.Output.Verbose,
	}
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
