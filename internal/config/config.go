// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fargate-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings.
// Prices are decimal strings to avoid float drift in configuration files.
type PricingConfig struct {
	// PerVCPUHour is the price per vCPU per hour
	PerVCPUHour string `json:"per_vcpu_hour"`

	// PerGBHour is the price per GB of memory per hour
	PerGBHour string `json:"per_gb_hour"`

	// Currency is the price currency code
	Currency string `json:"currency"`

	// Region documents which region the prices were taken from
	Region string `json:"region"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the full provisioning breakdown
	ShowDetails bool `json:"show_details"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// MetricsPath is the Prometheus metrics endpoint path
	MetricsPath string `json:"metrics_path"`
}

// Default returns a default configuration.
// Default prices follow Fargate Linux/x86 pricing for ap-southeast-1.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			PerVCPUHour: "0.05056",
			PerGBHour:   "0.00553",
			Currency:    "USD",
			Region:      "ap-southeast-1",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Server: ServerConfig{
			Addr:        ":8080",
			MetricsPath: "/metrics",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
