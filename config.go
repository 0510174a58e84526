package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "worldcup.yaml"

// Config holds the dashboard settings.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host              string `yaml:"host"`
	Port              int    `yaml:"port"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	ShutdownTimeout   string `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig listens on all interfaces, port 8051.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8051,
			ReadHeaderTimeout: "5s",
			ShutdownTimeout:   "10s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig reads a YAML config file on top of the defaults. A missing file
// is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if _, err := time.ParseDuration(c.Server.ReadHeaderTimeout); err != nil {
		return fmt.Errorf("invalid read_header_timeout %q: %w", c.Server.ReadHeaderTimeout, err)
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout %q: %w", c.Server.ShutdownTimeout, err)
	}

	validLevel := false
	for _, l := range validLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, validLogLevels)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}

// Addr is the host:port the server binds to.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GetReadHeaderTimeout returns the header read timeout, 5s if unparsable.
func (s ServerConfig) GetReadHeaderTimeout() time.Duration {
	d, err := time.ParseDuration(s.ReadHeaderTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// GetShutdownTimeout returns the graceful shutdown budget, 10s if unparsable.
func (s ServerConfig) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(s.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
