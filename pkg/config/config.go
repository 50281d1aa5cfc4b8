package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	LogLevel    string     `yaml:"log_level"`
	LogFormat   string     `yaml:"log_format"`
	CaptureFile string     `yaml:"capture_file"`
	Extensions  []string   `yaml:"extensions"`
	MQTT        MQTTConfig `yaml:"mqtt"`
}

// MQTTConfig configures the MQTT bridge.
type MQTTConfig struct {
	Broker         string        `yaml:"broker"`
	ClientID       string        `yaml:"client_id"`
	Username       string        `yaml:"username"`
	Password       string        `yaml:"password"`
	QoS            int           `yaml:"qos"`
	TopicRoot      string        `yaml:"topic_root"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	MaxReconnect   time.Duration `yaml:"max_reconnect_interval"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		MQTT: MQTTConfig{
			Broker:         "tcp://localhost:1883",
			ClientID:       "zwave-go",
			QoS:            1,
			TopicRoot:      "zwave",
			ConnectTimeout: 10 * time.Second,
			MaxReconnect:   2 * time.Minute,
		},
	}
}

// Load reads a configuration file over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	dir := filepath.Dir(path)
	for i, ext := range cfg.Extensions {
		if !filepath.IsAbs(ext) {
			cfg.Extensions[i] = filepath.Join(dir, ext)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ZWAVE_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ZWAVE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ZWAVE_CAPTURE_FILE"); v != "" {
		c.CaptureFile = v
	}
	if v := os.Getenv("ZWAVE_MQTT_BROKER"); v != "" {
		c.MQTT.Broker = v
	}
	if v := os.Getenv("ZWAVE_MQTT_USERNAME"); v != "" {
		c.MQTT.Username = v
	}
	if v := os.Getenv("ZWAVE_MQTT_PASSWORD"); v != "" {
		c.MQTT.Password = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if _, ok := parseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Sprintf("log_level %q must be debug, info, warn or error", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("log_format %q must be text or json", c.LogFormat))
	}
	for _, ext := range c.Extensions {
		if ext == "" {
			errs = append(errs, "extensions must not contain empty paths")
			break
		}
	}

	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if c.MQTT.TopicRoot == "" || strings.ContainsAny(c.MQTT.TopicRoot, "+#") {
		errs = append(errs, "mqtt.topic_root must be set and contain no wildcards")
	}
	if c.MQTT.ConnectTimeout <= 0 {
		errs = append(errs, "mqtt.connect_timeout must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

// Level returns the slog level for LogLevel. Unknown values map to Info.
func (c *Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

// NewLogger creates a slog.Logger writing to w in the configured format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
