package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Display models.
const (
	ModelAuto = "auto"
	ModelPHAT = "phat"
	ModelWHAT = "what"
)

// Config holds all application configuration.
type Config struct {
	DataSource DataSourceConfig `yaml:"data_source"`
	Session    SessionConfig    `yaml:"session"`
	Display    DisplayConfig    `yaml:"display"`
	Indicator  IndicatorConfig  `yaml:"indicator"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Proxy      string           `yaml:"proxy" env:"HTTPS_PROXY"`
}

type DataSourceConfig struct {
	Provider string        `yaml:"provider" env:"DATA_PROVIDER"` // yahoo or mock
	BaseURL  string        `yaml:"base_url" env:"YAHOO_BASE_URL"`
	Symbols  []string      `yaml:"symbols" env:"SYMBOLS" envSeparator:","`
	Lookback time.Duration `yaml:"lookback" env:"LOOKBACK"`
	Interval string        `yaml:"interval" env:"INTERVAL"`
	Timeout  time.Duration `yaml:"timeout" env:"FETCH_TIMEOUT"`
}

// SessionConfig carries the session-selection thresholds.
type SessionConfig struct {
	ShortSessionSamples int `yaml:"short_session_samples" env:"SHORT_SESSION_SAMPLES"`
	ContextSamples      int `yaml:"context_samples" env:"CONTEXT_SAMPLES"`
}

type DisplayConfig struct {
	Model      string `yaml:"model" env:"DISPLAY_MODEL"`
	ThreeColor bool   `yaml:"three_color" env:"THREE_COLOR"`
	FontPath   string `yaml:"font_path" env:"FONT_PATH"`
	OutputPath string `yaml:"output_path" env:"OUTPUT_PATH"`
	SPIPort    string `yaml:"spi_port"`
	DCPin      string `yaml:"dc_pin"`
	ResetPin   string `yaml:"reset_pin"`
	BusyPin    string `yaml:"busy_pin"`
}

// IndicatorConfig names the GPIO pins of the up/down LEDs. Empty pins
// disable the indicator.
type IndicatorConfig struct {
	UpPin   string `yaml:"up_pin" env:"INDICATOR_UP_PIN"`
	DownPin string `yaml:"down_pin" env:"INDICATOR_DOWN_PIN"`
}

type DatabaseConfig struct {
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides, then defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = "yahoo"
	}
	if c.DataSource.BaseURL == "" {
		c.DataSource.BaseURL = "https://query1.finance.yahoo.com"
	}
	if len(c.DataSource.Symbols) == 0 {
		c.DataSource.Symbols = []string{"^GSPC", "^FTSE", "BTC-USD"}
	}
	if c.DataSource.Lookback == 0 {
		c.DataSource.Lookback = 4 * 24 * time.Hour
	}
	if c.DataSource.Interval == "" {
		c.DataSource.Interval = "15m"
	}
	if c.DataSource.Timeout == 0 {
		c.DataSource.Timeout = 30 * time.Second
	}
	if c.Session.ShortSessionSamples == 0 {
		c.Session.ShortSessionSamples = 8
	}
	if c.Session.ContextSamples == 0 {
		c.Session.ContextSamples = 16
	}
	if c.Display.Model == "" {
		c.Display.Model = ModelAuto
	}
	c.Display.Model = strings.ToLower(c.Display.Model)
	if c.Display.SPIPort == "" {
		c.Display.SPIPort = "SPI0.0"
	}
	if c.Display.DCPin == "" {
		c.Display.DCPin = "22"
	}
	if c.Display.ResetPin == "" {
		c.Display.ResetPin = "27"
	}
	if c.Display.BusyPin == "" {
		c.Display.BusyPin = "17"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	default:
		return fmt.Errorf("data_source.provider must be yahoo or mock, got %q", c.DataSource.Provider)
	}
	switch c.Display.Model {
	case ModelAuto, ModelPHAT, ModelWHAT:
	default:
		return fmt.Errorf("display.model must be auto, phat or what, got %q", c.Display.Model)
	}
	if c.DataSource.Lookback <= 0 {
		return fmt.Errorf("data_source.lookback must be positive")
	}
	if c.Session.ShortSessionSamples <= 0 {
		return fmt.Errorf("session.short_session_samples must be positive")
	}
	if c.Session.ContextSamples <= 0 {
		return fmt.Errorf("session.context_samples must be positive")
	}
	return nil
}
