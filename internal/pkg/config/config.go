package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	TBA      TBAConfig      `yaml:"tba"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Postgres PostgresConfig `yaml:"postgres"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type TBAConfig struct {
	BaseURL   string        `yaml:"base_url"`
	AuthKey   string        `yaml:"auth_key"` // falls back to the TBA_AUTH_KEY env var
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

type ViewerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	DataFile          string        `yaml:"data_file"`
	FieldFile         string        `yaml:"field_file"`
	EventsFile        string        `yaml:"events_file"`
	AllowedOrigins    []string      `yaml:"allowed_origins"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.TBA.AuthKey == "" {
		config.TBA.AuthKey = os.Getenv("TBA_AUTH_KEY")
	}

	return &config, nil
}
