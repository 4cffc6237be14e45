// Package config loads application configuration from YAML with environment
// variable expansion, falling back to environment variables when no config
// file is present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Storage       StorageConfig       `yaml:"storage"`
	Detection     DetectionConfig     `yaml:"detection"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// DetectionConfig tunes the recurring pattern engine.
type DetectionConfig struct {
	MinOccurrences int `yaml:"min_occurrences"`
	LookbackDays   int `yaml:"lookback_days"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses a YAML config file. Values like ${VAR} are expanded
// from the environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv builds a config purely from FINSIGHT_* environment variables.
func LoadFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvInt("FINSIGHT_PORT", 8080),
			AllowedOrigins: splitEnv("FINSIGHT_ALLOWED_ORIGINS"),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("FINSIGHT_DB_PATH", "finsight.db"),
		},
		Detection: DetectionConfig{
			MinOccurrences: getEnvInt("FINSIGHT_MIN_OCCURRENCES", 2),
			LookbackDays:   getEnvInt("FINSIGHT_LOOKBACK_DAYS", 365),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("FINSIGHT_LOG_LEVEL", "info"),
				Format: getEnv("FINSIGHT_LOG_FORMAT", "text"),
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadOrEnv loads config.yaml from the working directory when it exists,
// otherwise falls back to environment variables.
func LoadOrEnv() (*Config, error) {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath is LoadOrEnv with an explicit file path.
func LoadOrEnvWithPath(path string) (*Config, error) {
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return LoadFromEnv(), nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = "finsight.db"
	}
	if c.Detection.MinOccurrences < 2 {
		c.Detection.MinOccurrences = 2
	}
	if c.Detection.LookbackDays <= 0 {
		c.Detection.LookbackDays = 365
	}
	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = "info"
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = "text"
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
