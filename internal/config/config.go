package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port      int    `yaml:"port"`
	DataPath  string `yaml:"data_path"`
	Delimiter string `yaml:"delimiter"`
	Title     string `yaml:"title"`
	LogLevel  string `yaml:"log_level"`
	Debug     bool   `yaml:"debug"`
	// Figure image size in points
	FigureWidth  float64 `yaml:"figure_width"`
	FigureHeight float64 `yaml:"figure_height"`
}

func Default() *Config {
	return &Config{
		Port:         8050,
		DataPath:     "bank-full.csv",
		Delimiter:    ";",
		Title:        "Banking Insights Dashboard",
		LogLevel:     "info",
		FigureWidth:  432,
		FigureHeight: 288,
	}
}

// Load builds the config from defaults, then the YAML file at path (if path
// is non-empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.DataPath = envStr("BANKDASH_DATA", cfg.DataPath)
	cfg.Delimiter = envStr("BANKDASH_DELIMITER", cfg.Delimiter)
	cfg.Title = envStr("BANKDASH_TITLE", cfg.Title)
	cfg.LogLevel = envStr("LOG_LEVEL", cfg.LogLevel)
	cfg.Debug = envBool("BANKDASH_DEBUG", cfg.Debug)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks field ranges. Callers that override fields after Load
// should call it again.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DataPath == "" {
		return errors.New("BANKDASH_DATA must not be empty")
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("BANKDASH_DELIMITER must be a single character, got %q", c.Delimiter)
	}
	if c.FigureWidth <= 0 || c.FigureHeight <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g", c.FigureWidth, c.FigureHeight)
	}
	return nil
}

// DelimiterRune returns the field separator.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// DebugLogging reports whether debug-level logs are enabled.
func (c *Config) DebugLogging() bool {
	return c.Debug || c.LogLevel == "debug"
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
