// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional config file, then DEPOSIT_-prefixed
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultFilename is the input export this tool was built around. It
// is resolved against the documents directory unless an explicit input
// path is given.
const DefaultFilename = "TERA Deposit Write Off 2025 - Monitoring - deposit to write-off 2.csv"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Export struct {
		// Filename is resolved against DocumentsDir when no input
		// path is passed on the command line.
		Filename     string `mapstructure:"filename" yaml:"filename"`
		DocumentsDir string `mapstructure:"documents_dir" yaml:"documents_dir"`

		DefaultCurrency string `mapstructure:"default_currency" yaml:"default_currency"`
		SkipRows        int    `mapstructure:"skip_rows" yaml:"skip_rows"`
		MinColumns      int    `mapstructure:"min_columns" yaml:"min_columns"`
		PreviewLimit    int    `mapstructure:"preview_limit" yaml:"preview_limit"`

		Columns struct {
			HotelID  int `mapstructure:"hotel_id" yaml:"hotel_id"`
			Currency int `mapstructure:"currency" yaml:"currency"`
			Amount   int `mapstructure:"amount" yaml:"amount"`
		} `mapstructure:"columns" yaml:"columns"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.deposit-export")
	v.AddConfigPath(".deposit-export")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DEPOSIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Config file is optional; defaults and env vars are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("export.filename", DefaultFilename)
	v.SetDefault("export.documents_dir", "")
	v.SetDefault("export.default_currency", "IDR")
	v.SetDefault("export.skip_rows", 4)
	v.SetDefault("export.min_columns", 9)
	v.SetDefault("export.preview_limit", 5)
	v.SetDefault("export.columns.hotel_id", 3)
	v.SetDefault("export.columns.currency", 7)
	v.SetDefault("export.columns.amount", 8)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Export.Filename == "" {
		return fmt.Errorf("export.filename must not be empty")
	}

	if config.Export.SkipRows < 0 {
		return fmt.Errorf("export.skip_rows must not be negative, got: %d", config.Export.SkipRows)
	}

	if config.Export.DefaultCurrency == "" {
		return fmt.Errorf("export.default_currency must not be empty")
	}

	if config.Export.PreviewLimit < 0 {
		return fmt.Errorf("export.preview_limit must not be negative, got: %d", config.Export.PreviewLimit)
	}

	// Every configured column must fit inside the minimum row width,
	// otherwise rows that pass the column check could still miss
	// fields.
	for name, col := range map[string]int{
		"hotel_id": config.Export.Columns.HotelID,
		"currency": config.Export.Columns.Currency,
		"amount":   config.Export.Columns.Amount,
	} {
		if col < 0 {
			return fmt.Errorf("export.columns.%s must not be negative, got: %d", name, col)
		}
		if col >= config.Export.MinColumns {
			return fmt.Errorf("export.columns.%s (%d) must be below export.min_columns (%d)",
				name, col, config.Export.MinColumns)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
