// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Import struct {
		// HeaderScanLines bounds how deep the header detector looks.
		HeaderScanLines int `mapstructure:"header_scan_lines" yaml:"header_scan_lines"`
		// DuplicateWindowDays is the calendar-day window for fuzzy
		// card-payment duplicate matching.
		DuplicateWindowDays int  `mapstructure:"duplicate_window_days" yaml:"duplicate_window_days"`
		RemoveDuplicates    bool `mapstructure:"remove_duplicates" yaml:"remove_duplicates"`
		// PaymentKeywords marks payees eligible for fuzzy duplicate
		// matching. Locale-specific, so configurable rather than baked in.
		PaymentKeywords []string `mapstructure:"payment_keywords" yaml:"payment_keywords"`
	} `mapstructure:"import" yaml:"import"`
}

// DefaultPaymentKeywords is the built-in card-payment keyword list, used when
// the configuration does not override it. English phrases only; issuers in
// other locales need a config entry.
var DefaultPaymentKeywords = []string{
	"payment",
	"autopay",
	"card payment",
	"credit card",
	"bill payment",
	"automatic payment",
	"online payment",
	"e-transfer payment",
	"interac payment",
}

// Load initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then WALNUT_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.walnutbook")
	v.AddConfigPath(".walnutbook")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WALNUT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not brick the CLI; fall back to
			// defaults and environment variables.
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

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "")

	v.SetDefault("import.header_scan_lines", 15)
	v.SetDefault("import.duplicate_window_days", 2)
	v.SetDefault("import.remove_duplicates", true)
	v.SetDefault("import.payment_keywords", DefaultPaymentKeywords)
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Import.HeaderScanLines < 1 || config.Import.HeaderScanLines > 100 {
		return fmt.Errorf("import.header_scan_lines must be between 1 and 100, got: %d", config.Import.HeaderScanLines)
	}

	if config.Import.DuplicateWindowDays < 0 || config.Import.DuplicateWindowDays > 31 {
		return fmt.Errorf("import.duplicate_window_days must be between 0 and 31, got: %d", config.Import.DuplicateWindowDays)
	}

	return nil
}

// ConfigureLogging builds a logrus logger from the Log section.
func ConfigureLogging(config *Config) *logrus.Logger {
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
