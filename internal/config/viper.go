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

	Files struct {
		Rules       string `mapstructure:"rules" yaml:"rules"`
		Cards       string `mapstructure:"cards" yaml:"cards"`
		Corrections string `mapstructure:"corrections" yaml:"corrections"`
	} `mapstructure:"files" yaml:"files"`

	Scoring struct {
		Years               int  `mapstructure:"years" yaml:"years"`
		Limit               int  `mapstructure:"limit" yaml:"limit"`
		IncludeWelcomeBonus bool `mapstructure:"include_welcome_bonus" yaml:"include_welcome_bonus"`
	} `mapstructure:"scoring" yaml:"scoring"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig loads configuration with hierarchical precedence:
// defaults, then a config.yaml file, then CARDMATCH_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.cardmatch")
	v.AddConfigPath(".cardmatch")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CARDMATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Config file is optional; defaults and env vars carry the rest.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("files.rules", "rules.yaml")
	v.SetDefault("files.cards", "cards.yaml")
	v.SetDefault("files.corrections", "corrections.yaml")

	v.SetDefault("scoring.years", 1)
	v.SetDefault("scoring.limit", 5)
	v.SetDefault("scoring.include_welcome_bonus", true)

	v.SetDefault("csv.delimiter", ",")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Scoring.Years < 1 {
		return fmt.Errorf("scoring.years must be at least 1, got: %d", config.Scoring.Years)
	}

	if config.Scoring.Limit < 1 {
		return fmt.Errorf("scoring.limit must be at least 1, got: %d", config.Scoring.Limit)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig builds a logrus logger from the Log section.
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
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
