// Package config provides Viper-based hierarchical configuration and
// environment loading for the application.
package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once

	// Logger is the shared logrus instance used before the configured
	// logger is available.
	Logger = logrus.New()
)

// LoadEnv loads environment variables from a .env file if one exists in
// the current directory. Missing files are not an error.
func LoadEnv() {
	once.Do(func() {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			Logger.Debug("No .env file found, using environment variables")
			return
		}
		if err := godotenv.Load(".env"); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Debug("Loaded environment variables from .env")
	})
}

// GetEnv retrieves an environment variable with a fallback value.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
