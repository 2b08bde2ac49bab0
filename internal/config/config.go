// SPDX-License-Identifier: EPL-2.0

// Package config reads the command line tool's settings from the
// environment, optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
type Config struct {
	LogLevel      string
	LogFile       string // empty: console only
	LogMaxSize    int    // megabytes
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool
	// MediaRoot resolves relative sound paths. Empty means the directory of
	// the project file.
	MediaRoot string
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// Load reads the given .env files (default ./.env) without overriding
// variables already set, then builds the configuration. A missing .env
// file is not an error.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() *Config {
	return &Config{
		LogLevel:      getEnv("PEAKVOL_LOG_LEVEL", "info"),
		LogFile:       getEnv("PEAKVOL_LOG_FILE", ""),
		LogMaxSize:    getEnvInt("PEAKVOL_LOG_MAX_SIZE", 10),
		LogMaxBackups: getEnvInt("PEAKVOL_LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvInt("PEAKVOL_LOG_MAX_AGE", 28),
		LogCompress:   getEnvBool("PEAKVOL_LOG_COMPRESS", false),
		MediaRoot:     getEnv("PEAKVOL_MEDIA_ROOT", ""),
	}
}
