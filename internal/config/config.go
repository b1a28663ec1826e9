package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Input InputConfig
	Plot  PlotConfig
}

// InputConfig holds data source settings
type InputConfig struct {
	File  string
	Sheet string
}

// PlotConfig holds the rendering-collaborator settings. These affect only
// the matrix-plot view handed to the sink, never the numeric artifacts.
type PlotConfig struct {
	MatrixplotSort bool
	PlotTransform  bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Input: InputConfig{
			File:  getEnvOrDefault("INPUT_FILE", ""),
			Sheet: getEnvOrDefault("INPUT_SHEET", "Sheet1"),
		},
		Plot: PlotConfig{
			MatrixplotSort: getEnvBoolOrDefault("MATRIXPLOT_SORT", true),
			PlotTransform:  getEnvBoolOrDefault("PLOT_TRANSFORM", true),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
