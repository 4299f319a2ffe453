package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/detect-objects/internal/detection"
	"github.com/ironsheep/detect-objects/internal/imaging"
)

// Environment variable names.
const (
	EnvLogLevel      = "DETECT_LOG_LEVEL"
	EnvJPEGQuality   = "DETECT_JPEG_QUALITY"
	EnvConfThreshold = "DETECT_CONF_THRESHOLD"
)

// Config holds settings read from the environment.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string

	// JPEGQuality is the quality of the annotated output image (1-100).
	JPEGQuality int

	// ConfThreshold is the default confidence threshold when no flag is given.
	ConfThreshold float64
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		JPEGQuality:   imaging.DefaultJPEGQuality,
		ConfThreshold: detection.DefaultThreshold,
	}
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set in the environment win over
// the file.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	return fromEnv(os.Getenv)
}

// fromEnv builds a Config from a variable lookup.
func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level := strings.ToLower(v)
		switch level {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = level
		default:
			return nil, fmt.Errorf("invalid %s %q: want debug, info, warn or error", EnvLogLevel, v)
		}
	}

	if v := strings.TrimSpace(getenv(EnvJPEGQuality)); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			return nil, fmt.Errorf("invalid %s %q: want an integer from 1 to 100", EnvJPEGQuality, v)
		}
		cfg.JPEGQuality = q
	}

	if v := strings.TrimSpace(getenv(EnvConfThreshold)); v != "" {
		th, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(th) || th < 0 || th > 1 {
			return nil, fmt.Errorf("invalid %s %q: want a number from 0 to 1", EnvConfThreshold, v)
		}
		cfg.ConfThreshold = th
	}

	return cfg, nil
}
