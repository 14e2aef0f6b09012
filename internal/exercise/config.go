package exercise

import (
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel = "GROKKING_LOG_LEVEL"
	EnvColor    = "GROKKING_COLOR"
	EnvStrict   = "GROKKING_STRICT"
)

// Config holds runner configuration.
type Config struct {
	LogLevel zapcore.Level
	Color    ColorMode
	// Strict turns failed assertions into a non-zero exit status.
	Strict bool
}

// DefaultConfig returns the configuration used when no env var is set.
func DefaultConfig() Config {
	return Config{
		LogLevel: zapcore.InfoLevel,
		Color:    ColorAuto,
	}
}

// LoadConfig reads configuration from environment.
//
// Environment variables:
//   - GROKKING_LOG_LEVEL: zap level name (default: info)
//   - GROKKING_COLOR: "auto" (default), "always" or "never"
//   - GROKKING_STRICT: boolean (default: false)
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, &ConfigError{Key: EnvLogLevel, Value: v}
		}
		cfg.LogLevel = level
	}

	if v := os.Getenv(EnvColor); v != "" {
		mode, err := ParseColorMode(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Color = mode
	}

	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, &ConfigError{Key: EnvStrict, Value: v}
		}
		cfg.Strict = strict
	}

	return cfg, nil
}

// NewLogger builds a production zap logger at the configured level.
// Logs go to stderr so stdout carries only exercise output.
func NewLogger(cfg Config) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
