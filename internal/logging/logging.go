// Package logging builds the process logger. Logs go to stderr so stdout
// stays clean for scan output.
package logging

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `koanf:"level"`

	// Format selects the encoder: console or json.
	Format string `koanf:"format"`
}

// NewDefaultConfig returns console logging at info level.
func NewDefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

// New creates a logger from config. Every invocation gets a run_id field so
// a single scan's lines correlate when output is collected.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.Lock(os.Stderr), level)
	return zap.New(core).With(zap.String("run_id", uuid.NewString())), nil
}

// newEncoder creates a JSON or console encoder.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderCfg)
	}
	return zapcore.NewConsoleEncoder(encoderCfg)
}
