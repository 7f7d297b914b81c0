// Package logging builds the zap logger shared by every surface.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at the given level. Format "json" selects the
// production encoder, anything else the development console encoder.
// An empty path logs to stderr.
func New(level, format, path string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	return cfg.Build()
}

// NewForTUI returns a logger that never writes to the terminal: the alt
// screen owns it. Without a log file the logger is a no-op.
func NewForTUI(level, format, path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	return New(level, format, path)
}
