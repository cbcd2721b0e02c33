// Package logger wraps zap to provide structured logging for the client.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger carries the application's zap logger.
type Logger struct {
	// Log is the underlying zap logger. It is a no-op until Init is called.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger, safe to use before Init.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds the real logger at the given level ("debug", "info", "warn",
// "error"). Output goes to stderr so shell output on stdout stays clean.
func (l *Logger) Init(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	l.Log = log
	return nil
}
