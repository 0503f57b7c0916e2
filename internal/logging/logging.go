// Package logging builds the service logger and adapts it to the core
// logging interface.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/imenapop/paperpop/invite"
)

// New builds a zap logger for the given level and format ("json" or
// "console").
func New(levelStr, format string) *zap.Logger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, _ := cfg.Build()
	return logger
}

// Adapter exposes a zap logger through the invite.Logger interface.
type Adapter struct {
	s *zap.SugaredLogger
}

var _ invite.Logger = (*Adapter)(nil)

// NewAdapter wraps a zap logger.
func NewAdapter(logger *zap.Logger) *Adapter {
	return &Adapter{s: logger.Sugar()}
}

func (a *Adapter) Debugf(format string, args ...any) { a.s.Debugf(format, args...) }
func (a *Adapter) Infof(format string, args ...any)  { a.s.Infof(format, args...) }
func (a *Adapter) Errorf(format string, args ...any) { a.s.Errorf(format, args...) }
