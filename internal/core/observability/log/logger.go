// Package log wraps zap behind the small leveled surface the engine
// needs. Field construction is re-exported from zap directly rather
// than through an intermediate union type.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured log field.
type Field = zap.Field

// Re-exported field constructors, so callers import one package.
var (
	String   = zap.String
	Int      = zap.Int
	Float64  = zap.Float64
	Duration = zap.Duration
	Err      = zap.Error
	Any      = zap.Any
)

// Level selects the minimum severity that gets emitted.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is a leveled structured logger.
type Logger struct {
	zl *zap.Logger
}

// New builds a JSON logger writing to stderr at the given level.
func New(level Level) *Logger {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(toZapLevel(level)),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...Field) { l.zl.Debug(msg, fields...) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...Field) { l.zl.Info(msg, fields...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...Field) { l.zl.Warn(msg, fields...) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Field) { l.zl.Error(msg, fields...) }

// With returns a logger with the fields bound to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
