// Package logging builds the process zap logger and the request-scoped
// Logger used by services and handlers.
package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

// New builds the process logger. Production uses JSON output; every other
// environment uses the human-readable development encoder.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging tagged with the request id.
type Logger struct {
	z *zap.Logger
}

// NewLogger creates a logger bound to the request in ctx. It writes through
// the global zap logger, so install one with zap.ReplaceGlobals at startup.
func NewLogger(ctx context.Context) *Logger {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "unknown"
	}
	return &Logger{z: zap.L().With(zap.String("request_id", rid))}
}

// Zap exposes the underlying logger for callers that need typed fields.
func (l *Logger) Zap() *zap.Logger { return l.z }

func (l *Logger) LogError(operation string, err error) {
	l.z.Error(operation, zap.String("operation", operation), zap.Error(err))
}

func (l *Logger) LogErrorf(operation string, format string, args ...any) {
	l.z.Error(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

func (l *Logger) LogInfo(operation string, message string) {
	l.z.Info(message, zap.String("operation", operation))
}

func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.z.Info(fmt.Sprintf(format, args...), zap.String("operation", operation))
}

func (l *Logger) LogWarn(operation string, message string) {
	l.z.Warn(message, zap.String("operation", operation))
}

func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.z.Warn(fmt.Sprintf(format, args...), zap.String("operation", operation))
}
