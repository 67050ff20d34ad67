// Package logger wraps zap with a logger carried in context.Context.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

// defaultLogger is used when the context carries none. It discards everything
// until Setup is called.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup replaces the default logger: JSON output in production, console output
// at debug level otherwise.
func Setup(environment string) {
	var (
		l   *zap.Logger
		err error
	)
	if environment == ProductionEnvironment {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return
	}

	defaultLogger = l
}

type key struct{}

// Get returns the logger attached to ctx, or the default one.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields attaches a child logger carrying fields to ctx.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}

// Sync flushes the default logger.
func Sync() {
	_ = defaultLogger.Sync()
}
