// Package logger exposes a process-wide Sugared Zap logger. Entries are
// written as JSON to stdout and, when telemetry has registered a
// LoggerProvider, mirrored to OpenTelemetry through the otelzap bridge.
//
// Every helper takes a context: when it carries a recording span the entry
// is annotated with trace_id and span_id, and fields attached with
// WithFields travel along with the context.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/web3lab/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyType struct{}

// ctxKey stores a derived *zap.SugaredLogger inside a context.
var ctxKey = ctxKeyType{}

var (
	baseLogger         *zap.SugaredLogger
	initBaseLoggerOnce sync.Once
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error"). Only the first successful call has effect.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/web3lab", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// base returns the configured logger, or a no-op one when Init was never
// called (library code may log before the CLI wires the logger).
func base() *zap.SugaredLogger {
	if baseLogger == nil {
		return zap.NewNop().Sugar()
	}
	return baseLogger
}

// deriveFromCtx builds the logger for one entry: the context logger (or the
// base one), the span identifiers and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = base()
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With("trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// WithFields returns a context whose log entries always include the given
// key/value pairs.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

// Sync flushes buffered entries. Call it on shutdown.
func Sync() error {
	return base().Sync()
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
