// Package log provides structured logging with run correlation IDs.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/helixml/graphrag-index/internal/config"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// CorrelationIDKey carries the run correlation ID.
const CorrelationIDKey ContextKey = "correlation_id"

// Logger wraps slog.Logger with an adjustable level.
type Logger struct {
	level  *slog.LevelVar
	logger *slog.Logger
}

// NewLogger creates a Logger writing to w based on configuration. Pretty
// output is coloured only when w is a terminal.
func NewLogger(cfg config.AppConfig, w io.Writer) *Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return newLogger(w, cfg.LogFormat(), cfg.LogLevel(), color)
}

// NewLoggerWithWriter creates a Logger that writes uncoloured output to w.
func NewLoggerWithWriter(w io.Writer, format config.LogFormat, level string) *Logger {
	return newLogger(w, format, level, false)
}

func newLogger(w io.Writer, format config.LogFormat, level string, color bool) *Logger {
	lvl := &slog.LevelVar{}
	lvl.Set(parseLevel(level))

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	default:
		handler = newTerminalHandler(w, lvl, color)
	}

	return &Logger{
		level:  lvl,
		logger: slog.New(handler),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// Level returns the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// EnableDebug lowers the level to debug. Loggers derived with With share
// the level.
func (l *Logger) EnableDebug() {
	if l.level.Level() > slog.LevelDebug {
		l.level.Set(slog.LevelDebug)
	}
}

// With returns a new Logger with additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		level:  l.level,
		logger: l.logger.With(args...),
	}
}

// WithContext returns a logger carrying the context's correlation ID.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if id := CorrelationID(ctx); id != "" {
		return l.With(string(CorrelationIDKey), id)
	}
	return l
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// DebugContext logs at debug level with context.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Debug(msg, args...)
}

// InfoContext logs at info level with context.
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Info(msg, args...)
}

// WarnContext logs at warn level with context.
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Warn(msg, args...)
}

// ErrorContext logs at error level with context.
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Error(msg, args...)
}

// WithCorrelationID adds a correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// CorrelationID extracts the correlation ID from context.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

// Discard returns a Logger that drops everything. Useful in tests.
func Discard() *Logger {
	return NewLoggerWithWriter(io.Discard, config.LogFormatJSON, "ERROR")
}
