package logging

import "context"

// Log levels used across the service
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARNING"
	LevelError = "ERROR"
)

// ServiceLogger provides logging for simulation components
type ServiceLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger ServiceLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) ServiceLogger {
	if logger, ok := ctx.Value(loggerKey).(ServiceLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// NoOp returns a logger that discards everything
func NoOp() ServiceLogger {
	return &noOpLogger{}
}

// OrNoOp substitutes a no-op logger for nil
func OrNoOp(logger ServiceLogger) ServiceLogger {
	if logger == nil {
		return &noOpLogger{}
	}
	return logger
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// MultiLogger writes every entry to each logger
type MultiLogger []ServiceLogger

func (m MultiLogger) Log(level, message string, metadata map[string]interface{}) {
	for _, l := range m {
		if l != nil {
			l.Log(level, message, metadata)
		}
	}
}
