package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ctxKey string

const (
	RequestIDKey ctxKey = "request_id"
	TraceIDKey   ctxKey = "trace_id"
	UserIDKey    ctxKey = "user_id"
	LoggerKey    ctxKey = "logger"
)

var globalLogger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "estimaflow").Logger()

// Init configures the global logger.
func Init(level string, jsonFormat bool) {
	InitWithWriter(level, jsonFormat, os.Stdout)
}

// InitWithWriter is Init with an explicit output, used by tests.
func InitWithWriter(level string, jsonFormat bool, out io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	output := out
	if !jsonFormat {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	globalLogger = zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "estimaflow").
		Logger()
}

// Global returns the process-wide logger.
func Global() *zerolog.Logger {
	return &globalLogger
}

// Get returns the request logger stored in ctx, or the global one.
func Get(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &globalLogger
	}
	if l, ok := ctx.Value(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	return &globalLogger
}

// FromGin returns the request logger of a gin request.
func FromGin(c *gin.Context) *zerolog.Logger {
	return Get(c.Request.Context())
}

// WithRequestID stores request and trace ids in ctx and in a derived logger.
func WithRequestID(ctx context.Context, requestID, traceID string) context.Context {
	l := Get(ctx).With().Str("request_id", requestID).Str("trace_id", traceID).Logger()
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	ctx = context.WithValue(ctx, TraceIDKey, traceID)
	return context.WithValue(ctx, LoggerKey, &l)
}

// WithUserID tags the request logger with the authenticated user.
func WithUserID(ctx context.Context, userID string) context.Context {
	l := Get(ctx).With().Str("user_id", userID).Logger()
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, LoggerKey, &l)
}

func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, RequestIDKey)
}

func GetUserID(ctx context.Context) string {
	return stringValue(ctx, UserIDKey)
}

func stringValue(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
