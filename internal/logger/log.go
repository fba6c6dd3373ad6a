package logger

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around zap.Logger.
type Logger struct {
	logger *zap.Logger
}

// Field holds key-value to be written to log.
type Field struct {
	Key   string
	Value any
}

// NewField returns Field with given key and value.
func NewField(key string, value any) Field {
	return Field{key, value}
}

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func zapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a Logger writing to stderr.
func New(opts Options) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(opts.Level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{logger: l}, nil
}

// NewNop returns a Logger that discards everything. Used by tests.
func NewNop() *Logger {
	return &Logger{logger: zap.NewNop()}
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.logger.Sync()
}

func (l *Logger) Debug(message string, fields ...Field) {
	l.logger.Debug(message, convertFields(fields...)...)
}

func (l *Logger) Info(message string, fields ...Field) {
	l.logger.Info(message, convertFields(fields...)...)
}

func (l *Logger) Warn(message string, fields ...Field) {
	l.logger.Warn(message, convertFields(fields...)...)
}

// Error logs err at error level. Stack traces captured by github.com/pkg/errors
// replace zap's own caller stack.
func (l *Logger) Error(err error, fields ...Field) {
	ce := l.logger.Check(zapcore.ErrorLevel, err.Error())
	if ce == nil {
		return
	}
	var st stackTracer
	if errors.As(err, &st) {
		ce.Stack = strings.TrimSpace(fmt.Sprintf("%+v", st.StackTrace()))
	}
	ce.Write(convertFields(fields...)...)
}

// WithFields returns a child logger with additional fields.
func (l *Logger) WithFields(fields ...Field) *Logger {
	return &Logger{logger: l.logger.With(convertFields(fields...)...)}
}

func convertFields(fields ...Field) []zapcore.Field {
	zapFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}
