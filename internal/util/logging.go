package util

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewZapLogger builds the process logger. Production uses JSON encoding,
// development a console encoder. A non-empty logFile adds a rotated file sink.
func NewZapLogger(level, env, logFile string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if env == "production" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl)),
	}

	if logFile != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), fileWriter, zap.NewAtomicLevelAt(lvl)))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// Logger provides consistent logging across services
type Logger struct {
	prefix string
	zl     *zap.Logger
}

// NewLogger creates a new logger with a prefix. It writes through the global
// zap logger, so zap.ReplaceGlobals must run before services are built.
func NewLogger(prefix string) *Logger {
	return &Logger{prefix: prefix, zl: zap.L().Named(prefix)}
}

// Start logs the start of a process
func (l *Logger) Start(name string) {
	l.zl.Debug(fmt.Sprintf(LogStart, name))
}

// End logs the end of a process
func (l *Logger) End(name string) {
	l.zl.Debug(fmt.Sprintf(LogEnd, name))
}

// Section logs a section header
func (l *Logger) Section(name string) {
	l.zl.Debug(fmt.Sprintf(LogSection, name))
}

// Error logs an error message
func (l *Logger) Error(msg string, err error) {
	l.zl.Error(msg, zap.Error(err))
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, err error) {
	l.zl.Warn(msg, zap.Error(err))
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info(fmt.Sprintf(format, args...))
}

// Success logs a success message
func (l *Logger) Success(msg string) {
	l.zl.Info("✓ " + msg)
}

// KeyValue logs key-value pairs
func (l *Logger) KeyValue(msg string, pairs ...interface{}) {
	l.zl.Sugar().Infow(msg, pairs...)
}
