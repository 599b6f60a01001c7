// internal/logging/logging.go

// Package logging wraps a process-wide zap logger used for run
// diagnostics (skipped-row tallies, sink progress). Output rows never
// go through it.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLog *zap.Logger

// ParseLevel maps a config string to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// InitLogger builds the process logger at the given level. Call once
// at startup; the package functions are no-ops until then.
func InitLogger(level zapcore.Level) error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("Jan _2 15:04:05.000000000")
	encoderConfig.StacktraceKey = ""
	config.EncoderConfig = encoderConfig

	var err error
	zapLog, err = config.Build(zap.AddCallerSkip(1))
	return err
}

func Info(message string, fields ...zap.Field) {
	if zapLog != nil {
		zapLog.Info(message, fields...)
	}
}

func Warn(message string, fields ...zap.Field) {
	if zapLog != nil {
		zapLog.Warn(message, fields...)
	}
}

func Debug(message string, fields ...zap.Field) {
	if zapLog != nil {
		zapLog.Debug(message, fields...)
	}
}

func Error(message string, fields ...zap.Field) {
	if zapLog != nil {
		zapLog.Error(message, fields...)
	}
}

// Sync flushes any buffered log entries.
func Sync() error {
	if zapLog == nil {
		return nil
	}
	return zapLog.Sync()
}
