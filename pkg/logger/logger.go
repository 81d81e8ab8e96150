// Package logger provides the file-backed session log.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides a structured logging interface.
type Logger struct {
	*zap.SugaredLogger
}

// New creates a logger writing JSON lines to a dated file under dir. Console
// output is deliberately avoided so the log never interleaves with the
// interactive prompt; if the file cannot be opened, logging is a no-op.
func New(name, dir string) *Logger {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Logger{SugaredLogger: zap.NewNop().Sugar()}
	}

	timestamp := time.Now().Format("20060102")
	logFile := filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, timestamp))
	fileWriter, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Logger{SugaredLogger: zap.NewNop().Sugar()}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(fileWriter),
		zap.InfoLevel,
	)

	return &Logger{SugaredLogger: zap.New(core).Named(name).Sugar()}
}
