package logging

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// New creates a production-ready structured logger configured for JSON output
// on stderr at the given level.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ValidLevel reports whether level is a level name New accepts.
func ValidLevel(level string) bool {
	_, err := zapcore.ParseLevel(level)
	return err == nil
}

// Warner receives human-readable warnings about skipped work.
type Warner interface {
	Warn(msg string)
}

// ConsoleWarner prints each warning as a "[WARNING] <message>" line.
type ConsoleWarner struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleWarner returns a warner writing to out.
func NewConsoleWarner(out io.Writer) *ConsoleWarner {
	return &ConsoleWarner{out: out}
}

// Warn prints msg.
func (w *ConsoleWarner) Warn(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.out, "[WARNING] %s\n", msg)
}
