// Package logger provides leveled logging for the fixtodict CLI.
// Warnings are always printed to stderr; debug and info messages only
// appear when verbose mode is enabled via the --verbose flag, so users can
// follow the normalisation pipeline stage by stage.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.RWMutex
	verbose  bool
	output   io.Writer = os.Stderr
	base               = build(os.Stderr, false)
	replaced bool
)

// build creates the console logger used outside of tests.
func build(w io.Writer, v bool) *zap.Logger {
	level := zapcore.WarnLevel
	if v {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.NameKey = ""
	encoderCfg.StacktraceKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}

// rebuild must be called with mu held.
func rebuild() {
	if replaced {
		return
	}
	base = build(output, verbose)
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// Replace routes all logging through l until the returned function is called.
// Tests pass a logger built on zaptest/observer to assert on entries.
func Replace(l *zap.Logger) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev, prevReplaced := base, replaced
	base, replaced = l, true
	return func() {
		mu.Lock()
		defer mu.Unlock()
		base, replaced = prev, prevReplaced
		rebuild()
	}
}

// L returns the current zap logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	L().Debug(fmt.Sprintf(format, args...))
}

// Section logs a section header if verbose mode is enabled.
func Section(name string) {
	L().Info(fmt.Sprintf("=== %s ===", name))
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	L().Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning. Warnings are emitted regardless of verbose mode.
func Warn(format string, args ...any) {
	L().Warn(fmt.Sprintf(format, args...))
}
