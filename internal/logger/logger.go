// Package logger provides leveled diagnostic logging for rootcmp.
// Diagnostics go to stderr so they never mix with the comparison
// report on stdout. The level is set via the --log flag and accepts
// either a mnemonic (DEBUG, INFO, WARNING, ERROR) or an integer,
// where lower means more verbose.
package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Levels follow the conventional 10/20/30/40 spacing so intermediate
// integer levels remain meaningful.
const (
	LevelDebug   = 10
	LevelInfo    = 20
	LevelWarning = 30
	LevelError   = 40
)

var (
	mu     sync.RWMutex
	level            = LevelWarning
	output io.Writer = os.Stderr
)

// SetLevel sets the minimum level that gets printed.
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// ParseLevel converts a mnemonic or integer level string.
func ParseLevel(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// SetOutput sets the output writer for diagnostics.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func log(l int, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l >= level {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message at DEBUG level.
func Debug(format string, args ...any) {
	log(LevelDebug, "[DEBUG] ", format, args...)
}

// Info prints a message at INFO level.
func Info(format string, args ...any) {
	log(LevelInfo, "[INFO] ", format, args...)
}

// Warn prints a message at WARNING level.
func Warn(format string, args ...any) {
	log(LevelWarning, "[WARN] ", format, args...)
}

// Error prints a message at ERROR level.
func Error(format string, args ...any) {
	log(LevelError, "[ERROR] ", format, args...)
}
