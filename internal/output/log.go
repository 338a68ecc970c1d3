// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger all helpers write through.
var logger *log.Logger

// stdout is where Print and Println write; swapped in tests.
var stdout io.Writer = os.Stdout

// stderr receives log records.
var stderr io.Writer = os.Stderr

func init() {
	logger = log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps controls timestamp display. Nil means the default (on).
	Timestamps *bool
}

// SetupLogging configures the logger based on verbosity and timestamp settings.
// Verbose forces timestamps on regardless of Timestamps.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}

// SetStderr redirects log records and returns a function restoring the previous writer.
func SetStderr(w io.Writer) func() {
	prev := stderr
	stderr = w
	logger.SetOutput(w)
	return func() {
		stderr = prev
		logger.SetOutput(prev)
	}
}

// SetStdout redirects Print and Println and returns a function restoring the previous writer.
func SetStdout(w io.Writer) func() {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}
