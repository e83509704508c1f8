package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger used by the helpers below.
var logger = newLogger(os.Stderr, LogConfig{})

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug output with timestamps and caller info.
	Verbose bool

	// Writer overrides the destination. Defaults to stderr.
	Writer io.Writer
}

func newLogger(w io.Writer, cfg LogConfig) *log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.Verbose,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetupLogging replaces the package logger according to cfg.
func SetupLogging(cfg LogConfig) {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	logger = newLogger(w, cfg)
}

// Logger returns the current logger.
func Logger() *log.Logger {
	return logger
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// Substitution logs a rejected option value and the value used instead.
func Substitution(msg, subject, rejected, substituted string) {
	keyvals := []any{"subject", subject, "rejected", rejected}
	if substituted != "" {
		keyvals = append(keyvals, "substituted", substituted)
	}
	logger.Warn(msg, keyvals...)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
