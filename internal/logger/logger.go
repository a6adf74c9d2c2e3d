// Package logger provides leveled diagnostic logging for the localdev toolkit.
//
// Diagnostics go to stderr through logrus, separate from the operator-facing
// prompts and progress messages that the output package writes to stdout.
// A workflow run stays readable while --verbose adds detail underneath it.
//
// # Log Levels
//
// Four levels are supported, in order of severity:
//   - Debug: Detailed information for debugging
//   - Info: General operational information
//   - Warn: Conditions that don't stop the run
//   - Error: Conditions that end the run
//
// By default (verbose=false) only Warn and Error are shown. Init(true)
// enables everything.
//
// # Usage
//
//	logger.Init(verbose)
//	logger.Debug("loading settings from %s", path)
//	logger.DebugFields("config written", map[string]interface{}{
//	    "domain": "example.test",
//	    "bytes":  812,
//	})
//
// Output looks like:
//
//	time="2026-10-19 10:30:45" level=debug msg="config written" bytes=812 domain=example.test
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

var (
	mu    sync.Mutex
	level = LevelWarn
	std   = newLogrus(os.Stderr)
)

func newLogrus(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Init sets verbosity for the global logger.
// Verbose enables Debug and Info; otherwise only Warn and Error are shown.
func Init(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// SetLevel sets the minimum log level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	std.SetLevel(l.logrus())
}

// GetLevel returns the current log level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// SetOutput redirects log output. A nil writer restores os.Stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	std.SetOutput(w)
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

// DebugFields logs a debug message with structured fields.
func DebugFields(msg string, fields map[string]interface{}) {
	std.WithFields(logrus.Fields(fields)).Debug(msg)
}

// InfoFields logs an informational message with structured fields.
func InfoFields(msg string, fields map[string]interface{}) {
	std.WithFields(logrus.Fields(fields)).Info(msg)
}

// WarnFields logs a warning message with structured fields.
func WarnFields(msg string, fields map[string]interface{}) {
	std.WithFields(logrus.Fields(fields)).Warn(msg)
}

// LogError logs err with a context message. Nil errors are ignored.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	std.WithError(err).Error(msg)
}
