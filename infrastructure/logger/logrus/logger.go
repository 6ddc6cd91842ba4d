// ABOUTME: Logrus implementation of the Logger interface
// ABOUTME: Maps field maps onto logrus structured entries

package logrus

import (
	"github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface on top of a logrus logger.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logger writing to the given logrus instance. A nil
// instance falls back to the logrus standard logger.
func NewLogger(log *logrus.Logger) *Logger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Logger{log: log}
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
