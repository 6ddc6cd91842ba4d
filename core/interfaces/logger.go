package interfaces

// Logger defines the interface for logging throughout the library.
// This abstraction allows for different logging implementations (logrus, zap, etc.)
// while maintaining a consistent interface. Rendering is quiet by default:
// the zero value callers get is NopLogger.
//
// Example usage:
//
//	logger.Debug("rendering feed", map[string]interface{}{
//		"items": 42,
//		"limit": 10,
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	// Debug messages are typically used for detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	// Info messages are used for general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	// Error messages indicate failures that need attention.
	Error(msg string, fields map[string]interface{})
}

// NopLogger is a Logger that discards everything. It is the default for
// feeds constructed without an explicit logger.
type NopLogger struct{}

// Debug discards the message
func (NopLogger) Debug(msg string, fields map[string]interface{}) {}

// Info discards the message
func (NopLogger) Info(msg string, fields map[string]interface{}) {}

// Warn discards the message
func (NopLogger) Warn(msg string, fields map[string]interface{}) {}

// Error discards the message
func (NopLogger) Error(msg string, fields map[string]interface{}) {}
