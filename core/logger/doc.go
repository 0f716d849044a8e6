// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
// Logs are written to stderr so that reports printed on stdout stay clean.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to
// the log entry, so that all logs of one upload can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
