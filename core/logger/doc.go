// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the command line tools (console
// encoding) and for the preview server (json encoding in production).
//
// # Correlation
//
// WithRunID tags every line of one index build with a run_id. WithRayID extracts
// the request RayID stored by the rayid middleware from a Fiber context.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log)
//	log.Info("Scanning asset root")
package logger
