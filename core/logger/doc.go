// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a human friendly console
// encoding for interactive use and a JSON encoding for scripted runs.
//
// # Invocation Fields
//
// WithInvocation attaches the requested action and record type to every entry,
// so that warnings emitted deep inside a bulk operation can be traced back to the
// command line that produced them.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (default) or json
//
// All output goes to stderr; stdout is reserved for reports.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithInvocation(log, "list", "device")
//	log.Info("Fetching devices")
package logger
