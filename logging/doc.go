// Package logging provides a minimal logging interface and adapters for ThreadKit.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the store backends and the action machine use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - RuntimeLogger with widget/thread context and domain helpers
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	kit := threadkit.New(threadkit.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
