// Package logger provides a structured logging solution using the Zap logging library.
// It includes utilities for creating and managing loggers, setting log levels,
// and integrating logging with context for enhanced traceability.
// Console output goes to stderr; an optional lumberjack-rotated JSON file sink
// can be attached at startup.
package logger
