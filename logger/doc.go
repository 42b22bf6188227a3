// Package logger provides structured logging built on zerolog, with
// component scoping, field helpers, and a process-wide global logger.
package logger
