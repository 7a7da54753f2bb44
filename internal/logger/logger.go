package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output formats.
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

// Options select level and encoder for the process logger.
type Options struct {
	Level  string
	Format string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger. The first call fixes its options; later calls
// return the same instance.
func Get(opts Options) *Logger {
	once.Do(func() {
		globalLogger = New(opts)
	})
	return globalLogger
}

// New builds a standalone logger, mostly useful in tests.
func New(opts Options) *Logger {
	return newZapLogger(opts.Level, opts.Format)
}
