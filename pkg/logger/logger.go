// Package logger provides named, structured loggers for services and CLIs.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a named production logger with human-readable timestamps.
// The returned logger is safe for concurrent use; call Sync before exit
// to flush buffered entries.
func New(name string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	log, err := config.Build()
	if err != nil {
		// Logging is the one dependency nothing can report errors through.
		panic(err)
	}

	return log.Named(name).Sugar()
}
