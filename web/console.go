//go:build js
// +build js

package web

import (
	"bytes"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/blackhole/logger"
	"go.uber.org/zap"
)

// Console is a zapcore.WriteSyncer that forwards each encoded entry to the
// browser console. Entries at warn or above go to console.error.
type Console struct{}

// Write logs one encoded line.
func (Console) Write(p []byte) (int, error) {
	line := string(bytes.TrimRight(p, "\n"))
	method := "log"
	if bytes.Contains(p, []byte("\tWARN\t")) || bytes.Contains(p, []byte("\tERROR\t")) {
		method = "error"
	}
	js.Global.Get("console").Call(method, line)
	return len(p), nil
}

// Sync is a no-op; the console is unbuffered.
func (Console) Sync() error { return nil }

// NewConsoleLogger returns a development logger writing to the console.
func NewConsoleLogger(level string) *zap.Logger {
	return logger.New(logger.Config{
		Environment: "development",
		LogLevel:    level,
		ServiceName: "blackhole",
		Output:      Console{},
	})
}
