package compiler

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/comptime/config"
)

// Option represents compiler option
type Option func(*Compiler)

// WithIsolation sets pass isolation
func WithIsolation(isolation config.Isolation) Option {
	return func(c *Compiler) {
		if isolation != "" {
			c.isolation = isolation
		}
	}
}

// WithConcurrency limits number of files transformed at once with file isolation
func WithConcurrency(concurrency int) Option {
	return func(c *Compiler) {
		if concurrency > 0 {
			c.concurrency = concurrency
		}
	}
}

// WithFS sets file system service used to write outputs
func WithFS(fs afs.Service) Option {
	return func(c *Compiler) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// WithLogger sets compiler logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}
