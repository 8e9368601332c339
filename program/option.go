package program

import (
	"github.com/viant/afs"
	"github.com/viant/comptime/ast"
)

// Option represents program loading option
type Option func(*loader)

// WithInclude sets glob patterns of files to load, relative to base URL
func WithInclude(patterns ...string) Option {
	return func(l *loader) {
		if len(patterns) > 0 {
			l.include = patterns
		}
	}
}

// WithExclude sets glob patterns of files and directories to skip
func WithExclude(patterns ...string) Option {
	return func(l *loader) {
		if len(patterns) > 0 {
			l.exclude = patterns
		}
	}
}

// WithConcurrency limits number of files parsed at once
func WithConcurrency(concurrency int) Option {
	return func(l *loader) {
		if concurrency > 0 {
			l.concurrency = concurrency
		}
	}
}

// WithFS sets file system service
func WithFS(fs afs.Service) Option {
	return func(l *loader) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// WithArena sets id arena shared with parser
func WithArena(arena *ast.Arena) Option {
	return func(l *loader) {
		if arena != nil {
			l.arena = arena
		}
	}
}

// DefaultInclude matches TypeScript sources
var DefaultInclude = []string{"**/*.ts", "**/*.tsx"}

// DefaultExclude skips dependencies, declaration files and build output
var DefaultExclude = []string{"**/node_modules/**", "**/*.d.ts", "**/.git/**"}
