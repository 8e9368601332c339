// Package emitter turns rewritten syntax trees into output files.
package emitter

import (
	"fmt"
	"strings"

	"github.com/viant/comptime/ast"
)

// Emitter represents output generator
type Emitter interface {
	Emit(file *ast.SourceFile) ([]byte, error)
	// OutputPath returns the output location of a source path
	OutputPath(path string) string
}

// Kind names an emitter
type Kind string

const (
	KindTypeScript Kind = "ts"
	KindJavaScript Kind = "js"
)

// New creates an emitter by kind
func New(kind Kind, options ...Option) (Emitter, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case KindTypeScript, "":
		return &TypeScript{}, nil
	case KindJavaScript:
		return NewJavaScript(options...)
	}
	return nil, fmt.Errorf("unsupported emitter: %v, expected %v or %v", kind, KindTypeScript, KindJavaScript)
}

// TypeScript prints files back as TypeScript; untouched code is emitted verbatim
type TypeScript struct{}

func (e *TypeScript) Emit(file *ast.SourceFile) ([]byte, error) {
	if file == nil {
		return nil, fmt.Errorf("file was nil")
	}
	return []byte(ast.Print(file)), nil
}

func (e *TypeScript) OutputPath(path string) string {
	return path
}
