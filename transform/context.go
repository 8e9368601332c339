package transform

import (
	"log/slog"

	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/factory"
)

// Program represents the host program a pass runs against
type Program interface {
	// Files returns parsed source files
	Files() []*ast.SourceFile
	// TypeOf returns type information for a parse-tree node, nil when unavailable
	TypeOf(node ast.Node) *comptime.TypeInfo
	// Parent returns the parse-tree parent of node, nil for roots and unknown nodes
	Parent(node ast.Node) ast.Node
	// Arena returns the id allocator shared with the parser
	Arena() *ast.Arena
}

// Context is passed to every decorator invocation of a pass
type Context struct {
	program Program
	factory *factory.Factory
	logger  *slog.Logger
	file    *ast.SourceFile
	// User is shared by all decorator invocations of a pass, nil at start
	User any
}

// Original returns the parse-tree node a possibly rewritten node derives from
func (c *Context) Original(node ast.Node) ast.Node {
	return ast.OriginalOf(node)
}

// TypeOf returns type information of node, nil when the program has none
func (c *Context) TypeOf(node ast.Node) *comptime.TypeInfo {
	if c.program == nil || node == nil {
		return nil
	}
	return c.program.TypeOf(ast.OriginalOf(node))
}

// Parent returns the parse-tree parent of the original node
func (c *Context) Parent(node ast.Node) ast.Node {
	if c.program == nil || node == nil {
		return nil
	}
	return c.program.Parent(ast.OriginalOf(node))
}

// File returns the file being transformed
func (c *Context) File() *ast.SourceFile {
	return c.file
}

// Factory returns the pass factory
func (c *Context) Factory() *factory.Factory {
	return c.factory
}

// Logger returns the pass logger
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// UserValue returns the user slot as T, initialising it with init when unset
func UserValue[T any](c *Context, init func() T) T {
	if value, ok := c.User.(T); ok {
		return value
	}
	value := init()
	c.User = value
	return value
}
