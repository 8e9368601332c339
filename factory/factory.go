// Package factory provides the node factory handed to decorators.
//
// Every node built through a Factory is recorded: constructors add their result to
// the Created set, update operations add their result to the Updated set. The
// traversal uses the Updated set to find the continuation of a declaration among
// several nodes returned by a decorator.
package factory

import (
	"github.com/viant/comptime/ast"
)

// Factory records provenance of nodes it builds; it is scoped to one pass and is not safe for concurrent use
type Factory struct {
	builder *ast.Builder
	created map[ast.ID]struct{}
	updated map[ast.ID]struct{}
}

// New creates a factory allocating ids from arena
func New(arena *ast.Arena) *Factory {
	return &Factory{
		builder: ast.NewBuilder(arena),
		created: make(map[ast.ID]struct{}),
		updated: make(map[ast.ID]struct{}),
	}
}

// Builder returns the unrecorded primitive builder the factory wraps
func (f *Factory) Builder() *ast.Builder {
	return f.builder
}

// IsCreated returns true if node was built by a factory constructor
func (f *Factory) IsCreated(node ast.Node) bool {
	if node == nil {
		return false
	}
	_, ok := f.created[node.ID()]
	return ok
}

// IsUpdated returns true if node was produced by a factory update
func (f *Factory) IsUpdated(node ast.Node) bool {
	if node == nil {
		return false
	}
	_, ok := f.updated[node.ID()]
	return ok
}

func created[T ast.Node](f *Factory, node T) T {
	f.created[node.ID()] = struct{}{}
	return node
}

func updated[T ast.Node](f *Factory, node T) T {
	f.updated[node.ID()] = struct{}{}
	return node
}
