// Package ast defines the immutable syntax tree the decorator engine rewrites.
//
// Nodes produced by a parser keep their verbatim source text so untouched
// declarations are emitted byte for byte; nodes built or updated afterwards are
// printed from their structure.
package ast

import "sync/atomic"

// ID identifies a node within an arena
type ID uint64

// Arena allocates monotonically increasing node ids; it is safe for concurrent use.
type Arena struct {
	next atomic.Uint64
}

// NewArena creates an arena
func NewArena() *Arena {
	return &Arena{}
}

// Next returns a fresh id
func (a *Arena) Next() ID {
	return ID(a.next.Add(1))
}

// Span represents byte offsets of a node in its source file
type Span struct {
	Start int
	End   int
}

// Node represents a syntax tree node. Nodes must be treated as immutable; use a Builder
// or a factory to derive modified copies.
type Node interface {
	ID() ID
	Kind() Kind
	// Span returns the byte range of a parse-tree node, zero otherwise
	Span() Span
	// Source returns verbatim text of an untouched parse-tree node, empty otherwise
	Source() string
	// Original returns the node this one was derived from, nil for parse-tree and created nodes
	Original() Node
	node() *base
}

// Decoratable is a declaration that can carry decorators
type Decoratable interface {
	Node
	DecoratorList() []*Decorator
	DeclName() string
}

type base struct {
	id       ID
	span     Span
	source   string
	parsed   bool
	original Node
}

func (b *base) ID() ID         { return b.id }
func (b *base) Span() Span     { return b.span }
func (b *base) Source() string { return b.source }
func (b *base) Original() Node { return b.original }
func (b *base) node() *base    { return b }

// IsParseTree returns true if the node was produced by a parser
func IsParseTree(n Node) bool {
	if n == nil {
		return false
	}
	return n.node().parsed
}

// OriginalOf returns the parse-tree node n derives from, or n itself
func OriginalOf(n Node) Node {
	if n == nil {
		return nil
	}
	if orig := n.Original(); orig != nil {
		return orig
	}
	return n
}

// AsDecoratable returns n as Decoratable if it is a class, method or property declaration
func AsDecoratable(n Node) (Decoratable, bool) {
	if n == nil || !n.Kind().IsDecoratable() {
		return nil, false
	}
	d, ok := n.(Decoratable)
	return d, ok
}

// NameText returns the textual name of an identifier-like node
func NameText(n Node) string {
	switch actual := n.(type) {
	case nil:
		return ""
	case *Identifier:
		return actual.Text
	case *PrivateIdentifier:
		return actual.Text
	case *StringLiteral:
		return actual.Value
	case *NumericLiteral:
		return actual.Text
	case *Text:
		return actual.Value
	}
	return Print(n)
}
