// Package comptime holds the types shared by the compile-time decorator engine:
// the traversal policy, the pass configuration, the host type descriptor and the
// configuration error every misconfigured decorator invocation is reported with.
package comptime

import (
	"fmt"
	"strings"
)

// Traversal configures the order in which decorators on a class and its members are applied.
//
// Regardless of the policy, multiple decorators on a single declaration are always
// applied in reverse source order: given `@third @second @first class Foo {}`, first
// applies to Foo, second to first's output and third to second's output.
type Traversal string

const (
	// Preorder applies decorators on a class before decorators on its members.
	Preorder Traversal = "preorder"
	// Postorder applies decorators on members before decorators on their class.
	Postorder Traversal = "postorder"
)

// ParseTraversal converts a traversal name, case insensitively.
func ParseTraversal(name string) (Traversal, error) {
	switch Traversal(strings.ToLower(strings.TrimSpace(name))) {
	case Preorder:
		return Preorder, nil
	case Postorder, "":
		return Postorder, nil
	}
	return "", &ConfigurationError{
		Reason: ReasonTraversal,
		Source: name,
		Msg:    fmt.Sprintf("unknown traversal %q, expected %q or %q", name, Preorder, Postorder),
	}
}

// Config represents pass configuration
type Config struct {
	Traversal Traversal `koanf:"traversal" yaml:"traversal,omitempty"`
	// MaxVisits bounds the number of nodes a single file walk may visit, 0 means unlimited
	MaxVisits int `koanf:"maxVisits" yaml:"maxVisits,omitempty"`
}

// DefaultConfig returns postorder configuration
func DefaultConfig() Config {
	return Config{Traversal: Postorder}
}

// IsEmpty returns true when no field is set, the shape external loaders inject as a placeholder
func (c Config) IsEmpty() bool {
	return c == Config{}
}

// TypeInfo describes what the host program knows about a node's type.
type TypeInfo struct {
	Text string `yaml:"text"` // type as written, e.g. "string" or "Promise<void>"
	Kind string `yaml:"kind"` // annotation, literal or class
}

// Type info kinds
const (
	TypeKindAnnotation = "annotation"
	TypeKindLiteral    = "literal"
	TypeKindClass      = "class"
)
