package transform

import "github.com/viant/comptime/ast"

// ResultKind classifies decorator output
type ResultKind int

const (
	KindUnchanged ResultKind = iota
	KindReplaced
	KindExpanded
	KindRemoved
)

func (k ResultKind) String() string {
	switch k {
	case KindUnchanged:
		return "unchanged"
	case KindReplaced:
		return "replaced"
	case KindExpanded:
		return "expanded"
	case KindRemoved:
		return "removed"
	}
	return "unknown"
}

// Result represents what a decorator produced in place of the declaration
type Result struct {
	kind  ResultKind
	nodes []ast.Node
}

// Unchanged returns node as is
func Unchanged(node ast.Node) Result {
	if node == nil {
		return Removed()
	}
	return Result{kind: KindUnchanged, nodes: []ast.Node{node}}
}

// Replaced substitutes the declaration with node
func Replaced(node ast.Node) Result {
	if node == nil {
		return Removed()
	}
	return Result{kind: KindReplaced, nodes: []ast.Node{node}}
}

// Expanded substitutes the declaration with nodes; the first node produced by a factory update
// continues to receive the remaining decorators
func Expanded(nodes ...ast.Node) Result {
	ret := Result{kind: KindExpanded}
	for _, node := range nodes {
		if node != nil {
			ret.nodes = append(ret.nodes, node)
		}
	}
	if len(ret.nodes) == 0 {
		return Removed()
	}
	return ret
}

// Removed drops the declaration; remaining decorators are not applied
func Removed() Result {
	return Result{kind: KindRemoved}
}

func (r Result) Kind() ResultKind { return r.kind }

// Nodes returns produced nodes, empty when removed
func (r Result) Nodes() []ast.Node { return r.nodes }

// Node returns the single produced node, nil for removed or expanded results
func (r Result) Node() ast.Node {
	if r.kind == KindExpanded || len(r.nodes) != 1 {
		return nil
	}
	return r.nodes[0]
}
