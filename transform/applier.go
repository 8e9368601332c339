package transform

import (
	"fmt"

	"github.com/viant/comptime/ast"
)

// decorate applies one annotation to node and strips it from the continuation of the result
func (p *pass) decorate(node ast.Decoratable, annotation *ast.Decorator) (Result, error) {
	name := annotation.Name()
	decorator, ok := p.decorators[name]
	if !ok || decorator == nil {
		return Unchanged(node), nil
	}
	fn, err := decorator.Resolve(annotation)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve decorator @%s on %v %s: %w", name, node.Kind(), node.DeclName(), err)
	}
	result, err := fn(p.ctx, node, p.factory)
	if err != nil {
		return Result{}, fmt.Errorf("decorator @%s failed on %v %s: %w", name, node.Kind(), node.DeclName(), err)
	}
	p.observer.DecoratorApplied(name, result.Kind())
	p.logger.Debug("decorator applied", "decorator", name, "kind", node.Kind().String(), "name", node.DeclName(), "result", result.Kind().String())

	if result.Kind() != KindRemoved && len(result.nodes) == 0 {
		return Result{}, fmt.Errorf("decorator @%s returned an empty %v result for %v %s, use Removed to drop a declaration",
			name, result.Kind(), node.Kind(), node.DeclName())
	}
	switch result.Kind() {
	case KindRemoved:
		return result, nil
	case KindExpanded:
		nodes := make([]ast.Node, len(result.nodes))
		copy(nodes, result.nodes)
		if index := p.continuation(nodes); index != -1 {
			nodes[index] = p.strip(nodes[index], annotation)
		}
		return Result{kind: KindExpanded, nodes: nodes}, nil
	}
	return Replaced(p.strip(result.nodes[0], annotation)), nil
}

// continuation returns index of the first node produced by a factory update, -1 if none
func (p *pass) continuation(nodes []ast.Node) int {
	for i, node := range nodes {
		if _, ok := ast.AsDecoratable(node); ok && p.factory.IsUpdated(node) {
			return i
		}
	}
	return -1
}

func (p *pass) strip(node ast.Node, annotation *ast.Decorator) ast.Node {
	decoratable, ok := ast.AsDecoratable(node)
	if !ok {
		return node
	}
	for _, candidate := range decoratable.DecoratorList() {
		if candidate.ID() == annotation.ID() {
			return p.factory.WithoutDecorator(decoratable, annotation)
		}
	}
	return node
}

// fold applies all annotations of node, the one closest to the declaration first.
// A nil slice means the declaration was removed.
func (p *pass) fold(node ast.Decoratable) ([]ast.Node, error) {
	annotations := node.DecoratorList()
	nodes := []ast.Node{node}
	expanded := false
	for i := len(annotations) - 1; i >= 0; i-- {
		annotation := annotations[i]
		if len(nodes) == 0 {
			return nil, nil
		}
		if !expanded {
			decoratable, ok := ast.AsDecoratable(nodes[0])
			if !ok {
				break
			}
			result, err := p.decorate(decoratable, annotation)
			if err != nil {
				return nil, err
			}
			nodes, expanded = result.nodes, result.kind == KindExpanded
			continue
		}
		index := p.continuation(nodes)
		if index == -1 {
			break
		}
		result, err := p.decorate(nodes[index].(ast.Decoratable), annotation)
		if err != nil {
			return nil, err
		}
		next := make([]ast.Node, 0, len(nodes)+len(result.nodes)-1)
		next = append(next, nodes[:index]...)
		next = append(next, result.nodes...)
		next = append(next, nodes[index+1:]...)
		nodes = next
	}
	return nodes, nil
}
