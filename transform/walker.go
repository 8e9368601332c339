package transform

import (
	"fmt"

	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
)

// frame represents a node whose rewritable edges are being walked
type frame struct {
	node   ast.Node
	edges  [][]ast.Node
	out    [][]ast.Node
	edge   int
	index  int
	parent *frame
	// fold applies the node's own decorators after its children were walked
	fold bool
}

func newFrame(node ast.Node, parent *frame, fold bool) *frame {
	edges := ast.Edges(node)
	return &frame{node: node, edges: edges, out: make([][]ast.Node, len(edges)), parent: parent, fold: fold}
}

// deliver appends walked nodes to the edge currently walked by the frame
func (f *frame) deliver(nodes ...ast.Node) {
	f.out[f.edge] = append(f.out[f.edge], nodes...)
}

// walk rewrites root depth first using an explicit stack of frames
func (p *pass) walk(root ast.Node) (ast.Node, error) {
	var result []ast.Node
	stack := []*frame{newFrame(root, nil, false)}
	visits := 1
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.edge < len(top.edges) {
			if top.index >= len(top.edges[top.edge]) {
				top.edge++
				top.index = 0
				continue
			}
			child := top.edges[top.edge][top.index]
			top.index++
			frames, err := p.visit(child, top)
			if err != nil {
				return nil, err
			}
			if visits += len(frames); p.config.MaxVisits > 0 && visits > p.config.MaxVisits {
				return nil, fmt.Errorf("failed to walk %s: exceeded %d node visits", p.path(), p.config.MaxVisits)
			}
			for i := len(frames) - 1; i >= 0; i-- {
				stack = append(stack, frames[i])
			}
			continue
		}

		stack = stack[:len(stack)-1]
		node := ast.Rebuild(p.factory.Builder(), top.node, top.out)
		nodes := []ast.Node{node}
		if top.fold {
			var err error
			if nodes, err = p.fold(node.(ast.Decoratable)); err != nil {
				return nil, err
			}
		}
		if top.parent == nil {
			result = nodes
			continue
		}
		top.parent.deliver(nodes...)
	}
	if len(result) != 1 {
		return nil, fmt.Errorf("failed to walk %s: root was replaced by %d nodes", p.path(), len(result))
	}
	return result[0], nil
}

// visit returns frames to walk for child, delivering leaves directly to parent
func (p *pass) visit(child ast.Node, parent *frame) ([]*frame, error) {
	decoratable, ok := ast.AsDecoratable(child)
	if !ok || len(decoratable.DecoratorList()) == 0 {
		if len(ast.Edges(child)) == 0 {
			parent.deliver(child)
			return nil, nil
		}
		return []*frame{newFrame(child, parent, false)}, nil
	}
	if child.Kind() == ast.KindClassDecl && p.config.Traversal == comptime.Postorder {
		return []*frame{newFrame(child, parent, true)}, nil
	}
	nodes, err := p.fold(decoratable)
	if err != nil {
		return nil, err
	}
	frames := make([]*frame, 0, len(nodes))
	for _, node := range nodes {
		frames = append(frames, newFrame(node, parent, false))
	}
	return frames, nil
}

func (p *pass) path() string {
	if p.ctx.file == nil {
		return ""
	}
	return p.ctx.file.Path
}
