package script

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/factory"
	"github.com/viant/comptime/transform"
	"go.starlark.net/starlark"
)

// Node exposes a decorated declaration to Starlark; it is immutable, methods return new nodes
type Node struct {
	decl    ast.Decoratable
	ctx     *transform.Context
	factory *factory.Factory
}

var (
	_ starlark.Value    = (*Node)(nil)
	_ starlark.HasAttrs = (*Node)(nil)
)

func newNode(ctx *transform.Context, decl ast.Decoratable, f *factory.Factory) *Node {
	return &Node{decl: decl, ctx: ctx, factory: f}
}

func (n *Node) String() string {
	return fmt.Sprintf("<%s %s>", kindName(n.decl), n.decl.DeclName())
}

func (n *Node) Type() string          { return "node" }
func (n *Node) Freeze()               {}
func (n *Node) Truth() starlark.Bool  { return starlark.True }
func (n *Node) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: node") }

type method func(n *Node, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

var methods = map[string]method{
	"rename":           (*Node).rename,
	"with_modifiers":   (*Node).withModifiers,
	"add_member":       (*Node).addMember,
	"with_initializer": (*Node).withInitializer,
	"with_body":        (*Node).withBody,
}

func (n *Node) Attr(name string) (starlark.Value, error) {
	switch name {
	case "kind":
		return starlark.String(kindName(n.decl)), nil
	case "name":
		return starlark.String(n.decl.DeclName()), nil
	case "decorators":
		var names []starlark.Value
		for _, decorator := range n.decl.DecoratorList() {
			names = append(names, starlark.String(decorator.Name()))
		}
		return starlark.NewList(names), nil
	case "modifiers":
		var modifiers []starlark.Value
		for _, modifier := range modifiersOf(n.decl) {
			modifiers = append(modifiers, starlark.String(modifier))
		}
		return starlark.Tuple(modifiers), nil
	case "source":
		return starlark.String(ast.Print(n.decl)), nil
	case "type":
		if info := n.ctx.TypeOf(n.decl); info != nil {
			return starlark.String(info.Text), nil
		}
		return starlark.None, nil
	case "file":
		if file := n.ctx.File(); file != nil {
			return starlark.String(file.Path), nil
		}
		return starlark.None, nil
	case "members":
		var members []starlark.Value
		if class, ok := n.decl.(*ast.ClassDecl); ok {
			for _, member := range class.Members {
				if decoratable, ok := ast.AsDecoratable(member); ok {
					members = append(members, newNode(n.ctx, decoratable, n.factory))
				}
			}
		}
		return starlark.NewList(members), nil
	case "state":
		return transform.UserValue(n.ctx, func() *starlark.Dict { return starlark.NewDict(8) }), nil
	}
	if fn, ok := methods[name]; ok {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			return fn(n, args, kwargs)
		}), nil
	}
	return nil, nil
}

func (n *Node) AttrNames() []string {
	ret := []string{"decorators", "file", "kind", "members", "modifiers", "name", "source", "state", "type"}
	for name := range methods {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func (n *Node) rename(args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs("rename", args, kwargs, 1, &name); err != nil {
		return nil, err
	}
	return newNode(n.ctx, n.factory.WithName(n.decl, name), n.factory), nil
}

func (n *Node) withModifiers(args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("with_modifiers: unexpected keyword arguments")
	}
	var modifiers []string
	for _, arg := range args {
		modifier, ok := starlark.AsString(arg)
		if !ok {
			return nil, fmt.Errorf("with_modifiers: expected string, got %s", arg.Type())
		}
		modifiers = append(modifiers, modifier)
	}
	var updated ast.Decoratable
	switch actual := n.decl.(type) {
	case *ast.ClassDecl:
		class := n.factory.UpdateClassDecl(actual, actual.Decorators, actual.Name, actual.Members)
		class.Modifiers = modifiers
		updated = class
	case *ast.MethodDecl:
		method := n.factory.UpdateMethodDecl(actual, actual.Decorators, actual.Name, actual.Body)
		method.Modifiers = modifiers
		updated = method
	case *ast.PropertyDecl:
		property := n.factory.UpdatePropertyDecl(actual, actual.Decorators, actual.Name, actual.Initializer)
		property.Modifiers = modifiers
		updated = property
	}
	return newNode(n.ctx, updated, n.factory), nil
}

func (n *Node) addMember(args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var code string
	if err := starlark.UnpackPositionalArgs("add_member", args, kwargs, 1, &code); err != nil {
		return nil, err
	}
	class, ok := n.decl.(*ast.ClassDecl)
	if !ok {
		return nil, fmt.Errorf("add_member: expected class, got %s", kindName(n.decl))
	}
	members := append(append([]ast.Node{}, class.Members...), n.factory.Text(code))
	return newNode(n.ctx, n.factory.WithMembers(class, members...), n.factory), nil
}

func (n *Node) withInitializer(args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var code string
	if err := starlark.UnpackPositionalArgs("with_initializer", args, kwargs, 1, &code); err != nil {
		return nil, err
	}
	property, ok := n.decl.(*ast.PropertyDecl)
	if !ok {
		return nil, fmt.Errorf("with_initializer: expected property, got %s", kindName(n.decl))
	}
	return newNode(n.ctx, n.factory.WithInitializer(property, n.factory.Text(code)), n.factory), nil
}

func (n *Node) withBody(args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var code string
	if err := starlark.UnpackPositionalArgs("with_body", args, kwargs, 1, &code); err != nil {
		return nil, err
	}
	method, ok := n.decl.(*ast.MethodDecl)
	if !ok {
		return nil, fmt.Errorf("with_body: expected method, got %s", kindName(n.decl))
	}
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, "{") {
		code = "{ " + code + " }"
	}
	return newNode(n.ctx, n.factory.WithBody(method, n.factory.Text(code)), n.factory), nil
}

func kindName(decl ast.Decoratable) string {
	switch decl.(type) {
	case *ast.ClassDecl:
		return "class"
	case *ast.MethodDecl:
		return "method"
	case *ast.PropertyDecl:
		return "property"
	}
	return "unknown"
}

func modifiersOf(decl ast.Decoratable) []string {
	switch actual := decl.(type) {
	case *ast.ClassDecl:
		return actual.Modifiers
	case *ast.MethodDecl:
		return actual.Modifiers
	case *ast.PropertyDecl:
		return actual.Modifiers
	}
	return nil
}
