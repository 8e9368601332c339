package factory

import "github.com/viant/comptime/ast"

// UpdateClassDecl returns a copy of class with decorators, name and members replaced
func (f *Factory) UpdateClassDecl(class *ast.ClassDecl, decorators []*ast.Decorator, name *ast.Identifier, members []ast.Node) *ast.ClassDecl {
	return updated(f, f.builder.UpdateClassDecl(class, decorators, name, members))
}

// UpdateMethodDecl returns a copy of method with decorators, name and body replaced
func (f *Factory) UpdateMethodDecl(method *ast.MethodDecl, decorators []*ast.Decorator, name ast.Node, body ast.Node) *ast.MethodDecl {
	return updated(f, f.builder.UpdateMethodDecl(method, decorators, name, body))
}

// UpdatePropertyDecl returns a copy of property with decorators, name and initializer replaced
func (f *Factory) UpdatePropertyDecl(property *ast.PropertyDecl, decorators []*ast.Decorator, name ast.Node, initializer ast.Node) *ast.PropertyDecl {
	return updated(f, f.builder.UpdatePropertyDecl(property, decorators, name, initializer))
}

// WithName returns a copy of node renamed to name
func (f *Factory) WithName(node ast.Decoratable, name string) ast.Decoratable {
	switch actual := node.(type) {
	case *ast.ClassDecl:
		return f.UpdateClassDecl(actual, actual.Decorators, f.builder.Identifier(name), actual.Members)
	case *ast.MethodDecl:
		return f.UpdateMethodDecl(actual, actual.Decorators, renamed(f.builder, actual.Name, name), actual.Body)
	case *ast.PropertyDecl:
		return f.UpdatePropertyDecl(actual, actual.Decorators, renamed(f.builder, actual.Name, name), actual.Initializer)
	}
	return node
}

// WithDecorators returns a copy of node with decorators replaced
func (f *Factory) WithDecorators(node ast.Decoratable, decorators []*ast.Decorator) ast.Decoratable {
	switch actual := node.(type) {
	case *ast.ClassDecl:
		return f.UpdateClassDecl(actual, decorators, actual.Name, actual.Members)
	case *ast.MethodDecl:
		return f.UpdateMethodDecl(actual, decorators, actual.Name, actual.Body)
	case *ast.PropertyDecl:
		return f.UpdatePropertyDecl(actual, decorators, actual.Name, actual.Initializer)
	}
	return node
}

// WithMembers returns a copy of class with members replaced
func (f *Factory) WithMembers(class *ast.ClassDecl, members ...ast.Node) *ast.ClassDecl {
	return f.UpdateClassDecl(class, class.Decorators, class.Name, members)
}

// WithInitializer returns a copy of property with initializer replaced
func (f *Factory) WithInitializer(property *ast.PropertyDecl, initializer ast.Node) *ast.PropertyDecl {
	return f.UpdatePropertyDecl(property, property.Decorators, property.Name, initializer)
}

// WithBody returns a copy of method with body replaced
func (f *Factory) WithBody(method *ast.MethodDecl, body ast.Node) *ast.MethodDecl {
	return f.UpdateMethodDecl(method, method.Decorators, method.Name, body)
}

// WithoutDecorator returns a copy of node without decorator, other decorators keep their order
func (f *Factory) WithoutDecorator(node ast.Decoratable, decorator *ast.Decorator) ast.Decoratable {
	return updated(f, f.builder.WithoutDecorator(node, decorator))
}

// renamed keeps private names private
func renamed(builder *ast.Builder, current ast.Node, name string) ast.Node {
	if _, ok := current.(*ast.PrivateIdentifier); ok {
		return builder.PrivateIdentifier(name)
	}
	if len(name) > 0 && name[0] == '#' {
		return builder.PrivateIdentifier(name)
	}
	return builder.Identifier(name)
}
