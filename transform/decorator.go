package transform

import (
	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/factory"
	"github.com/viant/comptime/literal"
)

// Decorator resolves a decorator annotation into the function applied to the declaration
type Decorator interface {
	Resolve(annotation *ast.Decorator) (Func, error)
}

// Decorators maps decorator names to implementations; names not in the map are left to other tools
type Decorators map[string]Decorator

// Func is a direct decorator, used in the bare form `@name`
type Func func(ctx *Context, node ast.Decoratable, f *factory.Factory) (Result, error)

// Resolve returns f for a bare annotation
func (f Func) Resolve(annotation *ast.Decorator) (Func, error) {
	if annotation.IsCall() {
		source := ast.Print(annotation)
		return nil, comptime.NewConfigurationError(comptime.ReasonUsage, source,
			"decorator %s takes no arguments, remove the call: `%s`", annotation.Name(), source)
	}
	return f, nil
}

// FactoryFunc is a decorator factory, used in the call form `@name(args...)`; args are evaluated literals
type FactoryFunc func(args ...literal.Value) (Func, error)

// Resolve evaluates annotation arguments and invokes the factory
func (f FactoryFunc) Resolve(annotation *ast.Decorator) (Func, error) {
	source := ast.Print(annotation)
	if !annotation.IsCall() {
		return nil, comptime.NewConfigurationError(comptime.ReasonUsage, source,
			"decorator %s is a factory and must be called: `%s(...)`", annotation.Name(), source)
	}
	args, err := literal.EvaluateAll(annotation.Arguments())
	if err != nil {
		return nil, err
	}
	fn, err := f(args...)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, comptime.NewConfigurationError(comptime.ReasonUsage, source,
			"decorator factory %s returned no decorator: `%s`", annotation.Name(), source)
	}
	return fn, nil
}

// ClassFunc adapts a class-only decorator; other declarations pass through unchanged
func ClassFunc(fn func(ctx *Context, class *ast.ClassDecl, f *factory.Factory) (Result, error)) Func {
	return func(ctx *Context, node ast.Decoratable, f *factory.Factory) (Result, error) {
		if class, ok := node.(*ast.ClassDecl); ok {
			return fn(ctx, class, f)
		}
		return Unchanged(node), nil
	}
}

// MethodFunc adapts a method-only decorator; other declarations pass through unchanged
func MethodFunc(fn func(ctx *Context, method *ast.MethodDecl, f *factory.Factory) (Result, error)) Func {
	return func(ctx *Context, node ast.Decoratable, f *factory.Factory) (Result, error) {
		if method, ok := node.(*ast.MethodDecl); ok {
			return fn(ctx, method, f)
		}
		return Unchanged(node), nil
	}
}

// PropertyFunc adapts a property-only decorator; other declarations pass through unchanged
func PropertyFunc(fn func(ctx *Context, property *ast.PropertyDecl, f *factory.Factory) (Result, error)) Func {
	return func(ctx *Context, node ast.Decoratable, f *factory.Factory) (Result, error) {
		if property, ok := node.(*ast.PropertyDecl); ok {
			return fn(ctx, property, f)
		}
		return Unchanged(node), nil
	}
}
