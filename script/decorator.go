// Package script loads compile-time decorators written in Starlark.
//
// Every public function of a .star file becomes a decorator named after the function.
// A function taking only the node is used bare (`@readonly`); a function taking more
// parameters is a factory used in the call form (`@tag("x-button")`), its extra
// parameters receive the evaluated literal arguments:
//
//	def readonly(node):
//	    return node.with_modifiers("readonly", *node.modifiers)
//
//	def tag(node, name):
//	    return [node, "customElements.define(%r, %s);" % (name, node.name)]
//
// A decorator returns the node (possibly rewritten), None to remove the declaration,
// a string of code, or a list of nodes and code strings.
package script

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/factory"
	"github.com/viant/comptime/literal"
	"github.com/viant/comptime/transform"
	"go.starlark.net/starlark"
)

// Decorator adapts a Starlark function to transform.Decorator
type Decorator struct {
	Name    string
	Path    string
	fn      starlark.Callable
	params  int
	varargs bool
}

// NewDecorator creates a decorator from a Starlark callable
func NewDecorator(path string, name string, fn starlark.Callable) *Decorator {
	ret := &Decorator{Name: name, Path: path, fn: fn, params: 1}
	if function, ok := fn.(*starlark.Function); ok {
		ret.params = function.NumParams()
		if function.HasKwargs() {
			ret.params--
		}
		if function.HasVarargs() {
			ret.params--
			ret.varargs = true
		}
	}
	return ret
}

// IsFactory returns true when the decorator is used in the call form
func (d *Decorator) IsFactory() bool {
	return d.params > 1 || d.varargs
}

// Resolve implements transform.Decorator
func (d *Decorator) Resolve(annotation *ast.Decorator) (transform.Func, error) {
	source := ast.Print(annotation)
	if !d.IsFactory() {
		if annotation.IsCall() {
			return nil, comptime.NewConfigurationError(comptime.ReasonUsage, source,
				"decorator %s takes no arguments, remove the call: `%s`", d.Name, source)
		}
		return d.call(nil), nil
	}
	if !annotation.IsCall() {
		return nil, comptime.NewConfigurationError(comptime.ReasonUsage, source,
			"decorator %s is a factory and must be called: `%s(...)`", d.Name, source)
	}
	values, err := literal.EvaluateAll(annotation.Arguments())
	if err != nil {
		return nil, err
	}
	args := make(starlark.Tuple, 0, len(values))
	for _, value := range values {
		arg, err := toStarlark(value)
		if err != nil {
			return nil, fmt.Errorf("invalid argument of %s: %w", source, err)
		}
		args = append(args, arg)
	}
	return d.call(args), nil
}

func (d *Decorator) call(args starlark.Tuple) transform.Func {
	return func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
		logger := ctx.Logger()
		thread := &starlark.Thread{
			Name: "decorator:" + d.Name,
			Print: func(_ *starlark.Thread, msg string) {
				logger.Info(msg, slog.String("decorator", d.Name), slog.String("script", d.Path))
			},
		}
		input := newNode(ctx, node, f)
		callArgs := append(starlark.Tuple{input}, args...)
		value, err := starlark.Call(thread, d.fn, callArgs, nil)
		if err != nil {
			if evalErr, ok := err.(*starlark.EvalError); ok {
				return transform.Result{}, fmt.Errorf("%s: %s", d.Path, evalErr.Backtrace())
			}
			return transform.Result{}, fmt.Errorf("%s: %w", d.Path, err)
		}
		return asResult(input, value, f)
	}
}

func asResult(input *Node, value starlark.Value, f *factory.Factory) (transform.Result, error) {
	switch actual := value.(type) {
	case starlark.NoneType:
		return transform.Removed(), nil
	case *Node:
		if actual.decl == input.decl {
			return transform.Unchanged(actual.decl), nil
		}
		return transform.Replaced(actual.decl), nil
	case starlark.String:
		return transform.Replaced(f.Fragment(f.Text(string(actual)))), nil
	case starlark.Indexable:
		nodes := make([]ast.Node, 0, actual.Len())
		for i := 0; i < actual.Len(); i++ {
			switch item := actual.Index(i).(type) {
			case *Node:
				if item.decl == input.decl {
					// returned as is, it continues to receive the remaining decorators
					nodes = append(nodes, f.WithDecorators(item.decl, item.decl.DecoratorList()))
					continue
				}
				nodes = append(nodes, item.decl)
			case starlark.String:
				nodes = append(nodes, f.Fragment(f.Text(string(item))))
			case starlark.NoneType:
			default:
				return transform.Result{}, fmt.Errorf("unsupported result item %d: %s", i, item.Type())
			}
		}
		return transform.Expanded(nodes...), nil
	}
	return transform.Result{}, fmt.Errorf("unsupported result: %s, expected node, None, string or list", value.Type())
}

// toStarlark converts an evaluated literal
func toStarlark(value literal.Value) (starlark.Value, error) {
	switch actual := value.(type) {
	case nil, literal.Undefined:
		return starlark.None, nil
	case string:
		return starlark.String(actual), nil
	case bool:
		return starlark.Bool(actual), nil
	case float64:
		if actual == float64(int64(actual)) {
			return starlark.MakeInt64(int64(actual)), nil
		}
		return starlark.Float(actual), nil
	case *big.Int:
		return starlark.MakeBigInt(actual), nil
	case literal.Regex:
		return starlark.String(actual.String()), nil
	case []literal.Value:
		list := make([]starlark.Value, len(actual))
		for i, item := range actual {
			converted, err := toStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = converted
		}
		return starlark.NewList(list), nil
	case map[string]literal.Value:
		dict := starlark.NewDict(len(actual))
		for key, item := range actual {
			converted, err := toStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", key, err)
			}
			if err := dict.SetKey(starlark.String(key), converted); err != nil {
				return nil, fmt.Errorf("dict setkey %q: %w", key, err)
			}
		}
		return dict, nil
	}
	return nil, fmt.Errorf("unsupported type: %T", value)
}
