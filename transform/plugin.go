// Package transform applies compile-time decorators to parsed TypeScript sources.
//
// A Plugin holds the decorator registry and the traversal configuration. Its Pass
// method binds the plugin to a host program and returns a Transformer rewriting one
// source file at a time:
//
//	plugin := transform.New(transform.Decorators{"first": first}, comptime.Config{Traversal: comptime.Preorder})
//	transformer, err := plugin.Pass(program)
//	for _, file := range program.Files() {
//		rewritten, err := transformer(file)
//	}
//
// All files transformed by one Transformer share a Context, so the user slot set by
// one decorator is visible to later invocations in the same pass.
package transform

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"time"

	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/factory"
	"github.com/viant/comptime/logging"
)

// Transformer rewrites one source file
type Transformer func(file *ast.SourceFile) (*ast.SourceFile, error)

// Plugin represents a decorator registry bound to a configuration
type Plugin struct {
	decorators Decorators
	config     comptime.Config
	logger     *slog.Logger
	observer   Observer
}

// Option represents plugin option
type Option func(*Plugin)

// WithLogger sets pass logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithObserver sets pass observer
func WithObserver(observer Observer) Option {
	return func(p *Plugin) {
		if observer != nil {
			p.observer = observer
		}
	}
}

// New creates a plugin; config defaults to postorder traversal
func New(decorators Decorators, config ...comptime.Config) *Plugin {
	ret := &Plugin{
		decorators: decorators,
		config:     comptime.DefaultConfig(),
		logger:     logging.NewNop(),
		observer:   nopObserver{},
	}
	if len(config) > 0 {
		ret.config = normalize(config[0])
	}
	return ret
}

// With applies options and returns the plugin
func (p *Plugin) With(options ...Option) *Plugin {
	for _, option := range options {
		option(p)
	}
	return p
}

// Config returns plugin configuration
func (p *Plugin) Config() comptime.Config {
	return p.config
}

// Pass creates a transformer for a program. It accepts either the program alone, or a
// configuration followed by the program; an empty configuration, as injected by some
// loaders, keeps the plugin configuration.
func (p *Plugin) Pass(args ...any) (Transformer, error) {
	config := p.config
	var candidate any
	switch len(args) {
	case 1:
		candidate = args[0]
	case 2:
		if !isEmptyConfig(args[0]) {
			override, err := asConfig(args[0])
			if err != nil {
				return nil, err
			}
			config = normalize(override)
		}
		candidate = args[1]
	default:
		return nil, comptime.NewConfigurationError(comptime.ReasonArity, fmt.Sprintf("Pass(%d arguments)", len(args)),
			"expected 1 or 2 arguments, got %d", len(args))
	}
	program, ok := candidate.(Program)
	if !ok || program == nil {
		return nil, comptime.NewConfigurationError(comptime.ReasonArity, fmt.Sprintf("%T", candidate),
			"expected a program as the last argument, got %T", candidate)
	}
	if _, err := comptime.ParseTraversal(string(config.Traversal)); err != nil {
		return nil, err
	}
	f := factory.New(program.Arena())
	state := &pass{
		decorators: p.decorators,
		config:     config,
		factory:    f,
		logger:     p.logger,
		observer:   p.observer,
		ctx:        &Context{program: program, factory: f, logger: p.logger},
	}
	return state.transform, nil
}

type pass struct {
	decorators Decorators
	config     comptime.Config
	factory    *factory.Factory
	logger     *slog.Logger
	observer   Observer
	ctx        *Context
}

func (p *pass) transform(file *ast.SourceFile) (*ast.SourceFile, error) {
	if file == nil {
		return nil, nil
	}
	started := time.Now()
	p.ctx.file = file
	node, err := p.walk(file)
	p.observer.FileTransformed(file.Path, time.Since(started), err)
	if err != nil {
		return nil, err
	}
	rewritten, ok := node.(*ast.SourceFile)
	if !ok {
		return nil, fmt.Errorf("failed to transform %s: unexpected root %v", file.Path, node.Kind())
	}
	p.logger.Debug("file transformed", "path", file.Path, "changed", rewritten.ID() != file.ID(), "elapsed", time.Since(started))
	return rewritten, nil
}

func normalize(config comptime.Config) comptime.Config {
	if config.Traversal == "" {
		config.Traversal = comptime.Postorder
	}
	return config
}

func isEmptyConfig(arg any) bool {
	switch actual := arg.(type) {
	case nil:
		return false
	case comptime.Config:
		return actual.IsEmpty()
	case *comptime.Config:
		return actual == nil || actual.IsEmpty()
	}
	value := reflect.ValueOf(arg)
	switch value.Kind() {
	case reflect.Map:
		return value.Len() == 0
	case reflect.Struct:
		return value.NumField() == 0
	}
	return false
}

func asConfig(arg any) (comptime.Config, error) {
	switch actual := arg.(type) {
	case comptime.Config:
		return actual, nil
	case *comptime.Config:
		return *actual, nil
	case map[string]any:
		config := comptime.Config{}
		if value, ok := actual["traversal"]; ok {
			name, ok := value.(string)
			if !ok {
				return config, comptime.NewConfigurationError(comptime.ReasonTraversal, fmt.Sprintf("%v", value),
					"expected traversal name, got %T", value)
			}
			traversal, err := comptime.ParseTraversal(name)
			if err != nil {
				return config, err
			}
			config.Traversal = traversal
		}
		if value, ok := actual["maxVisits"]; ok {
			maxVisits, err := asCount(value)
			if err != nil {
				return config, err
			}
			config.MaxVisits = maxVisits
		}
		return config, nil
	}
	return comptime.Config{}, comptime.NewConfigurationError(comptime.ReasonArity, fmt.Sprintf("%T", arg),
		"expected a configuration as the first of 2 arguments, got %T", arg)
}

// asCount converts any numeric kind holding a non-negative whole number, as decoded from yaml or json
func asCount(value any) (int, error) {
	number := reflect.ValueOf(value)
	var ret float64
	switch number.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ret = float64(number.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ret = float64(number.Uint())
	case reflect.Float32, reflect.Float64:
		ret = number.Float()
	default:
		return 0, comptime.NewConfigurationError(comptime.ReasonArity, fmt.Sprintf("%v", value),
			"expected maxVisits to be a number, got %T", value)
	}
	if ret < 0 || ret != math.Trunc(ret) {
		return 0, comptime.NewConfigurationError(comptime.ReasonArity, fmt.Sprintf("%v", value),
			"expected maxVisits to be a non-negative whole number, got %v", value)
	}
	return int(ret), nil
}
