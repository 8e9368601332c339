package emitter

import (
	"fmt"
	"path"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/inspector/typescript"
)

// Option represents JavaScript emitter option
type Option func(*JavaScript) error

// WithTarget sets ECMAScript target, e.g. es2020 or esnext
func WithTarget(name string) Option {
	return func(e *JavaScript) error {
		target, err := ParseTarget(name)
		if err != nil {
			return err
		}
		e.target = target
		return nil
	}
}

// WithTsconfig sets raw tsconfig.json content honoured by the transpiler
func WithTsconfig(raw string) Option {
	return func(e *JavaScript) error {
		e.tsconfig = raw
		return nil
	}
}

// JavaScript prints files as TypeScript and transpiles them with esbuild
type JavaScript struct {
	printer  TypeScript
	target   api.Target
	tsconfig string
}

// NewJavaScript creates a JavaScript emitter
func NewJavaScript(options ...Option) (*JavaScript, error) {
	ret := &JavaScript{target: api.ES2020}
	for _, option := range options {
		if err := option(ret); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (e *JavaScript) Emit(file *ast.SourceFile) ([]byte, error) {
	code, err := e.printer.Emit(file)
	if err != nil {
		return nil, err
	}
	loader := api.LoaderTS
	if typescript.IsTSX(file.Path) {
		loader = api.LoaderTSX
	}
	result := api.Transform(string(code), api.TransformOptions{
		Loader:      loader,
		Target:      e.target,
		Format:      api.FormatESModule,
		Sourcefile:  file.Path,
		TsconfigRaw: e.tsconfig,
		LogLevel:    api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		var messages []string
		for _, message := range result.Errors {
			if message.Location != nil {
				messages = append(messages, fmt.Sprintf("%s:%d:%d: %s", message.Location.File, message.Location.Line, message.Location.Column, message.Text))
				continue
			}
			messages = append(messages, message.Text)
		}
		return nil, fmt.Errorf("failed to transpile %s:\n%s", file.Path, strings.Join(messages, "\n"))
	}
	return result.Code, nil
}

// OutputPath replaces .ts/.tsx extension with .js
func (e *JavaScript) OutputPath(location string) string {
	ext := path.Ext(location)
	switch strings.ToLower(ext) {
	case ".ts", ".tsx", ".mts", ".cts":
		return strings.TrimSuffix(location, ext) + ".js"
	}
	return location
}

var targets = map[string]api.Target{
	"esnext": api.ESNext,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
}

// ParseTarget converts target name
func ParseTarget(name string) (api.Target, error) {
	if name == "" {
		return api.ES2020, nil
	}
	if target, ok := targets[strings.ToLower(name)]; ok {
		return target, nil
	}
	return api.DefaultTarget, fmt.Errorf("unsupported target: %v", name)
}
