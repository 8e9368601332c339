package compiler_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/compiler"
	"github.com/viant/comptime/config"
	"github.com/viant/comptime/emitter"
	"github.com/viant/comptime/factory"
	"github.com/viant/comptime/inspector/typescript"
	"github.com/viant/comptime/program"
	"github.com/viant/comptime/transform"
	"gopkg.in/yaml.v3"
)

func newProgram(t *testing.T, sources map[string]string) *program.Program {
	t.Helper()
	inspector := typescript.NewInspector(nil)
	var files []*ast.SourceFile
	for name, source := range sources {
		file, err := inspector.InspectSource(context.Background(), name, []byte(source))
		require.Nil(t, err)
		files = append(files, file)
	}
	return program.New(inspector.Arena(), files...)
}

// numbered renames properties using a counter kept in the pass user slot
var numbered = transform.PropertyFunc(func(ctx *transform.Context, property *ast.PropertyDecl, f *factory.Factory) (transform.Result, error) {
	counter := transform.UserValue(ctx, func() *int { return new(int) })
	*counter++
	return transform.Replaced(f.WithName(property, fmt.Sprintf("n%d", *counter))), nil
})

func TestCompiler_TransformAll(t *testing.T) {
	sources := map[string]string{
		"src/a.ts":     "class A {\n  @numbered value = 1;\n}\n",
		"src/b.ts":     "class B {\n  @numbered value = 2;\n}\n",
		"src/plain.ts": "export const plain = true;\n",
	}
	var testCases = []struct {
		description string
		isolation   config.Isolation
		expect      map[string]string
	}{
		{
			description: "program isolation shares user slot",
			isolation:   config.IsolationProgram,
			expect: map[string]string{
				"src/a.ts":     "class A {\n  n1 = 1;\n}\n",
				"src/b.ts":     "class B {\n  n2 = 2;\n}\n",
				"src/plain.ts": "export const plain = true;\n",
			},
		},
		{
			description: "file isolation starts every file fresh",
			isolation:   config.IsolationFile,
			expect: map[string]string{
				"src/a.ts":     "class A {\n  n1 = 1;\n}\n",
				"src/b.ts":     "class B {\n  n1 = 2;\n}\n",
				"src/plain.ts": "export const plain = true;\n",
			},
		},
	}

	for _, testCase := range testCases {
		plugin := transform.New(transform.Decorators{"numbered": numbered})
		c := compiler.New(plugin, nil, compiler.WithIsolation(testCase.isolation), compiler.WithConcurrency(2))
		output, err := c.TransformAll(context.Background(), newProgram(t, sources))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual := map[string]string{}
		for location, data := range output.Files {
			actual[location] = string(data)
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, 2, output.Report.Rewritten(), testCase.description)
		assert.Equal(t, []string{"src/a.ts", "src/b.ts", "src/plain.ts"}, output.Paths(), testCase.description)
	}
}

func TestCompiler_Compile(t *testing.T) {
	prog := newProgram(t, map[string]string{
		"src/a.ts": "class A {\n  @numbered value: number = 1;\n}\n",
	})
	js, err := emitter.New(emitter.KindJavaScript)
	require.Nil(t, err)
	c := compiler.New(transform.New(transform.Decorators{"numbered": numbered}), js)
	destDir := t.TempDir()

	report, err := c.Compile(context.Background(), prog, destDir)
	require.Nil(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "src/a.js", report.Files[0].Output)
	assert.True(t, report.Files[0].Written)
	assert.NotEmpty(t, report.Files[0].Hash)

	data, err := os.ReadFile(filepath.Join(destDir, "src", "a.js"))
	require.Nil(t, err)
	assert.Contains(t, string(data), "n1")
	assert.NotContains(t, string(data), ": number")

	report, err = c.Compile(context.Background(), prog, destDir)
	require.Nil(t, err)
	assert.False(t, report.Files[0].Written, "unchanged output is not rewritten")

	encoded, err := report.YAML()
	require.Nil(t, err)
	decoded := map[string]interface{}{}
	require.Nil(t, yaml.Unmarshal(encoded, &decoded))
	assert.Equal(t, "program", decoded["isolation"])
}

func TestCompiler_Errors(t *testing.T) {
	failing := transform.Func(func(ctx *transform.Context, node ast.Decoratable, f *factory.Factory) (transform.Result, error) {
		return transform.Result{}, fmt.Errorf("unsupported %s", node.DeclName())
	})
	prog := newProgram(t, map[string]string{"a.ts": "class A {\n  @failing a = 1;\n}\n"})
	for _, isolation := range []config.Isolation{config.IsolationProgram, config.IsolationFile} {
		c := compiler.New(transform.New(transform.Decorators{"failing": failing}), nil, compiler.WithIsolation(isolation))
		_, err := c.TransformAll(context.Background(), prog)
		assert.NotNil(t, err, isolation)
	}
}
