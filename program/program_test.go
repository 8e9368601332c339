package program_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/program"
)

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		location := filepath.Join(dir, filepath.FromSlash(name))
		require.Nil(t, os.MkdirAll(filepath.Dir(location), 0755))
		require.Nil(t, os.WriteFile(location, []byte(content), 0644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"src/app.ts":                    "@tag\nexport class App {\n  title: string = \"app\";\n  count = 1;\n  run(): Promise<void> { return Promise.resolve(); }\n}\n",
		"src/view.tsx":                  "export const View = () => <div/>;\n",
		"src/types.d.ts":                "declare const x: number;\n",
		"node_modules/lib/index.ts":     "export class Lib {}\n",
		"README.md":                     "# readme\n",
		"src/nested/deep/helper.ts":     "export function helper() {}\n",
	})
	prog, err := program.Load(context.Background(), dir, program.WithConcurrency(2))
	require.Nil(t, err)

	var paths []string
	for _, file := range prog.Files() {
		paths = append(paths, file.Path)
	}
	assert.Equal(t, []string{"src/app.ts", "src/nested/deep/helper.ts", "src/view.tsx"}, paths)

	app := prog.File("src/app.ts")
	require.NotNil(t, app)
	hash, ok := prog.Hash("src/app.ts")
	assert.True(t, ok)
	content, err := os.ReadFile(filepath.Join(dir, "src", "app.ts"))
	require.Nil(t, err)
	assert.Equal(t, program.Hash(content), hash)

	var class *ast.ClassDecl
	for _, part := range app.Parts {
		if actual, ok := part.(*ast.ClassDecl); ok {
			class = actual
		}
	}
	require.NotNil(t, class)
	assert.Same(t, app, prog.Parent(class))

	var testCases = []struct {
		description string
		member      int
		expect      *comptime.TypeInfo
	}{
		{description: "annotation", member: 0, expect: &comptime.TypeInfo{Text: "string", Kind: comptime.TypeKindAnnotation}},
		{description: "literal", member: 1, expect: &comptime.TypeInfo{Text: "number", Kind: comptime.TypeKindLiteral}},
		{description: "return type", member: 2, expect: &comptime.TypeInfo{Text: "Promise<void>", Kind: comptime.TypeKindAnnotation}},
	}
	require.Len(t, class.Members, 3)
	for _, testCase := range testCases {
		member := class.Members[testCase.member]
		assert.EqualValues(t, testCase.expect, prog.TypeOf(member), testCase.description)
		assert.Same(t, class, prog.Parent(member), testCase.description)
	}
	assert.EqualValues(t, &comptime.TypeInfo{Text: "App", Kind: comptime.TypeKindClass}, prog.TypeOf(class))
	assert.Nil(t, prog.TypeOf(class.Decorators[0]))
}

func TestLoad_ParseError(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.ts": "class {{{\n"})
	_, err := program.Load(context.Background(), dir)
	assert.NotNil(t, err)
}

func TestLoad_Include(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a/one.ts": "export const one = 1;\n",
		"b/two.ts": "export const two = 2;\n",
	})
	prog, err := program.Load(context.Background(), dir, program.WithInclude("a/**/*.ts"))
	require.Nil(t, err)
	require.Len(t, prog.Files(), 1)
	assert.Equal(t, "a/one.ts", prog.Files()[0].Path)
}
