package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFiles(t *testing.T, baseDir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		location := filepath.Join(baseDir, name)
		require.Nil(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.Nil(t, os.WriteFile(location, []byte(content), 0o644))
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTransformCmd(t *testing.T) {
	projectDir := t.TempDir()
	writeFiles(t, projectDir, map[string]string{
		"package.json":              `{"name": "demo"}`,
		"comptime.yaml":             "outDir: out\n",
		"decorators/element.star":   "def element(node, tag):\n    return [node, \"customElements.define(%r, %s);\" % (tag, node.name)]\n",
		"src/button.ts":             "@element(\"x-button\")\nexport class Button {}\n",
		"src/util.ts":               "export const util = 1;\n",
		"node_modules/lib/index.ts": "export const lib = 1;\n",
	})
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	output, err := execute(t, "transform", projectDir, "--report", reportPath)
	require.Nil(t, err)
	assert.Contains(t, output, "2 files, 1 rewritten, 2 written")

	data, err := os.ReadFile(filepath.Join(projectDir, "out", "src", "button.ts"))
	require.Nil(t, err)
	assert.Equal(t, "export class Button {\n}\ncustomElements.define(\"x-button\", Button);\n", string(data))
	_, err = os.Stat(filepath.Join(projectDir, "out", "node_modules"))
	assert.True(t, os.IsNotExist(err))

	encoded, err := os.ReadFile(reportPath)
	require.Nil(t, err)
	report := struct {
		Files []struct {
			Path      string `yaml:"path"`
			Rewritten bool   `yaml:"rewritten"`
		} `yaml:"files"`
	}{}
	require.Nil(t, yaml.Unmarshal(encoded, &report))
	require.Len(t, report.Files, 2)
	assert.Equal(t, "src/button.ts", report.Files[0].Path)
	assert.True(t, report.Files[0].Rewritten)

	output, err = execute(t, "transform", projectDir, "--emit", "js")
	require.Nil(t, err)
	assert.Contains(t, output, "2 written")
	_, err = os.Stat(filepath.Join(projectDir, "out", "src", "button.js"))
	assert.Nil(t, err)

	output, err = execute(t, "transform", projectDir)
	require.Nil(t, err)
	assert.Contains(t, output, "0 written", "generated output is not reloaded as a source")
}

func TestTransformCmd_Errors(t *testing.T) {
	projectDir := t.TempDir()
	writeFiles(t, projectDir, map[string]string{
		"package.json":            `{"name": "demo"}`,
		"decorators/element.star": "def element(node, tag):\n    return node\n",
		"src/button.ts":           "@element\nexport class Button {}\n",
	})
	_, err := execute(t, "transform", projectDir)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "must be called")

	_, err = execute(t, "transform", projectDir, "--traversal", "sideways")
	assert.NotNil(t, err)
}

func TestDumpCmd(t *testing.T) {
	projectDir := t.TempDir()
	writeFiles(t, projectDir, map[string]string{"a.ts": "@first\nclass A {\n  @second b = 1;\n}\n"})
	output, err := execute(t, "dump", filepath.Join(projectDir, "a.ts"))
	require.Nil(t, err)
	assert.Contains(t, output, "ClassDeclaration A")
	assert.Contains(t, output, "Decorator first")
	assert.Contains(t, output, "PropertyDeclaration b")
}

func TestVersionCmd(t *testing.T) {
	output, err := execute(t, "version")
	require.Nil(t, err)
	assert.Equal(t, "comptime dev\n", output)
}
