// Package typescript parses TypeScript sources with tree-sitter into comptime syntax trees.
//
// Only declarations the decorator engine rewrites are modelled: classes with their
// methods and properties, decorators, and the literal expressions decorator
// arguments and property initializers are built from. Everything else is kept as
// verbatim text, so a file nobody touches prints back byte for byte.
package typescript

import (
	"context"
	"fmt"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/viant/afs"
	"github.com/viant/comptime/ast"
)

// Inspector parses TypeScript sources; it is safe for concurrent use
type Inspector struct {
	builder *ast.Builder
	fs      afs.Service
}

// NewInspector creates an inspector allocating node ids from arena
func NewInspector(arena *ast.Arena) *Inspector {
	return &Inspector{builder: ast.NewBuilder(arena), fs: afs.New()}
}

// Arena returns inspector arena
func (i *Inspector) Arena() *ast.Arena {
	return i.builder.Arena()
}

// InspectFile reads and parses a source file
func (i *Inspector) InspectFile(ctx context.Context, URL string) (*ast.SourceFile, error) {
	src, err := i.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	return i.InspectSource(ctx, URL, src)
}

// InspectSource parses src; files with .tsx extension use the TSX grammar
func (i *Inspector) InspectSource(ctx context.Context, filename string, src []byte) (*ast.SourceFile, error) {
	parser := sitter.NewParser()
	if IsTSX(filename) {
		parser.SetLanguage(tsx.GetLanguage())
	} else {
		parser.SetLanguage(typescript.GetLanguage())
	}
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	rootNode := tree.RootNode()
	if rootNode.HasError() {
		if errNode := firstError(rootNode); errNode != nil {
			point := errNode.StartPoint()
			return nil, fmt.Errorf("failed to parse %s:%d:%d: unexpected %q", filename, point.Row+1, point.Column+1, snippet(errNode.Content(src)))
		}
		return nil, fmt.Errorf("failed to parse %s: syntax error", filename)
	}
	conv := &converter{builder: i.builder, src: src}
	return conv.sourceFile(filename, rootNode), nil
}

// IsTSX returns true for .tsx files
func IsTSX(filename string) bool {
	return strings.EqualFold(path.Ext(filename), ".tsx")
}

func firstError(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

func snippet(text string) string {
	if index := strings.IndexByte(text, '\n'); index != -1 {
		text = text[:index]
	}
	if len(text) > 40 {
		text = text[:40]
	}
	return text
}
