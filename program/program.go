// Package program represents a set of parsed TypeScript files a decorator pass runs against.
package program

import (
	"fmt"
	"sort"

	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
)

// Program holds parsed files, their parent index and source fingerprints
type Program struct {
	BaseURL string
	arena   *ast.Arena
	files   []*ast.SourceFile
	byPath  map[string]*ast.SourceFile
	parents map[ast.ID]ast.Node
	hashes  map[string]uint64
}

// New creates a program from already parsed files; files must share arena
func New(arena *ast.Arena, files ...*ast.SourceFile) *Program {
	if arena == nil {
		arena = ast.NewArena()
	}
	ret := &Program{
		arena:   arena,
		byPath:  make(map[string]*ast.SourceFile),
		parents: make(map[ast.ID]ast.Node),
		hashes:  make(map[string]uint64),
	}
	for _, file := range files {
		ret.add(file, nil)
	}
	ret.sort()
	return ret
}

func (p *Program) add(file *ast.SourceFile, src []byte) {
	if _, ok := p.byPath[file.Path]; !ok {
		p.files = append(p.files, file)
	}
	p.byPath[file.Path] = file
	if src == nil {
		src = []byte(ast.Print(file))
	}
	p.hashes[file.Path] = Hash(src)
	ast.Inspect(file, func(node ast.Node) bool {
		for _, child := range ast.Children(node) {
			p.parents[child.ID()] = node
		}
		return true
	})
}

func (p *Program) sort() {
	sort.Slice(p.files, func(i, j int) bool {
		return p.files[i].Path < p.files[j].Path
	})
}

// Files returns files ordered by path
func (p *Program) Files() []*ast.SourceFile {
	return p.files
}

// File returns a file by path
func (p *Program) File(path string) *ast.SourceFile {
	return p.byPath[path]
}

// Arena returns the id allocator shared by parser and factories
func (p *Program) Arena() *ast.Arena {
	return p.arena
}

// Hash returns source fingerprint of a file
func (p *Program) Hash(path string) (uint64, bool) {
	hash, ok := p.hashes[path]
	return hash, ok
}

// Parent returns the parse-tree parent of node
func (p *Program) Parent(node ast.Node) ast.Node {
	if node == nil {
		return nil
	}
	return p.parents[node.ID()]
}

// TypeOf returns declared type information; no inference is performed
func (p *Program) TypeOf(node ast.Node) *comptime.TypeInfo {
	switch actual := node.(type) {
	case *ast.ClassDecl:
		return &comptime.TypeInfo{Text: actual.DeclName(), Kind: comptime.TypeKindClass}
	case *ast.PropertyDecl:
		if actual.Type != nil {
			return &comptime.TypeInfo{Text: ast.Print(actual.Type), Kind: comptime.TypeKindAnnotation}
		}
		if actual.Initializer != nil {
			return literalType(actual.Initializer)
		}
	case *ast.MethodDecl:
		if actual.ReturnType != nil {
			return &comptime.TypeInfo{Text: ast.Print(actual.ReturnType), Kind: comptime.TypeKindAnnotation}
		}
	default:
		if node != nil {
			return literalType(node)
		}
	}
	return nil
}

func literalType(node ast.Node) *comptime.TypeInfo {
	text := ""
	switch node.Kind() {
	case ast.KindStringLiteral, ast.KindTemplateLiteral:
		text = "string"
	case ast.KindNumericLiteral:
		text = "number"
	case ast.KindBigIntLiteral:
		text = "bigint"
	case ast.KindTrueKeyword, ast.KindFalseKeyword:
		text = "boolean"
	case ast.KindRegexLiteral:
		text = "RegExp"
	case ast.KindNullKeyword:
		text = "null"
	case ast.KindNewExpr:
		if expr, ok := node.(*ast.NewExpr); ok {
			text = ast.Print(expr.Callee)
		}
	default:
		return nil
	}
	return &comptime.TypeInfo{Text: text, Kind: comptime.TypeKindLiteral}
}

func (p *Program) String() string {
	return fmt.Sprintf("program(%s, %d files)", p.BaseURL, len(p.files))
}
