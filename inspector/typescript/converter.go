package typescript

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/comptime/ast"
)

type converter struct {
	builder *ast.Builder
	src     []byte
}

func (c *converter) content(node *sitter.Node) string {
	return string(c.src[node.StartByte():node.EndByte()])
}

func (c *converter) parsed(n ast.Node, start, end uint32) ast.Node {
	return c.builder.Parsed(n, ast.Span{Start: int(start), End: int(end)}, string(c.src[start:end]))
}

func (c *converter) text(node *sitter.Node) *ast.Text {
	ret := c.builder.Text(c.content(node), node.Type())
	c.parsed(ret, node.StartByte(), node.EndByte())
	return ret
}

func (c *converter) sourceFile(filename string, root *sitter.Node) *ast.SourceFile {
	parts := c.parts(root, 0, uint32(len(c.src)))
	return c.builder.SourceFile(filename, parts)
}

// parts converts children of node into verbatim text interleaved with class declarations
func (c *converter) parts(node *sitter.Node, start, end uint32) []ast.Node {
	var parts []ast.Node
	textStart := start
	flush := func(upTo uint32) {
		if upTo > textStart {
			text := c.builder.Text(string(c.src[textStart:upTo]), "")
			parts = append(parts, c.parsed(text, textStart, upTo))
		}
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if child == nil || !containsClass(child) {
			continue
		}
		flush(child.StartByte())
		converted := c.node(child)
		parts = append(parts, converted)
		textStart = child.EndByte()
	}
	flush(end)
	return parts
}

// node converts a subtree: classes are modelled, subtrees without classes become text
func (c *converter) node(node *sitter.Node) ast.Node {
	switch node.Type() {
	case "class_declaration", "abstract_class_declaration":
		return c.classDecl(node, nil, nil, node.StartByte())
	case "export_statement":
		if declaration := exportedClass(node); declaration != nil {
			return c.exportedClass(node, declaration)
		}
	}
	if !containsClass(node) {
		return c.text(node)
	}
	fragment := c.builder.Fragment(c.parts(node, node.StartByte(), node.EndByte()))
	return fragment
}

func (c *converter) exportedClass(node, declaration *sitter.Node) ast.Node {
	var decorators []*ast.Decorator
	modifiers := []string{"export"}
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		switch child.Type() {
		case "decorator":
			decorators = append(decorators, c.decorator(child))
		case "default":
			modifiers = append(modifiers, "default")
		}
	}
	return c.classDecl(declaration, decorators, modifiers, node.StartByte())
}

func (c *converter) classDecl(node *sitter.Node, decorators []*ast.Decorator, modifiers []string, start uint32) ast.Node {
	var typeParameters, heritage ast.Node
	var members []ast.Node
	var name *ast.Identifier
	indent := ""
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		switch child.Type() {
		case "decorator":
			decorators = append(decorators, c.decorator(child))
		case "abstract", "declare":
			modifiers = append(modifiers, child.Type())
		case "type_identifier", "identifier":
			if name == nil {
				name = c.builder.Identifier(c.content(child))
				c.parsed(name, child.StartByte(), child.EndByte())
			}
		case "type_parameters":
			typeParameters = c.text(child)
		case "class_heritage":
			heritage = c.text(child)
		case "class_body":
			members, indent = c.classBody(child, start)
		}
	}
	ret := c.builder.ClassDecl(decorators, modifiers, name, typeParameters, heritage, members)
	ret.Indent = indent
	c.parsed(ret, start, node.EndByte())
	return ret
}

// classBody converts members; decorators written as siblings attach to the next method
func (c *converter) classBody(body *sitter.Node, classStart uint32) ([]ast.Node, string) {
	var members []ast.Node
	var pending []*sitter.Node
	indent := ""
	count := int(body.ChildCount())
	for j := 0; j < count; j++ {
		child := body.Child(j)
		kind := child.Type()
		if kind == "{" || kind == "}" || kind == ";" || kind == "," {
			continue
		}
		if kind == "decorator" {
			pending = append(pending, child)
			continue
		}
		start := child.StartByte()
		if len(pending) > 0 {
			start = pending[0].StartByte()
		}
		end := child.EndByte()
		if j+1 < count {
			if next := body.Child(j + 1); next.Type() == ";" && next.StartByte() == end {
				end = next.EndByte()
			}
		}
		if indent == "" && kind != "comment" {
			indent = c.relativeIndent(classStart, start)
		}
		var member ast.Node
		switch kind {
		case "method_definition":
			member = c.methodDecl(child, c.decorators(pending), start, end)
		case "public_field_definition":
			member = c.propertyDecl(child, c.decorators(pending), start, end)
		default:
			text := c.builder.Text(string(c.src[start:end]), kind)
			member = c.parsed(text, start, end)
		}
		pending = nil
		members = append(members, member)
	}
	for _, decorator := range pending {
		members = append(members, c.text(decorator))
	}
	return members, indent
}

func (c *converter) decorators(nodes []*sitter.Node) []*ast.Decorator {
	var ret []*ast.Decorator
	for _, node := range nodes {
		ret = append(ret, c.decorator(node))
	}
	return ret
}

func (c *converter) decorator(node *sitter.Node) *ast.Decorator {
	var expression ast.Node
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		if child.Type() == "comment" {
			continue
		}
		expression = c.expression(child)
		break
	}
	ret := c.builder.Decorator(expression)
	c.parsed(ret, node.StartByte(), node.EndByte())
	return ret
}

func (c *converter) methodDecl(node *sitter.Node, decorators []*ast.Decorator, start, end uint32) ast.Node {
	ret := c.builder.MethodDecl(decorators, nil, nil, nil, nil, nil)
	nameNode := node.ChildByFieldName("name")
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if nameNode != nil && child.StartByte() >= nameNode.EndByte() {
			break
		}
		switch kind := child.Type(); kind {
		case "decorator":
			ret.Decorators = append(ret.Decorators, c.decorator(child))
		case "*":
			ret.Asterisk = true
		default:
			if nameNode != nil && child.StartByte() == nameNode.StartByte() {
				continue
			}
			ret.Modifiers = append(ret.Modifiers, c.content(child))
		}
	}
	if nameNode != nil {
		ret.Name = c.propertyName(nameNode)
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		if child := node.Child(j); child.Type() == "?" {
			ret.Question = true
		}
	}
	if typeParameters := node.ChildByFieldName("type_parameters"); typeParameters != nil {
		ret.TypeParameters = c.text(typeParameters)
	}
	if parameters := node.ChildByFieldName("parameters"); parameters != nil {
		for j := 0; j < int(parameters.NamedChildCount()); j++ {
			ret.Parameters = append(ret.Parameters, c.text(parameters.NamedChild(j)))
		}
	}
	if returnType := node.ChildByFieldName("return_type"); returnType != nil {
		ret.ReturnType = c.typeAnnotation(returnType)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		ret.Body = c.node(body)
	}
	c.parsed(ret, start, end)
	return ret
}

func (c *converter) propertyDecl(node *sitter.Node, decorators []*ast.Decorator, start, end uint32) ast.Node {
	ret := c.builder.PropertyDecl(decorators, nil, nil, "", nil, nil)
	nameNode := node.ChildByFieldName("name")
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if nameNode != nil && child.StartByte() >= nameNode.StartByte() {
			if kind := child.Type(); (kind == "?" || kind == "!") && child.StartByte() >= nameNode.EndByte() {
				ret.Token = kind
			}
			continue
		}
		if child.Type() == "decorator" {
			ret.Decorators = append(ret.Decorators, c.decorator(child))
			continue
		}
		ret.Modifiers = append(ret.Modifiers, c.content(child))
	}
	if nameNode != nil {
		ret.Name = c.propertyName(nameNode)
	}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		ret.Type = c.typeAnnotation(typeNode)
	}
	if value := node.ChildByFieldName("value"); value != nil {
		ret.Initializer = c.expression(value)
	}
	c.parsed(ret, start, end)
	return ret
}

// typeAnnotation returns the annotated type without the leading colon
func (c *converter) typeAnnotation(node *sitter.Node) ast.Node {
	if node.Type() == "type_annotation" {
		for j := 0; j < int(node.NamedChildCount()); j++ {
			if child := node.NamedChild(j); child.Type() != "comment" {
				return c.text(child)
			}
		}
	}
	return c.text(node)
}

// relativeIndent returns member line indentation relative to the class line
func (c *converter) relativeIndent(classStart, memberStart uint32) string {
	classIndent := lineIndent(c.src, int(classStart))
	memberIndent := lineIndent(c.src, int(memberStart))
	if !strings.HasPrefix(memberIndent, classIndent) || len(memberIndent) == len(classIndent) {
		return ""
	}
	return memberIndent[len(classIndent):]
}

func lineIndent(src []byte, offset int) string {
	lineStart := offset
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}
	end := lineStart
	for end < offset && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	if end != offset {
		return ""
	}
	return string(src[lineStart:end])
}

func isClassDeclaration(node *sitter.Node) bool {
	kind := node.Type()
	return kind == "class_declaration" || kind == "abstract_class_declaration"
}

// exportedClass returns the class of `export class` and `export default class` statements
func exportedClass(node *sitter.Node) *sitter.Node {
	if declaration := node.ChildByFieldName("declaration"); declaration != nil && isClassDeclaration(declaration) {
		return declaration
	}
	if value := node.ChildByFieldName("value"); value != nil && value.IsNamed() && value.Type() == "class" {
		return value
	}
	return nil
}

// containsClass returns true if subtree holds a class declaration
func containsClass(node *sitter.Node) bool {
	if isClassDeclaration(node) || (node.Type() == "export_statement" && exportedClass(node) != nil) {
		return true
	}
	for j := 0; j < int(node.NamedChildCount()); j++ {
		if containsClass(node.NamedChild(j)) {
			return true
		}
	}
	return false
}
