package typescript

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/comptime/ast"
)

// expression converts literal-like expressions; other forms are kept verbatim
func (c *converter) expression(node *sitter.Node) ast.Node {
	b := c.builder
	var ret ast.Node
	switch node.Type() {
	case "identifier", "undefined", "property_identifier", "type_identifier", "shorthand_property_identifier":
		ret = b.Identifier(c.content(node))
	case "private_property_identifier":
		ret = b.PrivateIdentifier(c.content(node))
	case "string":
		value, err := ast.Unquote(c.content(node))
		if err != nil {
			return c.text(node)
		}
		ret = b.StringLiteral(value)
	case "template_string":
		if hasChild(node, "template_substitution") {
			return c.node(node)
		}
		value, err := ast.Unquote(c.content(node))
		if err != nil {
			return c.text(node)
		}
		ret = b.TemplateLiteral(value)
	case "number":
		text := c.content(node)
		if strings.HasSuffix(text, "n") {
			ret = b.BigIntLiteral(text)
		} else {
			ret = b.NumericLiteral(text)
		}
	case "regex":
		pattern, flags := "", ""
		if child := node.ChildByFieldName("pattern"); child != nil {
			pattern = c.content(child)
		}
		if child := node.ChildByFieldName("flags"); child != nil {
			flags = c.content(child)
		}
		ret = b.RegexLiteral(pattern, flags)
	case "true":
		ret = b.True()
	case "false":
		ret = b.False()
	case "null":
		ret = b.Null()
	case "this":
		ret = b.This()
	case "array":
		ret = b.ArrayLiteral(c.elements(node))
	case "object":
		var properties []ast.Node
		for j := 0; j < int(node.NamedChildCount()); j++ {
			child := node.NamedChild(j)
			if child.Type() == "comment" {
				continue
			}
			properties = append(properties, c.objectMember(child))
		}
		ret = b.ObjectLiteral(properties)
	case "spread_element":
		ret = b.SpreadElement(c.firstExpression(node))
	case "call_expression":
		callee := node.ChildByFieldName("function")
		arguments := node.ChildByFieldName("arguments")
		if callee == nil || arguments == nil || arguments.Type() != "arguments" {
			return c.node(node)
		}
		ret = b.CallExpr(c.expression(callee), c.expressions(arguments))
	case "new_expression":
		callee := node.ChildByFieldName("constructor")
		if callee == nil {
			return c.node(node)
		}
		var args []ast.Node
		if arguments := node.ChildByFieldName("arguments"); arguments != nil {
			args = c.expressions(arguments)
		}
		ret = b.NewExpr(c.expression(callee), args)
	case "member_expression":
		object := node.ChildByFieldName("object")
		property := node.ChildByFieldName("property")
		if object == nil || property == nil || hasChild(node, "?.") {
			return c.node(node)
		}
		ret = b.PropertyAccessExpr(c.expression(object), c.expression(property))
	default:
		return c.node(node)
	}
	return c.parsed(ret, node.StartByte(), node.EndByte())
}

func (c *converter) objectMember(node *sitter.Node) ast.Node {
	b := c.builder
	var ret ast.Node
	switch node.Type() {
	case "pair":
		key := node.ChildByFieldName("key")
		value := node.ChildByFieldName("value")
		if key == nil || value == nil {
			return c.text(node)
		}
		ret = b.PropertyAssignment(c.propertyName(key), c.expression(value))
	case "shorthand_property_identifier":
		name := b.Identifier(c.content(node))
		c.parsed(name, node.StartByte(), node.EndByte())
		ret = b.ShorthandProperty(name)
	case "spread_element":
		return c.expression(node)
	default:
		return c.text(node)
	}
	return c.parsed(ret, node.StartByte(), node.EndByte())
}

// propertyName converts a property key
func (c *converter) propertyName(node *sitter.Node) ast.Node {
	switch node.Type() {
	case "computed_property_name":
		ret := c.builder.ComputedName(c.firstExpression(node))
		return c.parsed(ret, node.StartByte(), node.EndByte())
	case "string", "number", "private_property_identifier":
		return c.expression(node)
	}
	ret := c.builder.Identifier(c.content(node))
	return c.parsed(ret, node.StartByte(), node.EndByte())
}

func (c *converter) expressions(node *sitter.Node) []ast.Node {
	var ret []ast.Node
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		if child.Type() == "comment" {
			continue
		}
		ret = append(ret, c.expression(child))
	}
	return ret
}

// elements converts array elements, a comma with no preceding element marks a hole
func (c *converter) elements(node *sitter.Node) []ast.Node {
	var ret []ast.Node
	hole := true
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		switch {
		case child.Type() == ",":
			if hole {
				omitted := c.builder.OmittedExpr()
				ret = append(ret, c.parsed(omitted, child.StartByte(), child.StartByte()))
			}
			hole = true
		case !child.IsNamed() || child.Type() == "comment":
		default:
			ret = append(ret, c.expression(child))
			hole = false
		}
	}
	return ret
}

func (c *converter) firstExpression(node *sitter.Node) ast.Node {
	if expressions := c.expressions(node); len(expressions) > 0 {
		return expressions[0]
	}
	return nil
}

func hasChild(node *sitter.Node, kind string) bool {
	for j := 0; j < int(node.ChildCount()); j++ {
		if node.Child(j).Type() == kind {
			return true
		}
	}
	return false
}
