package ast

import (
	"fmt"
	"strings"
)

// Dump returns an indented outline of the tree rooted at n
func Dump(n Node) string {
	builder := &strings.Builder{}
	dump(builder, n, 0)
	return builder.String()
}

func dump(builder *strings.Builder, n Node, depth int) {
	if n == nil {
		return
	}
	builder.WriteString(strings.Repeat("  ", depth))
	builder.WriteString(n.Kind().String())
	if detail := describe(n); detail != "" {
		builder.WriteString(" ")
		builder.WriteString(detail)
	}
	if span := n.Span(); IsParseTree(n) {
		builder.WriteString(fmt.Sprintf(" [%d,%d)", span.Start, span.End))
	}
	builder.WriteString("\n")
	for _, child := range Children(n) {
		dump(builder, child, depth+1)
	}
}

func describe(n Node) string {
	switch actual := n.(type) {
	case *SourceFile:
		return actual.Path
	case *Text:
		value := actual.Value
		if len(value) > 32 {
			value = value[:32] + "..."
		}
		if actual.Syntax != "" {
			return actual.Syntax + " " + fmt.Sprintf("%q", value)
		}
		return fmt.Sprintf("%q", value)
	case Decoratable:
		return actual.DeclName()
	case *Decorator:
		return actual.Name()
	case *Identifier:
		return actual.Text
	case *PrivateIdentifier:
		return actual.Text
	case *StringLiteral:
		return Quote(actual.Value)
	case *TemplateLiteral:
		return QuoteTemplate(actual.Value)
	case *NumericLiteral:
		return actual.Text
	case *BigIntLiteral:
		return actual.Text
	case *RegexLiteral:
		return "/" + actual.Pattern + "/" + actual.Flags
	}
	return ""
}
