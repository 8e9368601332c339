package ast

import (
	"bytes"
	"strings"
)

const defaultIndent = "  "

// Print returns source code of n; untouched parse-tree nodes are printed verbatim.
// A rebuilt class is regenerated one member per line, so blank lines between members
// are dropped and trailing comments move to their own line.
func Print(n Node) string {
	if n == nil {
		return ""
	}
	p := &printer{}
	p.print(n)
	return p.buf.String()
}

type printer struct {
	buf bytes.Buffer
}

// indent returns leading whitespace of the line being written
func (p *printer) indent() string {
	data := p.buf.Bytes()
	start := bytes.LastIndexByte(data, '\n') + 1
	end := start
	for end < len(data) && (data[end] == ' ' || data[end] == '\t') {
		end++
	}
	return string(data[start:end])
}

func (p *printer) write(fragments ...string) {
	for _, fragment := range fragments {
		p.buf.WriteString(fragment)
	}
}

func (p *printer) parts(parts []Node) {
	for i, part := range parts {
		if i > 0 {
			_, prevText := parts[i-1].(*Text)
			_, isText := part.(*Text)
			if !prevText && !isText {
				p.write("\n", p.indent())
			}
		}
		p.print(part)
	}
}

func (p *printer) list(nodes []Node, separator string) {
	for i, node := range nodes {
		if i > 0 {
			p.write(separator)
		}
		p.print(node)
	}
}

func (p *printer) decorators(decorators []*Decorator, indent string) {
	for _, decorator := range decorators {
		p.print(decorator)
		p.write("\n", indent)
	}
}

func (p *printer) modifiers(modifiers []string) {
	for _, modifier := range modifiers {
		p.write(modifier, " ")
	}
}

func (p *printer) print(n Node) {
	if n == nil {
		return
	}
	switch actual := n.(type) {
	case *SourceFile:
		p.parts(actual.Parts)
		return
	case *Fragment:
		p.parts(actual.Parts)
		return
	case *Text:
		p.write(actual.Value)
		return
	}
	if source := n.Source(); source != "" {
		p.write(source)
		return
	}
	switch actual := n.(type) {
	case *Decorator:
		p.write("@")
		p.print(actual.Expression)
	case *ClassDecl:
		p.class(actual)
	case *MethodDecl:
		indent := p.indent()
		p.decorators(actual.Decorators, indent)
		p.modifiers(actual.Modifiers)
		if actual.Asterisk {
			p.write("*")
		}
		p.print(actual.Name)
		if actual.Question {
			p.write("?")
		}
		p.print(actual.TypeParameters)
		p.write("(")
		p.list(actual.Parameters, ", ")
		p.write(")")
		if actual.ReturnType != nil {
			p.write(": ")
			p.print(actual.ReturnType)
		}
		if actual.Body == nil {
			p.write(";")
			return
		}
		p.write(" ")
		p.print(actual.Body)
	case *PropertyDecl:
		indent := p.indent()
		p.decorators(actual.Decorators, indent)
		p.modifiers(actual.Modifiers)
		p.print(actual.Name)
		p.write(actual.Token)
		if actual.Type != nil {
			p.write(": ")
			p.print(actual.Type)
		}
		if actual.Initializer != nil {
			p.write(" = ")
			p.print(actual.Initializer)
		}
		p.write(";")
	case *Block:
		if len(actual.Statements) == 0 {
			p.write("{}")
			return
		}
		indent := p.indent()
		p.write("{")
		for _, statement := range actual.Statements {
			p.write("\n", indent, defaultIndent)
			p.print(statement)
		}
		p.write("\n", indent, "}")
	case *ExpressionStmt:
		p.print(actual.Expression)
		p.write(";")
	case *ReturnStmt:
		p.write("return")
		if actual.Expression != nil {
			p.write(" ")
			p.print(actual.Expression)
		}
		p.write(";")
	case *Identifier:
		p.write(actual.Text)
	case *PrivateIdentifier:
		p.write(actual.Text)
	case *StringLiteral:
		p.write(Quote(actual.Value))
	case *TemplateLiteral:
		p.write(QuoteTemplate(actual.Value))
	case *NumericLiteral:
		p.write(actual.Text)
	case *BigIntLiteral:
		p.write(actual.Text)
	case *RegexLiteral:
		p.write("/", actual.Pattern, "/", actual.Flags)
	case *Keyword:
		p.write(actual.Text())
	case *ArrayLiteral:
		p.write("[")
		p.list(actual.Elements, ", ")
		if count := len(actual.Elements); count > 0 && actual.Elements[count-1] != nil && actual.Elements[count-1].Kind() == KindOmittedExpr {
			p.write(",")
		}
		p.write("]")
	case *OmittedExpr:
	case *ObjectLiteral:
		if len(actual.Properties) == 0 {
			p.write("{}")
			return
		}
		p.write("{ ")
		p.list(actual.Properties, ", ")
		p.write(" }")
	case *PropertyAssignment:
		p.print(actual.Name)
		p.write(": ")
		p.print(actual.Initializer)
	case *ShorthandProperty:
		if actual.Name != nil {
			p.write(actual.Name.Text)
		}
	case *SpreadElement:
		p.write("...")
		p.print(actual.Expression)
	case *ComputedName:
		p.write("[")
		p.print(actual.Expression)
		p.write("]")
	case *CallExpr:
		p.print(actual.Callee)
		p.write("(")
		p.list(actual.Arguments, ", ")
		p.write(")")
	case *NewExpr:
		p.write("new ")
		p.print(actual.Callee)
		p.write("(")
		p.list(actual.Arguments, ", ")
		p.write(")")
	case *PropertyAccessExpr:
		p.print(actual.Expression)
		p.write(".")
		p.print(actual.Name)
	}
}

func (p *printer) class(class *ClassDecl) {
	indent := p.indent()
	p.decorators(class.Decorators, indent)
	p.modifiers(class.Modifiers)
	p.write("class")
	if class.Name != nil {
		p.write(" ", class.Name.Text)
	}
	p.print(class.TypeParameters)
	if class.Heritage != nil {
		p.write(" ")
		p.print(class.Heritage)
	}
	p.write(" {")
	memberIndent := class.Indent
	if memberIndent == "" {
		memberIndent = defaultIndent
	}
	for _, member := range class.Members {
		if text, ok := member.(*Text); ok && strings.TrimSpace(text.Value) == "" {
			continue
		}
		p.write("\n", indent, memberIndent)
		p.print(member)
	}
	p.write("\n", indent, "}")
}
