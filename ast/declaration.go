package ast

// SourceFile represents a parsed file; Parts interleave verbatim Text with rewritable nodes
type SourceFile struct {
	base
	Path  string
	Parts []Node
}

func (f *SourceFile) Kind() Kind { return KindSourceFile }

// Text represents verbatim source code
type Text struct {
	base
	Value string
	// Syntax names the grammar construct the text was parsed from, if known
	Syntax string
}

func (t *Text) Kind() Kind { return KindText }

// Fragment represents syntax the engine does not model, holding nested rewritable nodes
type Fragment struct {
	base
	Parts []Node
}

func (f *Fragment) Kind() Kind { return KindFragment }

// Decorator represents `@name` or `@name(args...)`
type Decorator struct {
	base
	Expression Node
}

func (d *Decorator) Kind() Kind { return KindDecorator }

// Name returns the referenced decorator name, empty for forms other than identifiers
func (d *Decorator) Name() string {
	switch expr := d.Expression.(type) {
	case *Identifier:
		return expr.Text
	case *CallExpr:
		if ident, ok := expr.Callee.(*Identifier); ok {
			return ident.Text
		}
	}
	return ""
}

// IsCall returns true for the call form `@name(...)`
func (d *Decorator) IsCall() bool {
	_, ok := d.Expression.(*CallExpr)
	return ok
}

// Arguments returns call form arguments
func (d *Decorator) Arguments() []Node {
	if call, ok := d.Expression.(*CallExpr); ok {
		return call.Arguments
	}
	return nil
}

// ClassDecl represents a class declaration
type ClassDecl struct {
	base
	Decorators     []*Decorator
	Modifiers      []string // export, default, abstract, declare
	Name           *Identifier
	TypeParameters Node
	Heritage       Node // extends/implements clause
	Members        []Node
	// Indent is the member indentation relative to the class line
	Indent string
}

func (c *ClassDecl) Kind() Kind                  { return KindClassDecl }
func (c *ClassDecl) DecoratorList() []*Decorator { return c.Decorators }

func (c *ClassDecl) DeclName() string {
	if c.Name == nil {
		return ""
	}
	return c.Name.Text
}

// MethodDecl represents a method declaration
type MethodDecl struct {
	base
	Decorators     []*Decorator
	Modifiers      []string // static, async, get, set, accessibility, override, ...
	Asterisk       bool
	Name           Node
	Question       bool
	TypeParameters Node
	Parameters     []Node
	ReturnType     Node
	Body           Node // nil for overload signatures
}

func (m *MethodDecl) Kind() Kind                  { return KindMethodDecl }
func (m *MethodDecl) DecoratorList() []*Decorator { return m.Decorators }
func (m *MethodDecl) DeclName() string            { return NameText(m.Name) }

// PropertyDecl represents a class property declaration
type PropertyDecl struct {
	base
	Decorators  []*Decorator
	Modifiers   []string // static, readonly, declare, accessibility, ...
	Name        Node
	Token       string // "?", "!" or empty
	Type        Node
	Initializer Node
}

func (p *PropertyDecl) Kind() Kind                  { return KindPropertyDecl }
func (p *PropertyDecl) DecoratorList() []*Decorator { return p.Decorators }
func (p *PropertyDecl) DeclName() string            { return NameText(p.Name) }

// Block represents `{ statements }`
type Block struct {
	base
	Statements []Node
}

func (b *Block) Kind() Kind { return KindBlock }

// ExpressionStmt represents `expression;`
type ExpressionStmt struct {
	base
	Expression Node
}

func (s *ExpressionStmt) Kind() Kind { return KindExpressionStmt }

// ReturnStmt represents `return expression;`
type ReturnStmt struct {
	base
	Expression Node
}

func (s *ReturnStmt) Kind() Kind { return KindReturnStmt }
