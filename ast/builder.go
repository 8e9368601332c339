package ast

// Builder constructs nodes without recording provenance
type Builder struct {
	arena *Arena
}

// NewBuilder creates a builder allocating ids from arena
func NewBuilder(arena *Arena) *Builder {
	if arena == nil {
		arena = NewArena()
	}
	return &Builder{arena: arena}
}

// Arena returns builder arena
func (b *Builder) Arena() *Arena {
	return b.arena
}

func (b *Builder) init(n Node) {
	n.node().id = b.arena.Next()
}

// derive initialises n as a structural replacement of existing
func (b *Builder) derive(n Node, existing Node) {
	b.init(n)
	n.node().original = OriginalOf(existing)
}

// Parsed marks n as a parse-tree node with verbatim source
func (b *Builder) Parsed(n Node, span Span, source string) Node {
	ptr := n.node()
	ptr.parsed = true
	ptr.span = span
	ptr.source = source
	return n
}

func (b *Builder) SourceFile(path string, parts []Node) *SourceFile {
	ret := &SourceFile{Path: path, Parts: parts}
	b.init(ret)
	return ret
}

func (b *Builder) Text(value string, syntax string) *Text {
	ret := &Text{Value: value, Syntax: syntax}
	b.init(ret)
	return ret
}

func (b *Builder) Fragment(parts []Node) *Fragment {
	ret := &Fragment{Parts: parts}
	b.init(ret)
	return ret
}

func (b *Builder) Decorator(expression Node) *Decorator {
	ret := &Decorator{Expression: expression}
	b.init(ret)
	return ret
}

func (b *Builder) ClassDecl(decorators []*Decorator, modifiers []string, name *Identifier, typeParameters, heritage Node, members []Node) *ClassDecl {
	ret := &ClassDecl{Decorators: decorators, Modifiers: modifiers, Name: name, TypeParameters: typeParameters, Heritage: heritage, Members: members}
	b.init(ret)
	return ret
}

func (b *Builder) MethodDecl(decorators []*Decorator, modifiers []string, name Node, parameters []Node, returnType Node, body Node) *MethodDecl {
	ret := &MethodDecl{Decorators: decorators, Modifiers: modifiers, Name: name, Parameters: parameters, ReturnType: returnType, Body: body}
	b.init(ret)
	return ret
}

func (b *Builder) PropertyDecl(decorators []*Decorator, modifiers []string, name Node, token string, typ Node, initializer Node) *PropertyDecl {
	ret := &PropertyDecl{Decorators: decorators, Modifiers: modifiers, Name: name, Token: token, Type: typ, Initializer: initializer}
	b.init(ret)
	return ret
}

func (b *Builder) Block(statements []Node) *Block {
	ret := &Block{Statements: statements}
	b.init(ret)
	return ret
}

func (b *Builder) ExpressionStmt(expression Node) *ExpressionStmt {
	ret := &ExpressionStmt{Expression: expression}
	b.init(ret)
	return ret
}

func (b *Builder) ReturnStmt(expression Node) *ReturnStmt {
	ret := &ReturnStmt{Expression: expression}
	b.init(ret)
	return ret
}

func (b *Builder) Identifier(text string) *Identifier {
	ret := &Identifier{Text: text}
	b.init(ret)
	return ret
}

func (b *Builder) PrivateIdentifier(text string) *PrivateIdentifier {
	if len(text) == 0 || text[0] != '#' {
		text = "#" + text
	}
	ret := &PrivateIdentifier{Text: text}
	b.init(ret)
	return ret
}

func (b *Builder) StringLiteral(value string) *StringLiteral {
	ret := &StringLiteral{Value: value}
	b.init(ret)
	return ret
}

func (b *Builder) TemplateLiteral(value string) *TemplateLiteral {
	ret := &TemplateLiteral{Value: value}
	b.init(ret)
	return ret
}

func (b *Builder) NumericLiteral(text string) *NumericLiteral {
	ret := &NumericLiteral{Text: text}
	b.init(ret)
	return ret
}

func (b *Builder) BigIntLiteral(text string) *BigIntLiteral {
	ret := &BigIntLiteral{Text: text}
	b.init(ret)
	return ret
}

func (b *Builder) RegexLiteral(pattern, flags string) *RegexLiteral {
	ret := &RegexLiteral{Pattern: pattern, Flags: flags}
	b.init(ret)
	return ret
}

// Keyword creates true, false, null or this keyword
func (b *Builder) Keyword(kind Kind) *Keyword {
	ret := &Keyword{kind: kind}
	b.init(ret)
	return ret
}

func (b *Builder) True() *Keyword  { return b.Keyword(KindTrueKeyword) }
func (b *Builder) False() *Keyword { return b.Keyword(KindFalseKeyword) }
func (b *Builder) Null() *Keyword  { return b.Keyword(KindNullKeyword) }
func (b *Builder) This() *Keyword  { return b.Keyword(KindThisKeyword) }

func (b *Builder) ArrayLiteral(elements []Node) *ArrayLiteral {
	ret := &ArrayLiteral{Elements: elements}
	b.init(ret)
	return ret
}

func (b *Builder) OmittedExpr() *OmittedExpr {
	ret := &OmittedExpr{}
	b.init(ret)
	return ret
}

func (b *Builder) ObjectLiteral(properties []Node) *ObjectLiteral {
	ret := &ObjectLiteral{Properties: properties}
	b.init(ret)
	return ret
}

func (b *Builder) PropertyAssignment(name Node, initializer Node) *PropertyAssignment {
	ret := &PropertyAssignment{Name: name, Initializer: initializer}
	b.init(ret)
	return ret
}

func (b *Builder) ShorthandProperty(name *Identifier) *ShorthandProperty {
	ret := &ShorthandProperty{Name: name}
	b.init(ret)
	return ret
}

func (b *Builder) SpreadElement(expression Node) *SpreadElement {
	ret := &SpreadElement{Expression: expression}
	b.init(ret)
	return ret
}

func (b *Builder) ComputedName(expression Node) *ComputedName {
	ret := &ComputedName{Expression: expression}
	b.init(ret)
	return ret
}

func (b *Builder) CallExpr(callee Node, arguments []Node) *CallExpr {
	ret := &CallExpr{Callee: callee, Arguments: arguments}
	b.init(ret)
	return ret
}

func (b *Builder) NewExpr(callee Node, arguments []Node) *NewExpr {
	ret := &NewExpr{Callee: callee, Arguments: arguments}
	b.init(ret)
	return ret
}

func (b *Builder) PropertyAccessExpr(expression Node, name Node) *PropertyAccessExpr {
	ret := &PropertyAccessExpr{Expression: expression, Name: name}
	b.init(ret)
	return ret
}

// UpdateSourceFile returns a copy of file with parts replaced
func (b *Builder) UpdateSourceFile(file *SourceFile, parts []Node) *SourceFile {
	ret := &SourceFile{Path: file.Path, Parts: parts}
	b.derive(ret, file)
	return ret
}

// UpdateFragment returns a copy of fragment with parts replaced
func (b *Builder) UpdateFragment(fragment *Fragment, parts []Node) *Fragment {
	ret := &Fragment{Parts: parts}
	b.derive(ret, fragment)
	return ret
}

// UpdateClassDecl returns a copy of class with decorators, name and members replaced
func (b *Builder) UpdateClassDecl(class *ClassDecl, decorators []*Decorator, name *Identifier, members []Node) *ClassDecl {
	ret := *class
	ret.base = base{}
	ret.Decorators = decorators
	ret.Name = name
	ret.Members = members
	b.derive(&ret, class)
	return &ret
}

// UpdateMethodDecl returns a copy of method with decorators, name and body replaced
func (b *Builder) UpdateMethodDecl(method *MethodDecl, decorators []*Decorator, name Node, body Node) *MethodDecl {
	ret := *method
	ret.base = base{}
	ret.Decorators = decorators
	ret.Name = name
	ret.Body = body
	b.derive(&ret, method)
	return &ret
}

// UpdatePropertyDecl returns a copy of property with decorators, name and initializer replaced
func (b *Builder) UpdatePropertyDecl(property *PropertyDecl, decorators []*Decorator, name Node, initializer Node) *PropertyDecl {
	ret := *property
	ret.base = base{}
	ret.Decorators = decorators
	ret.Name = name
	ret.Initializer = initializer
	b.derive(&ret, property)
	return &ret
}

// UpdateBlock returns a copy of block with statements replaced
func (b *Builder) UpdateBlock(block *Block, statements []Node) *Block {
	ret := &Block{Statements: statements}
	b.derive(ret, block)
	return ret
}

// WithoutDecorator returns a copy of node without the given decorator
func (b *Builder) WithoutDecorator(node Decoratable, decorator *Decorator) Decoratable {
	decorators := make([]*Decorator, 0, len(node.DecoratorList()))
	for _, candidate := range node.DecoratorList() {
		if candidate.ID() != decorator.ID() {
			decorators = append(decorators, candidate)
		}
	}
	switch actual := node.(type) {
	case *ClassDecl:
		return b.UpdateClassDecl(actual, decorators, actual.Name, actual.Members)
	case *MethodDecl:
		return b.UpdateMethodDecl(actual, decorators, actual.Name, actual.Body)
	case *PropertyDecl:
		return b.UpdatePropertyDecl(actual, decorators, actual.Name, actual.Initializer)
	}
	return node
}
