package factory

import "github.com/viant/comptime/ast"

func (f *Factory) Text(value string) *ast.Text {
	return created(f, f.builder.Text(value, ""))
}

func (f *Factory) Fragment(parts ...ast.Node) *ast.Fragment {
	return created(f, f.builder.Fragment(parts))
}

func (f *Factory) Decorator(expression ast.Node) *ast.Decorator {
	return created(f, f.builder.Decorator(expression))
}

func (f *Factory) ClassDecl(decorators []*ast.Decorator, modifiers []string, name *ast.Identifier, typeParameters, heritage ast.Node, members []ast.Node) *ast.ClassDecl {
	return created(f, f.builder.ClassDecl(decorators, modifiers, name, typeParameters, heritage, members))
}

func (f *Factory) MethodDecl(decorators []*ast.Decorator, modifiers []string, name ast.Node, parameters []ast.Node, returnType ast.Node, body ast.Node) *ast.MethodDecl {
	return created(f, f.builder.MethodDecl(decorators, modifiers, name, parameters, returnType, body))
}

func (f *Factory) PropertyDecl(decorators []*ast.Decorator, modifiers []string, name ast.Node, token string, typ ast.Node, initializer ast.Node) *ast.PropertyDecl {
	return created(f, f.builder.PropertyDecl(decorators, modifiers, name, token, typ, initializer))
}

func (f *Factory) Block(statements ...ast.Node) *ast.Block {
	return created(f, f.builder.Block(statements))
}

func (f *Factory) ExpressionStmt(expression ast.Node) *ast.ExpressionStmt {
	return created(f, f.builder.ExpressionStmt(expression))
}

func (f *Factory) ReturnStmt(expression ast.Node) *ast.ReturnStmt {
	return created(f, f.builder.ReturnStmt(expression))
}

func (f *Factory) Identifier(text string) *ast.Identifier {
	return created(f, f.builder.Identifier(text))
}

func (f *Factory) PrivateIdentifier(text string) *ast.PrivateIdentifier {
	return created(f, f.builder.PrivateIdentifier(text))
}

func (f *Factory) StringLiteral(value string) *ast.StringLiteral {
	return created(f, f.builder.StringLiteral(value))
}

func (f *Factory) TemplateLiteral(value string) *ast.TemplateLiteral {
	return created(f, f.builder.TemplateLiteral(value))
}

func (f *Factory) NumericLiteral(text string) *ast.NumericLiteral {
	return created(f, f.builder.NumericLiteral(text))
}

func (f *Factory) BigIntLiteral(text string) *ast.BigIntLiteral {
	return created(f, f.builder.BigIntLiteral(text))
}

func (f *Factory) RegexLiteral(pattern, flags string) *ast.RegexLiteral {
	return created(f, f.builder.RegexLiteral(pattern, flags))
}

func (f *Factory) True() *ast.Keyword  { return created(f, f.builder.True()) }
func (f *Factory) False() *ast.Keyword { return created(f, f.builder.False()) }
func (f *Factory) Null() *ast.Keyword  { return created(f, f.builder.Null()) }
func (f *Factory) This() *ast.Keyword  { return created(f, f.builder.This()) }

func (f *Factory) ArrayLiteral(elements ...ast.Node) *ast.ArrayLiteral {
	return created(f, f.builder.ArrayLiteral(elements))
}

func (f *Factory) ObjectLiteral(properties ...ast.Node) *ast.ObjectLiteral {
	return created(f, f.builder.ObjectLiteral(properties))
}

func (f *Factory) PropertyAssignment(name ast.Node, initializer ast.Node) *ast.PropertyAssignment {
	return created(f, f.builder.PropertyAssignment(name, initializer))
}

func (f *Factory) SpreadElement(expression ast.Node) *ast.SpreadElement {
	return created(f, f.builder.SpreadElement(expression))
}

func (f *Factory) CallExpr(callee ast.Node, arguments ...ast.Node) *ast.CallExpr {
	return created(f, f.builder.CallExpr(callee, arguments))
}

func (f *Factory) NewExpr(callee ast.Node, arguments ...ast.Node) *ast.NewExpr {
	return created(f, f.builder.NewExpr(callee, arguments))
}

func (f *Factory) PropertyAccessExpr(expression ast.Node, name string) *ast.PropertyAccessExpr {
	return created(f, f.builder.PropertyAccessExpr(expression, f.builder.Identifier(name)))
}

// Strings creates an array literal of string literals
func (f *Factory) Strings(values ...string) *ast.ArrayLiteral {
	elements := make([]ast.Node, 0, len(values))
	for _, value := range values {
		elements = append(elements, f.builder.StringLiteral(value))
	}
	return f.ArrayLiteral(elements...)
}
