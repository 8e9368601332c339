package ast

// Identifier represents a name
type Identifier struct {
	base
	Text string
}

func (i *Identifier) Kind() Kind { return KindIdentifier }

// PrivateIdentifier represents `#name`; Text includes the hash
type PrivateIdentifier struct {
	base
	Text string
}

func (i *PrivateIdentifier) Kind() Kind { return KindPrivateIdentifier }

// StringLiteral represents a quoted string; Value is unescaped
type StringLiteral struct {
	base
	Value string
}

func (s *StringLiteral) Kind() Kind { return KindStringLiteral }

// TemplateLiteral represents a template literal without substitutions; Value is unescaped
type TemplateLiteral struct {
	base
	Value string
}

func (t *TemplateLiteral) Kind() Kind { return KindTemplateLiteral }

// NumericLiteral represents a number as written
type NumericLiteral struct {
	base
	Text string
}

func (n *NumericLiteral) Kind() Kind { return KindNumericLiteral }

// BigIntLiteral represents a bigint as written, including the trailing n
type BigIntLiteral struct {
	base
	Text string
}

func (n *BigIntLiteral) Kind() Kind { return KindBigIntLiteral }

// RegexLiteral represents `/pattern/flags`
type RegexLiteral struct {
	base
	Pattern string
	Flags   string
}

func (r *RegexLiteral) Kind() Kind { return KindRegexLiteral }

// Keyword represents true, false, null or this
type Keyword struct {
	base
	kind Kind
}

func (k *Keyword) Kind() Kind { return k.kind }

// Text returns keyword spelling
func (k *Keyword) Text() string {
	switch k.kind {
	case KindTrueKeyword:
		return "true"
	case KindFalseKeyword:
		return "false"
	case KindNullKeyword:
		return "null"
	case KindThisKeyword:
		return "this"
	}
	return ""
}

// ArrayLiteral represents `[elements]`
type ArrayLiteral struct {
	base
	Elements []Node
}

func (a *ArrayLiteral) Kind() Kind { return KindArrayLiteral }

// OmittedExpr represents a hole in an array literal, as in `[1,,2]`
type OmittedExpr struct {
	base
}

func (o *OmittedExpr) Kind() Kind { return KindOmittedExpr }

// ObjectLiteral represents `{properties}`
type ObjectLiteral struct {
	base
	Properties []Node
}

func (o *ObjectLiteral) Kind() Kind { return KindObjectLiteral }

// PropertyAssignment represents `name: initializer` in an object literal
type PropertyAssignment struct {
	base
	Name        Node
	Initializer Node
}

func (p *PropertyAssignment) Kind() Kind { return KindPropertyAssignment }

// ShorthandProperty represents `{ name }`
type ShorthandProperty struct {
	base
	Name *Identifier
}

func (p *ShorthandProperty) Kind() Kind { return KindShorthandProperty }

// SpreadElement represents `...expression`
type SpreadElement struct {
	base
	Expression Node
}

func (s *SpreadElement) Kind() Kind { return KindSpreadElement }

// ComputedName represents `[expression]` used as a property name
type ComputedName struct {
	base
	Expression Node
}

func (c *ComputedName) Kind() Kind { return KindComputedName }

// CallExpr represents `callee(arguments)`
type CallExpr struct {
	base
	Callee    Node
	Arguments []Node
}

func (c *CallExpr) Kind() Kind { return KindCallExpr }

// NewExpr represents `new callee(arguments)`
type NewExpr struct {
	base
	Callee    Node
	Arguments []Node
}

func (n *NewExpr) Kind() Kind { return KindNewExpr }

// PropertyAccessExpr represents `expression.name`
type PropertyAccessExpr struct {
	base
	Expression Node
	Name       Node
}

func (p *PropertyAccessExpr) Kind() Kind { return KindPropertyAccessExpr }
