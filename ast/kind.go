package ast

// Kind identifies a node type
type Kind int

const (
	KindUnknown Kind = iota
	KindSourceFile
	KindText
	KindFragment
	KindClassDecl
	KindMethodDecl
	KindPropertyDecl
	KindDecorator
	KindIdentifier
	KindPrivateIdentifier
	KindStringLiteral
	KindTemplateLiteral
	KindNumericLiteral
	KindBigIntLiteral
	KindRegexLiteral
	KindTrueKeyword
	KindFalseKeyword
	KindNullKeyword
	KindThisKeyword
	KindArrayLiteral
	KindObjectLiteral
	KindPropertyAssignment
	KindShorthandProperty
	KindSpreadElement
	KindComputedName
	KindCallExpr
	KindNewExpr
	KindPropertyAccessExpr
	KindExpressionStmt
	KindReturnStmt
	KindBlock
	KindOmittedExpr
)

var kindNames = [...]string{
	KindUnknown:            "Unknown",
	KindSourceFile:         "SourceFile",
	KindText:               "Text",
	KindFragment:           "Fragment",
	KindClassDecl:          "ClassDeclaration",
	KindMethodDecl:         "MethodDeclaration",
	KindPropertyDecl:       "PropertyDeclaration",
	KindDecorator:          "Decorator",
	KindIdentifier:         "Identifier",
	KindPrivateIdentifier:  "PrivateIdentifier",
	KindStringLiteral:      "StringLiteral",
	KindTemplateLiteral:    "NoSubstitutionTemplateLiteral",
	KindNumericLiteral:     "NumericLiteral",
	KindBigIntLiteral:      "BigIntLiteral",
	KindRegexLiteral:       "RegularExpressionLiteral",
	KindTrueKeyword:        "TrueKeyword",
	KindFalseKeyword:       "FalseKeyword",
	KindNullKeyword:        "NullKeyword",
	KindThisKeyword:        "ThisKeyword",
	KindArrayLiteral:       "ArrayLiteralExpression",
	KindObjectLiteral:      "ObjectLiteralExpression",
	KindPropertyAssignment: "PropertyAssignment",
	KindShorthandProperty:  "ShorthandPropertyAssignment",
	KindSpreadElement:      "SpreadElement",
	KindComputedName:       "ComputedPropertyName",
	KindCallExpr:           "CallExpression",
	KindNewExpr:            "NewExpression",
	KindPropertyAccessExpr: "PropertyAccessExpression",
	KindExpressionStmt:     "ExpressionStatement",
	KindReturnStmt:         "ReturnStatement",
	KindBlock:              "Block",
	KindOmittedExpr:        "OmittedExpression",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// IsDecoratable returns true for class, method and property declarations
func (k Kind) IsDecoratable() bool {
	return k == KindClassDecl || k == KindMethodDecl || k == KindPropertyDecl
}
