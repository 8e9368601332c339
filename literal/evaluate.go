package literal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/viant/comptime"
	"github.com/viant/comptime/ast"
)

// EvaluateAll evaluates decorator factory arguments in order
func EvaluateAll(args []ast.Node) ([]Value, error) {
	ret := make([]Value, 0, len(args))
	for _, arg := range args {
		value, err := Evaluate(arg)
		if err != nil {
			return nil, err
		}
		ret = append(ret, value)
	}
	return ret, nil
}

// Evaluate converts a constant expression into a value
func Evaluate(expr ast.Node) (Value, error) {
	switch actual := expr.(type) {
	case *ast.StringLiteral:
		return actual.Value, nil
	case *ast.TemplateLiteral:
		return actual.Value, nil
	case *ast.NumericLiteral:
		value, err := ParseNumber(actual.Text)
		if err != nil {
			return nil, comptime.NewConfigurationError(comptime.ReasonArgument, actual.Text, "invalid numeric literal: `%s`, %v", actual.Text, err)
		}
		return value, nil
	case *ast.BigIntLiteral:
		value, ok := ParseBigInt(actual.Text)
		if !ok {
			return nil, comptime.NewConfigurationError(comptime.ReasonArgument, actual.Text, "invalid bigint literal: `%s`", actual.Text)
		}
		return value, nil
	case *ast.RegexLiteral:
		regex := Regex{Pattern: actual.Pattern, Flags: actual.Flags}
		if _, err := regex.Compile(); err != nil {
			return nil, comptime.NewConfigurationError(comptime.ReasonArgument, regex.String(), "invalid regular expression literal: `%s`, %v", regex, err)
		}
		return regex, nil
	case *ast.Keyword:
		switch actual.Kind() {
		case ast.KindTrueKeyword:
			return true, nil
		case ast.KindFalseKeyword:
			return false, nil
		case ast.KindNullKeyword:
			return nil, nil
		}
	case *ast.Identifier:
		if actual.Text == "undefined" {
			return Undefined{}, nil
		}
	case *ast.ArrayLiteral:
		for _, element := range actual.Elements {
			if element != nil && element.Kind() == ast.KindOmittedExpr {
				source := sourceOf(expr)
				return nil, comptime.NewConfigurationError(comptime.ReasonArgument, source,
					"arguments passed to compile-time decorators must be literals; found array hole: `%s`", source)
			}
		}
		values, err := EvaluateAll(actual.Elements)
		if err != nil {
			return nil, err
		}
		return values, nil
	case *ast.ObjectLiteral:
		return evaluateObject(actual)
	}
	return nil, notLiteral(expr)
}

func evaluateObject(object *ast.ObjectLiteral) (map[string]Value, error) {
	ret := make(map[string]Value, len(object.Properties))
	for _, property := range object.Properties {
		assignment, ok := property.(*ast.PropertyAssignment)
		if !ok {
			source := sourceOf(property)
			return nil, comptime.NewConfigurationError(comptime.ReasonArgument, source,
				"properties of an object literal passed to a compile-time decorator must be literals; found %v: `%s`", kindOf(property), source)
		}
		key, err := objectKey(assignment.Name)
		if err != nil {
			return nil, err
		}
		value, err := Evaluate(assignment.Initializer)
		if err != nil {
			return nil, err
		}
		ret[key] = value
	}
	return ret, nil
}

func objectKey(name ast.Node) (string, error) {
	switch actual := name.(type) {
	case *ast.Identifier:
		return actual.Text, nil
	case *ast.StringLiteral:
		return actual.Value, nil
	case *ast.NumericLiteral:
		value, err := ParseNumber(actual.Text)
		if err != nil {
			break
		}
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	}
	source := sourceOf(name)
	return "", comptime.NewConfigurationError(comptime.ReasonObjectKey, source,
		"property keys of an object literal passed to a compile-time decorator must be literal strings or numbers; found %v: `%s`", kindOf(name), source)
}

// ParseNumber parses a numeric literal as written in source
func ParseNumber(text string) (float64, error) {
	text = strings.ReplaceAll(text, "_", "")
	if len(text) > 1 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			integer, ok := new(big.Int).SetString(strings.ToLower(text), 0)
			if !ok {
				return 0, strconv.ErrSyntax
			}
			value, _ := new(big.Float).SetInt(integer).Float64()
			return value, nil
		}
	}
	return strconv.ParseFloat(text, 64)
}

// ParseBigInt parses a bigint literal including the trailing n
func ParseBigInt(text string) (*big.Int, bool) {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "_", ""), "n")
	if text == "" {
		return nil, false
	}
	return new(big.Int).SetString(strings.ToLower(text), 0)
}

func notLiteral(expr ast.Node) error {
	source := sourceOf(expr)
	return comptime.NewConfigurationError(comptime.ReasonArgument, source,
		"arguments passed to compile-time decorators must be literals; found %v: `%s`", kindOf(expr), source)
}

func sourceOf(n ast.Node) string {
	if n == nil {
		return ""
	}
	return ast.Print(n)
}

func kindOf(n ast.Node) ast.Kind {
	if n == nil {
		return ast.KindUnknown
	}
	return n.Kind()
}
