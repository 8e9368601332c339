package ast

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns value as a double quoted string literal
func Quote(value string) string {
	builder := strings.Builder{}
	builder.WriteByte('"')
	escape(&builder, value, '"')
	builder.WriteByte('"')
	return builder.String()
}

// QuoteTemplate returns value as a template literal without substitutions
func QuoteTemplate(value string) string {
	builder := strings.Builder{}
	builder.WriteByte('`')
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		switch {
		case r == '`' || r == '\\':
			builder.WriteByte('\\')
			builder.WriteRune(r)
		case r == '$' && i+1 < len(value) && value[i+1] == '{':
			builder.WriteString("\\$")
		default:
			builder.WriteString(value[i : i+size])
		}
		i += size
	}
	builder.WriteByte('`')
	return builder.String()
}

func escape(builder *strings.Builder, value string, quote rune) {
	for _, r := range value {
		switch r {
		case quote, '\\':
			builder.WriteByte('\\')
			builder.WriteRune(r)
		case '\n':
			builder.WriteString("\\n")
		case '\r':
			builder.WriteString("\\r")
		case '\t':
			builder.WriteString("\\t")
		case '\b':
			builder.WriteString("\\b")
		case '\f':
			builder.WriteString("\\f")
		case '\v':
			builder.WriteString("\\v")
		case '\u2028', '\u2029':
			builder.WriteString(fmt.Sprintf("\\u%04X", r))
		default:
			if r < 0x20 || r == 0x7f {
				builder.WriteString(fmt.Sprintf("\\u%04X", r))
				continue
			}
			builder.WriteRune(r)
		}
	}
}

// Unquote decodes a string or template literal including its delimiters
func Unquote(literal string) (string, error) {
	if len(literal) < 2 {
		return "", fmt.Errorf("invalid string literal: %s", literal)
	}
	quote := literal[0]
	if (quote != '"' && quote != '\'' && quote != '`') || literal[len(literal)-1] != quote {
		return "", fmt.Errorf("invalid string literal: %s", literal)
	}
	body := literal[1 : len(literal)-1]
	if strings.IndexByte(body, '\\') == -1 {
		return body, nil
	}
	builder := strings.Builder{}
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			builder.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("invalid escape at end of: %s", literal)
		}
		switch c = body[i]; c {
		case 'n':
			builder.WriteByte('\n')
		case 'r':
			builder.WriteByte('\r')
		case 't':
			builder.WriteByte('\t')
		case 'b':
			builder.WriteByte('\b')
		case 'f':
			builder.WriteByte('\f')
		case 'v':
			builder.WriteByte('\v')
		case '0':
			builder.WriteByte(0)
		case '\n':
			// line continuation
		case '\r':
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case 'x':
			if i+3 > len(body) {
				return "", fmt.Errorf("invalid hex escape in: %s", literal)
			}
			r, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("invalid hex escape in: %s, %w", literal, err)
			}
			builder.WriteRune(rune(r))
			i += 2
		case 'u':
			hex := ""
			if i+1 < len(body) && body[i+1] == '{' {
				end := strings.IndexByte(body[i:], '}')
				if end == -1 {
					return "", fmt.Errorf("invalid unicode escape in: %s", literal)
				}
				hex = body[i+2 : i+end]
				i += end
			} else {
				if i+5 > len(body) {
					return "", fmt.Errorf("invalid unicode escape in: %s", literal)
				}
				hex = body[i+1 : i+5]
				i += 4
			}
			r, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid unicode escape in: %s, %w", literal, err)
			}
			high := rune(r)
			if utf16.IsSurrogate(high) && i+6 < len(body) && body[i+1] == '\\' && body[i+2] == 'u' {
				if low, err := strconv.ParseUint(body[i+3:i+7], 16, 32); err == nil {
					if decoded := utf16.DecodeRune(high, rune(low)); decoded != utf8.RuneError {
						builder.WriteRune(decoded)
						i += 6
						continue
					}
				}
			}
			builder.WriteRune(high)
		default:
			builder.WriteByte(c)
		}
	}
	return builder.String(), nil
}
