// Package literal evaluates decorator factory arguments into Go values.
//
// Only constant forms are accepted; the mapping is:
//
//	string, no-substitution template -> string
//	number (decimal, hex, octal, binary) -> float64
//	bigint -> *big.Int
//	regular expression -> Regex
//	true, false -> bool
//	null -> nil
//	undefined -> Undefined
//	array -> []Value
//	object -> map[string]Value
package literal

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Value represents an evaluated literal
type Value = any

// Undefined represents the undefined value, distinct from null (nil)
type Undefined struct{}

func (Undefined) String() string { return "undefined" }

// Regex represents a regular expression literal
type Regex struct {
	Pattern string
	Flags   string
}

func (r Regex) String() string {
	return "/" + r.Pattern + "/" + r.Flags
}

// Has returns true if flag is set
func (r Regex) Has(flag rune) bool {
	return strings.ContainsRune(r.Flags, flag)
}

// Compile compiles the regex with ECMAScript semantics
func (r Regex) Compile() (*regexp2.Regexp, error) {
	options := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, flag := range r.Flags {
		switch flag {
		case 'i':
			options |= regexp2.IgnoreCase
		case 'm':
			options |= regexp2.Multiline
		case 's':
			options |= regexp2.Singleline
		case 'u', 'v':
			options |= regexp2.Unicode
		case 'g', 'y', 'd':
			// matching state flags, no effect on compilation
		default:
			return nil, fmt.Errorf("invalid regular expression flag %q in %s", flag, r)
		}
	}
	return regexp2.Compile(r.Pattern, options)
}
