package comptime

import "fmt"

// Reason classifies a ConfigurationError
type Reason string

const (
	// ReasonArity reports a pass factory invoked with an unsupported number of arguments
	ReasonArity Reason = "arity"
	// ReasonArgument reports a decorator factory argument that is not a literal
	ReasonArgument Reason = "argument"
	// ReasonObjectKey reports an object literal key that is not a literal string, number or identifier
	ReasonObjectKey Reason = "object-key"
	// ReasonUsage reports a decorator invoked in a form its implementation does not support
	ReasonUsage Reason = "usage"
	// ReasonTraversal reports an unknown traversal policy
	ReasonTraversal Reason = "traversal"
)

// ConfigurationError reports a build-time authoring mistake; it aborts the whole pass.
type ConfigurationError struct {
	Reason Reason
	// Source is the literal source text of the offending expression or call
	Source string
	Msg    string
}

func (e *ConfigurationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("invalid %s: `%s`", e.Reason, e.Source)
}

// NewConfigurationError creates a configuration error with formatted message
func NewConfigurationError(reason Reason, source string, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: reason, Source: source, Msg: fmt.Sprintf(format, args...)}
}
