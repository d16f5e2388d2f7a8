// Structured validation errors for symbolic parameter parsing.
package blasym

import (
	"errors"
	"fmt"
	"strings"
)

// ParamError reports a symbolic kernel argument outside the vocabulary
// accepted for its parameter kind. The message enumerates the accepted
// tokens so the caller can self-correct; it never mentions the target
// codes the tokens translate to.
type ParamError struct {
	Param    string   // Parameter kind being translated, e.g. "transpose"
	Value    any      // The rejected input
	Accepted []string // Tokens valid for this parameter kind
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	return fmt.Sprintf("blasym: invalid %s argument %v: expected %s",
		e.Param, formatValue(e.Value), joinAccepted(e.Accepted))
}

// newParamError builds the single error kind this package can produce.
func newParamError(param string, value any, accepted ...string) error {
	return &ParamError{Param: param, Value: value, Accepted: accepted}
}

// IsInvalidArgError checks whether an error is a parameter validation
// error from this package.
func IsInvalidArgError(err error) bool {
	var pe *ParamError
	return errors.As(err, &pe)
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "<absent>"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v (%T)", v, v)
	}
}

// joinAccepted renders a vocabulary as "a, b, or c".
func joinAccepted(accepted []string) string {
	switch len(accepted) {
	case 0:
		return ""
	case 1:
		return accepted[0]
	case 2:
		return accepted[0] + " or " + accepted[1]
	default:
		return strings.Join(accepted[:len(accepted)-1], ", ") + ", or " + accepted[len(accepted)-1]
	}
}
