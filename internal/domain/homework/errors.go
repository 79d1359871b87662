// internal/domain/homework/errors.go
package homework

import "fmt"

// ErrorKind classifies a validation failure so callers can match on
// the failure class instead of inspecting message text.
type ErrorKind string

const (
	KindBadType       ErrorKind = "bad_type"
	KindMissingKey    ErrorKind = "missing_key"
	KindBadValue      ErrorKind = "bad_value"
	KindMissingField  ErrorKind = "missing_field"
	KindUnknownStatus ErrorKind = "unknown_status"
)

// ValidationError reports a malformed API response or homework record.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func newValidationError(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
