package planner

import "fmt"

// ValidationError reports a malformed request field. Validation failures are
// fatal: no search is attempted. Infeasibility (no non-empty schedule fits)
// is not a validation error and is represented by an empty result instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
