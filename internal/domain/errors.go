package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrConflictingState is returned when a document's flags contradict each
// other (a workout marked both completed and skipped).
var ErrConflictingState = errors.New("workout cannot be both skipped and completed")

// FieldErrors collects per-field validation failures so callers can report
// every offending field at once instead of failing on the first one.
type FieldErrors map[string]string

// Add records a failure for the given field. The last message wins if a
// field is reported twice.
func (e FieldErrors) Add(field, message string) {
	e[field] = message
}

// Error implements the error interface. Fields are listed in a stable order.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// fieldAt names an element of an embedded array, e.g. "workouts[2].title".
func fieldAt(prefix string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", prefix, i, field)
}

// Err returns the collected errors, or nil when every check passed.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
