package config

import (
	"fmt"
	"strings"
)

// Error aggregates configuration problems.
type Error struct {
	Missing []string // unset environment variables
	Errors  []string // validation errors

	missingToken bool
}

func (e *Error) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing environment variables: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Errors) > 0 {
		parts = append(parts, "validation failed:")
		for _, err := range e.Errors {
			parts = append(parts, "  - "+err)
		}
	}
	return strings.Join(parts, "\n")
}

func (e *Error) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

// Is reports ErrMissingToken when the token was the missing piece.
func (e *Error) Is(target error) bool {
	return target == ErrMissingToken && e.missingToken
}
