// Package validation provides the email format validation capability
// consumed by the certificate API. Implementations are stateless and
// safe for concurrent use.
package validation

import (
	"fmt"
	"regexp"
)

// FormatValidator checks whether a string matches an expected shape.
// Implementations may fail for reasons unrelated to the input (lookup
// backends, remote verification providers); callers must treat an error
// as "no verdict", never as "invalid".
type FormatValidator interface {
	CheckFormat(email string) (bool, error)
}

// DefaultEmailPattern is the pattern used when no override is configured.
const DefaultEmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

// EmailValidator validates email syntax against a compiled regexp.
type EmailValidator struct {
	emailRegex *regexp.Regexp
}

// NewEmailValidator compiles the given pattern. An empty pattern selects
// DefaultEmailPattern.
func NewEmailValidator(pattern string) (*EmailValidator, error) {
	if pattern == "" {
		pattern = DefaultEmailPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid email pattern %q: %w", pattern, err)
	}
	return &EmailValidator{emailRegex: re}, nil
}

// CheckFormat reports whether email matches the configured pattern.
// The input is matched as-is; no trimming or normalization.
func (v *EmailValidator) CheckFormat(email string) (bool, error) {
	return v.emailRegex.MatchString(email), nil
}
