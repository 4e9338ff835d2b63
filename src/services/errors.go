package services

import (
	"errors"
	"strings"
)

// Sentinel errors for explicit error handling with errors.Is. Missing-record
// failures use repositories.ErrNotFound directly.
var (
	// ErrInvalidCredentials indicates a failed login. Unknown username and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyExists indicates the one-time setup ran against a store that
	// already holds an administrator.
	ErrAlreadyExists = errors.New("already exists")
)

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level validation failures. It is always
// produced before any persistence attempt.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a field-level message.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns the error if any field failed, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
