package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is matched by every *ValidationError.
var ErrInvalidConfig = errors.New("invalid config")

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrInvalidConfig) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks that both window bounds are minutes of a day. ActiveDays
// is a plain 8-bit mask; the eighth bit is kept but never read.
func (c Config) Validate() error {
	var ve ValidationError
	if !c.BlockTimeStart.Valid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "block_time_start",
			Message: fmt.Sprintf("must be below %d, got %d", MinutesPerDay, c.BlockTimeStart),
		})
	}
	if !c.BlockTimeEnd.Valid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "block_time_end",
			Message: fmt.Sprintf("must be below %d, got %d", MinutesPerDay, c.BlockTimeEnd),
		})
	}
	if ve.HasErrors() {
		return &ve
	}
	return nil
}
