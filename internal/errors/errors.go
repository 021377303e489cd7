package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInterviewerNotFound is returned when an interviewer application is not found
	ErrInterviewerNotFound = errors.New("interviewer not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// InterviewerNotFoundError represents an interviewer not found error with context
type InterviewerNotFoundError struct {
	ApplicationID string
}

func (e *InterviewerNotFoundError) Error() string {
	return fmt.Sprintf("interviewer with application ID '%s' not found", e.ApplicationID)
}

func (e *InterviewerNotFoundError) Is(target error) bool {
	return target == ErrInterviewerNotFound
}

// NewInterviewerNotFoundError creates a new InterviewerNotFoundError
func NewInterviewerNotFoundError(applicationID string) *InterviewerNotFoundError {
	return &InterviewerNotFoundError{ApplicationID: applicationID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
