package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrPlantNotFound indicates no plant has the requested identifier,
	// including identifiers that are not valid store keys.
	ErrPlantNotFound = errors.New("plant not found")

	// ErrInvalidPlant indicates the plant input violates domain constraints.
	ErrInvalidPlant = errors.New("invalid plant")
)

// ValidationError describes a single rejected input field. It wraps
// ErrInvalidPlant so callers can match it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError returns a ValidationError for field with a client-facing message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPlant
}
