package domain

import "errors"

var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrUserNotFound = errors.New("user not found")
var ErrProfileExists = errors.New("photographer profile already exists")
var ErrProfileNotFound = errors.New("photographer profile not found")
var ErrPortfolioItemNotFound = errors.New("portfolio item not found")
var ErrForbidden = errors.New("access forbidden")
var ErrTimeout = errors.New("operation timed out")

// FieldFailure describes a single field-level validation failure.
type FieldFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures for one mutating operation.
// It is returned whole so callers can correct every offending field at once.
type ValidationError struct {
	Fields []FieldFailure
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := "validation failed: " + e.Fields[0].Field
	if len(e.Fields) > 1 {
		msg += " (and more)"
	}
	return msg
}

// Add appends a failure and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldFailure{Field: field, Message: message})
	return e
}

// Err returns nil when no failures were recorded, otherwise the error itself.
// Validation code builds up failures and returns Err() at the end.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
