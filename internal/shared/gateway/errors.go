package gateway

import "errors"

// ValidationError is the single rejection kind produced by the gateway.
// Error() returns the field-specific message unchanged so callers can show it as-is.
type ValidationError struct {
	Entity  string `json:"entity"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a rejection for entity.field
func NewValidationError(entity, field, message string) *ValidationError {
	return &ValidationError{
		Entity:  entity,
		Field:   field,
		Message: message,
	}
}

// IsValidationError reports whether err (or anything it wraps) is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError unwraps err into a ValidationError when possible
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
