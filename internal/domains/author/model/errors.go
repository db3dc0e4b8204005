package model

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/gateway"
)

// Validation messages. These strings are part of the API contract.
const (
	MsgNameRequired = "Author must have a name"
	MsgNameUnique   = "Author name must be unique"
	MsgPhoneInvalid = "Phone number must be exactly 10 digits"
)

// ErrAuthorNotFound is returned by lookups and updates of a missing author
var ErrAuthorNotFound = errors.New("author not found")

// ErrNameTaken is the rejection returned both by the pre-check and by the storage constraint
func ErrNameTaken() *gateway.ValidationError {
	return gateway.NewValidationError(EntityName, FieldName, MsgNameUnique)
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case gateway.IsValidationError(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case gateway.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
