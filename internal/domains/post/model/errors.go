package model

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/gateway"
)

// Validation messages returned to clients as-is
const (
	MsgTitleClickbait  = "Title must contain clickbait"
	MsgContentTooShort = "Content must be at least 250 characters"
	MsgSummaryTooLong  = "Summary must be 250 characters or fewer"
	MsgCategoryInvalid = "Category must be Fiction or Non-Fiction"
)

var ErrPostNotFound = errors.New("post not found")

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case gateway.IsValidationError(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case gateway.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
