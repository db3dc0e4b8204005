package model

import (
	"time"

	"blog-backend/internal/shared"
)

// CreateAuthorRequest - POST /v1/authors
// Fields are pointers so a missing name reaches the validator as nil.
type CreateAuthorRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// UpdateAuthorRequest - PATCH /v1/authors/:id
// Only keys present in the body are validated and applied.
type UpdateAuthorRequest struct {
	Name        shared.Optional[string] `json:"name"`
	PhoneNumber shared.Optional[string] `json:"phone_number"`
}

// IsEmpty reports whether the request changes nothing
func (r *UpdateAuthorRequest) IsEmpty() bool {
	return !r.Name.Set && !r.PhoneNumber.Set
}

// AuthorResponse - Basic author information
type AuthorResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// AuthorFilter - Query parameters for listing
type AuthorFilter struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

// Paging bounds for List
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize clamps limit to 1..MaxPageSize (DefaultPageSize when unset) and offset to >= 0
func (f AuthorFilter) Normalize() AuthorFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToEntity converts CreateAuthorRequest to an unsaved Author entity
func (req *CreateAuthorRequest) ToEntity() *Author {
	a := &Author{PhoneNumber: req.PhoneNumber}
	if req.Name != nil {
		a.Name = *req.Name
	}
	return a
}

// ApplyToEntity applies the present fields of UpdateAuthorRequest to author
func (req *UpdateAuthorRequest) ApplyToEntity(author *Author) {
	if req.Name.Set && req.Name.Value != nil {
		author.Name = *req.Name.Value
	}
	if req.PhoneNumber.Set {
		author.PhoneNumber = req.PhoneNumber.Value
	}
}
