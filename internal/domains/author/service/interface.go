package service

import (
	"context"

	"blog-backend/internal/domains/author/model"
)

// ServiceInterface defines business logic operations for Author domain
type ServiceInterface interface {
	// Create validates every field and inserts a new author
	// Errors: *gateway.ValidationError (nothing is written)
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// Update validates only the fields present in req, then persists them
	// Business rules:
	// - updating an author to its own current name is allowed
	// - on rejection the stored author is left untouched, updated_at included
	// Errors: ErrAuthorNotFound, *gateway.ValidationError
	Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error)

	// GetByID retrieves author by ID
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// GetByName retrieves author by exact name
	// Errors: ErrAuthorNotFound
	GetByName(ctx context.Context, name string) (*model.Author, error)

	// List retrieves a page of authors
	// Default limit: 20, max: 100
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)
}
