package repository

import (
	"context"

	"blog-backend/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors.
// Implementations enforce name uniqueness as a hard constraint and report a
// violation as model.ErrNameTaken(), the same rejection the validator produces.
type RepositoryInterface interface {
	// Create inserts a new author
	// Returns: created author with ID and created_at, updated_at NULL
	Create(ctx context.Context, author *model.Author) (*model.Author, error)

	// GetByID retrieves author by ID
	// Returns: ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// GetByName retrieves author by exact, case-sensitive name
	// Returns: ErrAuthorNotFound if not exists
	GetByName(ctx context.Context, name string) (*model.Author, error)

	// List retrieves a page of authors ordered by id, plus the total count
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)

	// Update writes name and phone_number of an existing author and stamps updated_at
	// Returns: ErrAuthorNotFound if not exists
	Update(ctx context.Context, author *model.Author) (*model.Author, error)
}
