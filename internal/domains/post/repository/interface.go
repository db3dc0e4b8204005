package repository

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

// RepositoryInterface defines data access for posts
type RepositoryInterface interface {
	// Create inserts a new post
	// Returns: created post with ID and created_at, updated_at NULL
	Create(ctx context.Context, post *model.Post) (*model.Post, error)

	// GetByID retrieves post by ID
	// Returns: ErrPostNotFound if not exists
	GetByID(ctx context.Context, id int64) (*model.Post, error)

	// List retrieves a page of posts ordered by id, plus the total count
	List(ctx context.Context, filter model.PostFilter) ([]model.Post, int64, error)

	// Update writes every mutable column and stamps updated_at
	// Returns: ErrPostNotFound if not exists
	Update(ctx context.Context, post *model.Post) (*model.Post, error)
}
