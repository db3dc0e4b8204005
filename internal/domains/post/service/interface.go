package service

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

// ServiceInterface defines business logic operations for Post domain
type ServiceInterface interface {
	// Create validates title, content, summary and category, then inserts
	// Errors: *gateway.ValidationError (nothing is written)
	Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error)

	// Update validates only the fields present in req, then persists them
	// Errors: ErrPostNotFound, *gateway.ValidationError
	Update(ctx context.Context, id int64, req *model.UpdatePostRequest) (*model.Post, error)

	GetByID(ctx context.Context, id int64) (*model.Post, error)

	List(ctx context.Context, filter model.PostFilter) ([]model.Post, int64, error)
}
