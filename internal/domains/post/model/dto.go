package model

import (
	"time"

	"github.com/samber/lo"

	"blog-backend/internal/shared"
)

// CreatePostRequest - POST /v1/posts
type CreatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary,omitempty"`
	Category *string `json:"category"`
}

// UpdatePostRequest - PATCH /v1/posts/:id
type UpdatePostRequest struct {
	Title    shared.Optional[string] `json:"title"`
	Content  shared.Optional[string] `json:"content"`
	Summary  shared.Optional[string] `json:"summary"`
	Category shared.Optional[string] `json:"category"`
}

func (r *UpdatePostRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Content.Set && !r.Summary.Set && !r.Category.Set
}

type PostResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Summary   *string    `json:"summary,omitempty"`
	Category  string     `json:"category"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// PostFilter - Query parameters for listing
type PostFilter struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func (f PostFilter) Normalize() PostFilter {
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

func (p Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Summary:   p.Summary,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToEntity builds an unsaved Post. Nil required fields stay empty; the gateway rejects them first.
func (req *CreatePostRequest) ToEntity() *Post {
	return &Post{
		Title:    lo.FromPtr(req.Title),
		Content:  lo.FromPtr(req.Content),
		Summary:  req.Summary,
		Category: lo.FromPtr(req.Category),
	}
}

// ApplyToEntity applies the present fields of UpdatePostRequest to post
func (req *UpdatePostRequest) ApplyToEntity(post *Post) {
	if req.Title.Set {
		post.Title = lo.FromPtr(req.Title.Value)
	}
	if req.Content.Set {
		post.Content = lo.FromPtr(req.Content.Value)
	}
	if req.Summary.Set {
		post.Summary = req.Summary.Value
	}
	if req.Category.Set {
		post.Category = lo.FromPtr(req.Category.Value)
	}
}
