package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/repository"
	"blog-backend/internal/shared/gateway"
)

type postService struct {
	repo    repository.RepositoryInterface
	gateway *gateway.Gateway[model.Post]
}

func NewPostService(repo repository.RepositoryInterface) ServiceInterface {
	return &postService{
		repo:    repo,
		gateway: model.NewGateway(),
	}
}

func (s *postService) Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	candidate := req.ToEntity()

	if err := s.gateway.ValidateAll(ctx, candidate,
		gateway.Assign(model.FieldTitle, req.Title),
		gateway.Assign(model.FieldContent, req.Content),
		gateway.Assign(model.FieldSummary, req.Summary),
		gateway.Assign(model.FieldCategory, req.Category),
	); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("post_id", created.ID).Str("category", created.Category).Msg("post created")
	return created, nil
}

func (s *postService) Update(ctx context.Context, id int64, req *model.UpdatePostRequest) (*model.Post, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return current, nil
	}

	var assignments []gateway.Assignment
	if req.Title.Set {
		assignments = append(assignments, gateway.Assign(model.FieldTitle, req.Title.Value))
	}
	if req.Content.Set {
		assignments = append(assignments, gateway.Assign(model.FieldContent, req.Content.Value))
	}
	if req.Summary.Set {
		assignments = append(assignments, gateway.Assign(model.FieldSummary, req.Summary.Value))
	}
	if req.Category.Set {
		assignments = append(assignments, gateway.Assign(model.FieldCategory, req.Category.Value))
	}

	if err := s.gateway.ValidateAll(ctx, current, assignments...); err != nil {
		return nil, err
	}

	next := *current
	req.ApplyToEntity(&next)

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("post_id", updated.ID).Msg("post updated")
	return updated, nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if id <= 0 {
		return nil, model.ErrPostNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, filter model.PostFilter) ([]model.Post, int64, error) {
	return s.repo.List(ctx, filter.Normalize())
}
