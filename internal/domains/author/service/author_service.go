package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/domains/author/repository"
	"blog-backend/internal/shared/gateway"
)

// authorService implements ServiceInterface
type authorService struct {
	repo    repository.RepositoryInterface
	gateway *gateway.Gateway[model.Author]
}

// NewAuthorService creates a new author service instance.
// The repository doubles as the name lookup behind the uniqueness check.
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo:    repo,
		gateway: model.NewGateway(repo),
	}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	candidate := req.ToEntity()

	if err := s.gateway.ValidateAll(ctx, candidate,
		gateway.Assign(model.FieldName, req.Name),
		gateway.Assign(model.FieldPhoneNumber, req.PhoneNumber),
	); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Msg("author created")
	return created, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error) {
	// ═══════════════════════════════════════════════════════════
	// STEP 1: FETCH CURRENT AUTHOR
	// ═══════════════════════════════════════════════════════════
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return current, nil
	}

	// ═══════════════════════════════════════════════════════════
	// STEP 2: VALIDATE CHANGED FIELDS ONLY
	// ═══════════════════════════════════════════════════════════
	var assignments []gateway.Assignment
	if req.Name.Set {
		assignments = append(assignments, gateway.Assign(model.FieldName, req.Name.Value))
	}
	if req.PhoneNumber.Set {
		assignments = append(assignments, gateway.Assign(model.FieldPhoneNumber, req.PhoneNumber.Value))
	}

	if err := s.gateway.ValidateAll(ctx, current, assignments...); err != nil {
		return nil, err
	}

	// ═══════════════════════════════════════════════════════════
	// STEP 3: APPLY TO A COPY AND PERSIST
	// ═══════════════════════════════════════════════════════════
	next := *current
	req.ApplyToEntity(&next)

	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", updated.ID).Msg("author updated")
	return updated, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetByName(ctx context.Context, name string) (*model.Author, error) {
	if name == "" {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByName(ctx, name)
}

func (s *authorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	return s.repo.List(ctx, filter.Normalize())
}
