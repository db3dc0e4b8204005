package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"blog-backend/internal/domains/post/model"
)

type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	posts  map[int64]model.Post
	now    func() time.Time
}

type MemoryOption func(*memoryRepository)

// WithClock overrides the time source used for created_at / updated_at
func WithClock(now func() time.Time) MemoryOption {
	return func(r *memoryRepository) { r.now = now }
}

// NewMemoryRepository creates an empty in-memory post repository
func NewMemoryRepository(opts ...MemoryOption) RepositoryInterface {
	r := &memoryRepository{
		posts: make(map[int64]model.Post),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func clone(p model.Post) *model.Post {
	if p.Summary != nil {
		p.Summary = lo.ToPtr(*p.Summary)
	}
	if p.UpdatedAt != nil {
		p.UpdatedAt = lo.ToPtr(*p.UpdatedAt)
	}
	return &p
}

func (r *memoryRepository) Create(_ context.Context, p *model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *clone(*p)
	stored.ID = r.nextID
	stored.CreatedAt = r.now().UTC()
	stored.UpdatedAt = nil
	r.posts[stored.ID] = stored

	return clone(stored), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return clone(p), nil
}

func (r *memoryRepository) List(_ context.Context, filter model.PostFilter) ([]model.Post, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := lo.Keys(r.posts)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	posts := []model.Post{}
	for i := filter.Offset; i < len(ids) && len(posts) < filter.Limit; i++ {
		posts = append(posts, *clone(r.posts[ids[i]]))
	}

	return posts, int64(len(ids)), nil
}

func (r *memoryRepository) Update(_ context.Context, p *model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.posts[p.ID]
	if !ok {
		return nil, model.ErrPostNotFound
	}

	updated := *clone(*p)
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = lo.ToPtr(r.now().UTC())
	r.posts[p.ID] = updated

	return clone(updated), nil
}
