package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"blog-backend/internal/domains/author/model"
)

// memoryRepository keeps authors in process memory.
// Name uniqueness is checked under the same lock as the write.
type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]model.Author
	byName map[string]int64
	now    func() time.Time
}

// MemoryOption configures the in-memory repository
type MemoryOption func(*memoryRepository)

// WithClock overrides the time source used for created_at / updated_at
func WithClock(now func() time.Time) MemoryOption {
	return func(r *memoryRepository) { r.now = now }
}

// NewMemoryRepository creates an empty in-memory author repository
func NewMemoryRepository(opts ...MemoryOption) RepositoryInterface {
	r := &memoryRepository{
		byID:   make(map[int64]model.Author),
		byName: make(map[string]int64),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func clone(a model.Author) *model.Author {
	if a.PhoneNumber != nil {
		p := *a.PhoneNumber
		a.PhoneNumber = &p
	}
	if a.UpdatedAt != nil {
		t := *a.UpdatedAt
		a.UpdatedAt = &t
	}
	return &a
}

func (r *memoryRepository) Create(_ context.Context, a *model.Author) (*model.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[a.Name]; taken {
		return nil, model.ErrNameTaken()
	}

	r.nextID++
	stored := *clone(*a)
	stored.ID = r.nextID
	stored.CreatedAt = r.now().UTC()
	stored.UpdatedAt = nil

	r.byID[stored.ID] = stored
	r.byName[stored.Name] = stored.ID

	return clone(stored), nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return clone(a), nil
}

func (r *memoryRepository) GetByName(_ context.Context, name string) (*model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return clone(r.byID[id]), nil
}

func (r *memoryRepository) List(_ context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	authors := []model.Author{}
	for i := filter.Offset; i < len(ids) && len(authors) < filter.Limit; i++ {
		authors = append(authors, *clone(r.byID[ids[i]]))
	}

	return authors, int64(len(ids)), nil
}

func (r *memoryRepository) Update(_ context.Context, a *model.Author) (*model.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[a.ID]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	if holder, taken := r.byName[a.Name]; taken && holder != a.ID {
		return nil, model.ErrNameTaken()
	}

	now := r.now().UTC()
	updated := *clone(*a)
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = &now

	delete(r.byName, current.Name)
	r.byID[a.ID] = updated
	r.byName[updated.Name] = a.ID

	return clone(updated), nil
}
