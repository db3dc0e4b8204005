package repository

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post/model"
)

func TestMemoryRepository_CreateAndUpdate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	p, err := repo.Create(ctx, &model.Post{Title: "Top 10", Content: "c", Category: "Fiction"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, now, p.CreatedAt)
	assert.Nil(t, p.UpdatedAt)

	now = now.Add(time.Hour)
	p.Summary = lo.ToPtr("short")
	updated, err := repo.Update(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "short", *updated.Summary)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, now, *updated.UpdatedAt)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	p, err := repo.Create(ctx, &model.Post{Title: "Top", Summary: lo.ToPtr("a")})
	require.NoError(t, err)
	*p.Summary = "mutated"

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", *got.Summary)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, model.ErrPostNotFound)

	_, err = repo.Update(ctx, &model.Post{ID: 1})
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestMemoryRepository_ListPages(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	for _, title := range []string{"Top 1", "Top 2", "Top 3"} {
		_, err := repo.Create(ctx, &model.Post{Title: title})
		require.NoError(t, err)
	}

	page, total, err := repo.List(ctx, model.PostFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "Top 2", page[0].Title)
	assert.Equal(t, "Top 3", page[1].Title)
}
