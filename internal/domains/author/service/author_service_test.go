package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author/model"
	"blog-backend/internal/domains/author/repository"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/gateway"
)

func strPtr(s string) *string { return &s }

func newService(t *testing.T) (ServiceInterface, repository.RepositoryInterface) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return NewAuthorService(repo), repo
}

func requireRejected(t *testing.T, err error, msg string) {
	t.Helper()
	ve, ok := gateway.AsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Equal(t, msg, ve.Message)
}

func TestAuthorService_CreateJaneDoe(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	jane, err := svc.Create(ctx, &model.CreateAuthorRequest{
		Name:        strPtr("Jane Doe"),
		PhoneNumber: strPtr("5551234567"),
	})
	require.NoError(t, err)
	assert.NotZero(t, jane.ID)
	assert.Equal(t, "Jane Doe", jane.Name)
	assert.Equal(t, "5551234567", *jane.PhoneNumber)
	assert.False(t, jane.CreatedAt.IsZero())

	_, err = svc.Create(ctx, &model.CreateAuthorRequest{Name: strPtr("Jane Doe")})
	requireRejected(t, err, model.MsgNameUnique)
}

func TestAuthorService_CreateRejectsWithoutWriting(t *testing.T) {
	tests := []struct {
		name string
		req  model.CreateAuthorRequest
		msg  string
	}{
		{"missing name", model.CreateAuthorRequest{}, model.MsgNameRequired},
		{"blank name", model.CreateAuthorRequest{Name: strPtr("   ")}, model.MsgNameRequired},
		{"short phone", model.CreateAuthorRequest{Name: strPtr("A"), PhoneNumber: strPtr("123")}, model.MsgPhoneInvalid},
		{"letters in phone", model.CreateAuthorRequest{Name: strPtr("A"), PhoneNumber: strPtr("55512345ab")}, model.MsgPhoneInvalid},
		{"empty phone", model.CreateAuthorRequest{Name: strPtr("A"), PhoneNumber: strPtr("")}, model.MsgPhoneInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			ctx := context.Background()

			_, err := svc.Create(ctx, &tt.req)
			requireRejected(t, err, tt.msg)

			_, total, err := repo.List(ctx, model.AuthorFilter{Limit: 10})
			require.NoError(t, err)
			assert.Zero(t, total)
		})
	}
}

func TestAuthorService_CreateWithoutPhone(t *testing.T) {
	svc, _ := newService(t)

	a, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Name: strPtr("No Phone")})
	require.NoError(t, err)
	assert.Nil(t, a.PhoneNumber)
}

func TestAuthorService_UpdateToOwnName(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	jane, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: strPtr("Jane Doe")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, jane.ID, &model.UpdateAuthorRequest{Name: shared.Some("Jane Doe")})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestAuthorService_UpdateToTakenName(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: strPtr("Jane Doe")})
	require.NoError(t, err)
	john, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: strPtr("John Roe")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, john.ID, &model.UpdateAuthorRequest{Name: shared.Some("Jane Doe")})
	requireRejected(t, err, model.MsgNameUnique)
}

func TestAuthorService_RejectedUpdateLeavesRecordUnchanged(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	jane, err := svc.Create(ctx, &model.CreateAuthorRequest{
		Name:        strPtr("Jane Doe"),
		PhoneNumber: strPtr("5551234567"),
	})
	require.NoError(t, err)

	// name would be valid, phone is not: neither may be applied
	_, err = svc.Update(ctx, jane.ID, &model.UpdateAuthorRequest{
		Name:        shared.Some("Jane Q. Doe"),
		PhoneNumber: shared.Some("nope"),
	})
	requireRejected(t, err, model.MsgPhoneInvalid)

	got, err := svc.GetByID(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "5551234567", *got.PhoneNumber)
	assert.Nil(t, got.UpdatedAt)
}

func TestAuthorService_UpdatePhoneNumber(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	jane, err := svc.Create(ctx, &model.CreateAuthorRequest{
		Name:        strPtr("Jane Doe"),
		PhoneNumber: strPtr("5551234567"),
	})
	require.NoError(t, err)

	t.Run("absent key keeps the value", func(t *testing.T) {
		updated, err := svc.Update(ctx, jane.ID, &model.UpdateAuthorRequest{Name: shared.Some("Jane Doe")})
		require.NoError(t, err)
		assert.Equal(t, "5551234567", *updated.PhoneNumber)
	})

	t.Run("null clears the value", func(t *testing.T) {
		updated, err := svc.Update(ctx, jane.ID, &model.UpdateAuthorRequest{PhoneNumber: shared.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, updated.PhoneNumber)
	})

	t.Run("null name is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, jane.ID, &model.UpdateAuthorRequest{Name: shared.Null[string]()})
		requireRejected(t, err, model.MsgNameRequired)
	})
}

func TestAuthorService_UpdateEmptyRequestIsNoop(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	jane, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: strPtr("Jane Doe")})
	require.NoError(t, err)

	got, err := svc.Update(ctx, jane.ID, &model.UpdateAuthorRequest{})
	require.NoError(t, err)
	assert.Nil(t, got.UpdatedAt)
}

func TestAuthorService_UpdateMissingAuthor(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Update(context.Background(), 99, &model.UpdateAuthorRequest{Name: shared.Some("x")})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorService_Lookups(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	jane, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: strPtr("Jane Doe")})
	require.NoError(t, err)

	got, err := svc.GetByName(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, jane.ID, got.ID)

	_, err = svc.GetByName(ctx, "")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	_, err = svc.GetByID(ctx, 0)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorService_ListClampsPaging(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: strPtr(name)})
		require.NoError(t, err)
	}

	authors, total, err := svc.List(ctx, model.AuthorFilter{Limit: -1, Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, authors, 3)
}

// racingRepo lets the pre-check pass and then loses the race at insert time
type racingRepo struct {
	repository.RepositoryInterface
}

func (racingRepo) GetByName(context.Context, string) (*model.Author, error) {
	return nil, model.ErrAuthorNotFound
}

func TestAuthorService_StorageConflictSurfacesAsValidationError(t *testing.T) {
	inner := repository.NewMemoryRepository()
	ctx := context.Background()
	_, err := inner.Create(ctx, &model.Author{Name: "Jane Doe", CreatedAt: time.Now()})
	require.NoError(t, err)

	svc := NewAuthorService(racingRepo{inner})

	_, err = svc.Create(ctx, &model.CreateAuthorRequest{Name: strPtr("Jane Doe")})
	requireRejected(t, err, model.MsgNameUnique)
}

type failingRepo struct {
	repository.RepositoryInterface
}

func (failingRepo) GetByName(context.Context, string) (*model.Author, error) {
	return nil, errors.New("connection reset")
}

func TestAuthorService_LookupFailureIsNotAValidationError(t *testing.T) {
	svc := NewAuthorService(failingRepo{repository.NewMemoryRepository()})

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Name: strPtr("Jane Doe")})
	require.Error(t, err)
	assert.False(t, gateway.IsValidationError(err))
}
