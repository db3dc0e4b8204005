package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/author/model"
)

const (
	pgUniqueViolation   = "23505"
	authorsNameKey      = "authors_name_key"
	authorSelectColumns = "id, name, phone_number, created_at, updated_at"
)

// postgresRepository implements RepositoryInterface on a pgx pool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.PhoneNumber,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// isNameTaken reports whether err is the storage-level unique violation on authors.name
func isNameTaken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == authorsNameKey
}

// Create inserts new author; the database assigns id and created_at
func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, phone_number)
        VALUES ($1, $2)
        RETURNING ` + authorSelectColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, a.PhoneNumber))
	if err != nil {
		if isNameTaken(err) {
			return nil, model.ErrNameTaken()
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

// GetByID retrieves author by ID
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `SELECT ` + authorSelectColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

// GetByName retrieves author by exact name. Always reads committed state.
func (r *postgresRepository) GetByName(ctx context.Context, name string) (*model.Author, error) {
	query := `SELECT ` + authorSelectColumns + ` FROM authors WHERE name = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by name: %w", err)
	}
	return a, nil
}

// List retrieves paginated authors ordered by id
func (r *postgresRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	query := `
        SELECT ` + authorSelectColumns + `
        FROM authors
        ORDER BY id ASC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0, filter.Limit)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

// Update writes the mutable columns and stamps updated_at in one statement
func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET
            name = $1,
            phone_number = $2,
            updated_at = NOW()
        WHERE id = $3
        RETURNING ` + authorSelectColumns

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, a.PhoneNumber, a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		if isNameTaken(err) {
			return nil, model.ErrNameTaken()
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return updated, nil
}
