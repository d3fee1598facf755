package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Item, error)
	ListByRequest(ctx context.Context, requestID string) ([]*Item, error)
	Search(ctx context.Context, text string) ([]*Item, error)
	Update(ctx context.Context, it *Item) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, it *Item) error {
	const query = `
		INSERT INTO public.items (owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		it.OwnerID, it.Name, it.Description, it.Available, it.RequestID,
	).Scan(&it.ID, &it.CreatedAt); err != nil {
		return fmt.Errorf("create item failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	const query = `
		SELECT id, owner_id, name, description, available, request_id, created_at
		FROM public.items
		WHERE id = $1
	`

	var it Item
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.OwnerID, &it.Name, &it.Description,
		&it.Available, &it.RequestID, &it.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}
	return &it, nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Item, error) {
	const query = `
		SELECT id, owner_id, name, description, available, request_id, created_at
		FROM public.items
		WHERE owner_id = $1
		ORDER BY created_at
	`

	return r.queryItems(ctx, query, ownerID)
}

func (r *pgxRepository) ListByRequest(ctx context.Context, requestID string) ([]*Item, error) {
	const query = `
		SELECT id, owner_id, name, description, available, request_id, created_at
		FROM public.items
		WHERE request_id = $1
		ORDER BY created_at
	`

	return r.queryItems(ctx, query, requestID)
}

func (r *pgxRepository) Search(ctx context.Context, text string) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	pattern := "%" + text + "%"
	query, args, err := psql.Select(
		"id", "owner_id", "name", "description", "available", "request_id", "created_at",
	).
		From("public.items").
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search items query failed: %w", err)
	}

	return r.queryItems(ctx, query, args...)
}

func (r *pgxRepository) Update(ctx context.Context, it *Item) error {
	const query = `
		UPDATE public.items
		SET name = $1, description = $2, available = $3
		WHERE id = $4
	`

	ct, err := r.pool.Exec(ctx, query, it.Name, it.Description, it.Available, it.ID)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) queryItems(ctx context.Context, query string, args ...any) ([]*Item, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.OwnerID, &it.Name, &it.Description,
			&it.Available, &it.RequestID, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, &it)
	}

	return items, rows.Err()
}
