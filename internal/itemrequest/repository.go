package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *ItemRequest) error
	GetByID(ctx context.Context, id string) (*ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*ItemRequest, error)
	// ListExcluding returns requests from everyone except the given user,
	// newest first, with offset paging and the total count.
	ListExcluding(ctx context.Context, requesterID string, from, size int) ([]*ItemRequest, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	const query = `
		INSERT INTO public.item_requests (requester_id, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(ctx, query, req.RequesterID, req.Description).
		Scan(&req.ID, &req.CreatedAt); err != nil {
		return fmt.Errorf("create item request failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ItemRequest, error) {
	const query = `
		SELECT id, requester_id, description, created_at
		FROM public.item_requests
		WHERE id = $1
	`

	var req ItemRequest
	if err := r.pool.QueryRow(ctx, query, id).
		Scan(&req.ID, &req.RequesterID, &req.Description, &req.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item request failed: %w", err)
	}
	return &req, nil
}

func (r *pgxRepository) ListByRequester(ctx context.Context, requesterID string) ([]*ItemRequest, error) {
	const query = `
		SELECT id, requester_id, description, created_at
		FROM public.item_requests
		WHERE requester_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list item requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.Description, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item request failed: %w", err)
		}
		requests = append(requests, &req)
	}

	return requests, rows.Err()
}

func (r *pgxRepository) ListExcluding(ctx context.Context, requesterID string, from, size int) ([]*ItemRequest, int, error) {
	const query = `
		SELECT id, requester_id, description, created_at,
		       count(*) OVER() AS total_count
		FROM public.item_requests
		WHERE requester_id <> $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, requesterID, size, from)
	if err != nil {
		return nil, 0, fmt.Errorf("list item requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	var total int
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.Description, &req.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan item request failed: %w", err)
		}
		requests = append(requests, &req)
	}

	return requests, total, rows.Err()
}
