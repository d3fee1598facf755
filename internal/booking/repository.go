package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// ListByBooker returns the user's bookings ordered by start descending.
	ListByBooker(ctx context.Context, bookerID string) ([]*Booking, error)
	// ListByItemOwner returns bookings of all items the owner lists,
	// ordered by start descending.
	ListByItemOwner(ctx context.Context, ownerID string) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	LastForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error)
	NextForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error)
	ExistsCompleted(ctx context.Context, itemID, userID string, asOf time.Time) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	const query = `
		INSERT INTO public.bookings (item_id, booker_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		b.ItemID, b.BookerID, b.Start, b.End, b.Status,
	).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.item_id", "i.name", "b.booker_id",
		"b.start_time", "b.end_time", "b.status", "b.created_at",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.BookerID,
		&b.Start, &b.End, &b.Status, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.item_id", "i.name", "b.booker_id",
		"b.start_time", "b.end_time", "b.status", "b.created_at",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Where(squirrel.Eq{"b.booker_id": bookerID}).
		OrderBy("b.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args...)
}

func (r *pgxRepository) ListByItemOwner(ctx context.Context, ownerID string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.item_id", "i.name", "b.booker_id",
		"b.start_time", "b.end_time", "b.status", "b.created_at",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Where(squirrel.Eq{"i.owner_id": ownerID}).
		OrderBy("b.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list owner bookings query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args...)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	const query = `
		UPDATE public.bookings
		SET status = $1
		WHERE id = $2
	`

	ct, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) LastForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	const query = `
		SELECT b.id, b.item_id, i.name, b.booker_id,
		       b.start_time, b.end_time, b.status, b.created_at
		FROM public.bookings b
		JOIN public.items i ON b.item_id = i.id
		WHERE b.item_id = $1 AND b.status = 'APPROVED' AND b.end_time < $2
		ORDER BY b.end_time DESC
		LIMIT 1
	`

	return r.queryOptional(ctx, query, itemID, now)
}

func (r *pgxRepository) NextForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	const query = `
		SELECT b.id, b.item_id, i.name, b.booker_id,
		       b.start_time, b.end_time, b.status, b.created_at
		FROM public.bookings b
		JOIN public.items i ON b.item_id = i.id
		WHERE b.item_id = $1 AND b.status = 'APPROVED' AND b.start_time > $2
		ORDER BY b.start_time ASC
		LIMIT 1
	`

	return r.queryOptional(ctx, query, itemID, now)
}

func (r *pgxRepository) ExistsCompleted(ctx context.Context, itemID, userID string, asOf time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM public.bookings
			WHERE item_id = $1 AND booker_id = $2 AND end_time < $3
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, itemID, userID, asOf).Scan(&exists); err != nil {
		return false, fmt.Errorf("check completed booking failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) queryOptional(ctx context.Context, query string, args ...any) (*Booking, error) {
	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.BookerID,
		&b.Start, &b.End, &b.Status, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ItemID, &b.ItemName, &b.BookerID,
			&b.Start, &b.End, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}
