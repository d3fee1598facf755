package comment

import (
	"context"
	"strings"
	"time"

	"github.com/peershare/sharing-backend/internal/item"
	"github.com/peershare/sharing-backend/internal/user"
)

// ItemCatalog resolves item ids. Satisfied by item.Service.
type ItemCatalog interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

// UserDirectory resolves user ids. Satisfied by user.Service.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// BookingLedger answers whether a user completed a booking of an item.
// Satisfied by booking.Service.
type BookingLedger interface {
	HasCompletedBooking(ctx context.Context, itemID, userID string, asOf time.Time) (bool, error)
}

type Service interface {
	// Add stores a review. Only users whose booking of the item already
	// ended may comment.
	Add(ctx context.Context, itemID, authorID, text string) (*Comment, error)
	// ListByItem returns the item's comments, newest first.
	ListByItem(ctx context.Context, itemID string) ([]*Comment, error)
}

type service struct {
	repo     Repository
	items    ItemCatalog
	users    UserDirectory
	bookings BookingLedger

	now func() time.Time
}

func NewService(repo Repository, items ItemCatalog, users UserDirectory, bookings BookingLedger) Service {
	return &service{
		repo:     repo,
		items:    items,
		users:    users,
		bookings: bookings,
		now:      time.Now,
	}
}

func (s *service) Add(ctx context.Context, itemID, authorID, text string) (*Comment, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	hasBooked, err := s.bookings.HasCompletedBooking(ctx, itemID, authorID, s.now())
	if err != nil {
		return nil, err
	}
	if !hasBooked {
		return nil, ErrNotBooked
	}

	c := &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       text,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *service) ListByItem(ctx context.Context, itemID string) ([]*Comment, error) {
	return s.repo.ListByItem(ctx, itemID)
}
