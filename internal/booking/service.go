package booking

import (
	"context"
	"time"

	"github.com/peershare/sharing-backend/internal/item"
	"github.com/peershare/sharing-backend/internal/user"
)

// UserDirectory resolves user ids. Satisfied by user.Service.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// ItemCatalog resolves item ids. Satisfied by item.Service.
type ItemCatalog interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

type CreateRequest struct {
	ItemID string
	Start  time.Time
	End    time.Time
}

type Service interface {
	// Create validates and stores a new booking in WAITING status on behalf
	// of the caller.
	Create(ctx context.Context, callerID string, req CreateRequest) (*Booking, error)
	// UpdateStatus approves or rejects a booking. Only the item's owner may
	// do this; re-applying a decision is permitted.
	UpdateStatus(ctx context.Context, id, callerID string, approved bool) (*Booking, error)
	// GetByID returns a booking to its booker or the item's owner.
	GetByID(ctx context.Context, id, callerID string) (*Booking, error)
	// ListForBooker returns the caller's own bookings filtered by state,
	// newest start first.
	ListForBooker(ctx context.Context, bookerID string, state State) ([]*Booking, error)
	// ListForOwner returns bookings of items the caller owns, filtered by
	// state, newest start first. No bookings is an empty list, not an error.
	ListForOwner(ctx context.Context, ownerID string, state State) ([]*Booking, error)

	// LastForItem returns the approved booking with the greatest end before
	// now, or nil if none exists.
	LastForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error)
	// NextForItem returns the approved booking with the smallest start after
	// now, or nil if none exists.
	NextForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error)
	// HasCompletedBooking reports whether the user had a booking of the item
	// that ended before asOf. Gates review eligibility.
	HasCompletedBooking(ctx context.Context, itemID, userID string, asOf time.Time) (bool, error)
}

type service struct {
	repo  Repository
	users UserDirectory
	items ItemCatalog

	now func() time.Time
}

func NewService(repo Repository, users UserDirectory, items ItemCatalog) Service {
	return &service{
		repo:  repo,
		users: users,
		items: items,
		now:   time.Now,
	}
}

func (s *service) Create(ctx context.Context, callerID string, req CreateRequest) (*Booking, error) {
	// Validation order is part of the contract: first failure wins.
	if req.ItemID == "" {
		return nil, ErrItemRequired
	}

	it, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		return nil, ErrItemUnavailable
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return nil, ErrTimeRequired
	}
	if req.Start.Before(s.now()) {
		return nil, ErrStartInPast
	}
	if req.Start.Equal(req.End) {
		return nil, ErrStartEqualsEnd
	}
	if req.End.Before(req.Start) {
		return nil, ErrEndBeforeStart
	}

	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, err
	}

	b := &Booking{
		ItemID:   it.ID,
		ItemName: it.Name,
		BookerID: callerID,
		Start:    req.Start,
		End:      req.End,
		Status:   StatusWaiting,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) UpdateStatus(ctx context.Context, id, callerID string, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	it, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != callerID {
		return nil, ErrNotItemOwner
	}

	// No guard on the current status: re-approving or re-rejecting is
	// idempotent in effect.
	if approved {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, b.Status); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id, callerID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.BookerID != callerID {
		it, err := s.items.GetByID(ctx, b.ItemID)
		if err != nil {
			return nil, err
		}
		if it.OwnerID != callerID {
			return nil, ErrAccessDenied
		}
	}

	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID string, state State) ([]*Booking, error) {
	bookings, err := s.repo.ListByBooker(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	return filterByState(bookings, state, s.now()), nil
}

func (s *service) ListForOwner(ctx context.Context, ownerID string, state State) ([]*Booking, error) {
	bookings, err := s.repo.ListByItemOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return filterByState(bookings, state, s.now()), nil
}

func (s *service) LastForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	return s.repo.LastForItem(ctx, itemID, now)
}

func (s *service) NextForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	return s.repo.NextForItem(ctx, itemID, now)
}

func (s *service) HasCompletedBooking(ctx context.Context, itemID, userID string, asOf time.Time) (bool, error) {
	return s.repo.ExistsCompleted(ctx, itemID, userID, asOf)
}
