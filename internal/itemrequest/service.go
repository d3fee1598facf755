package itemrequest

import (
	"context"
	"strings"

	"github.com/peershare/sharing-backend/internal/item"
	"github.com/peershare/sharing-backend/internal/user"
)

// UserDirectory resolves user ids. Satisfied by user.Service.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// ItemCatalog lists the items posted in answer to a request. Satisfied by
// item.Service.
type ItemCatalog interface {
	ListByRequest(ctx context.Context, requestID string) ([]*item.Item, error)
}

type Service interface {
	Create(ctx context.Context, requesterID, description string) (*ItemRequest, error)
	// ListOwn returns the caller's requests, newest first, with replies.
	ListOwn(ctx context.Context, requesterID string) ([]*ItemRequest, error)
	// ListOthers returns other users' requests with offset paging.
	ListOthers(ctx context.Context, callerID string, from, size int) ([]*ItemRequest, int, error)
	GetByID(ctx context.Context, callerID, id string) (*ItemRequest, error)
}

type service struct {
	repo  Repository
	users UserDirectory
	items ItemCatalog
}

func NewService(repo Repository, users UserDirectory, items ItemCatalog) Service {
	return &service{
		repo:  repo,
		users: users,
		items: items,
	}
}

func (s *service) Create(ctx context.Context, requesterID, description string) (*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	r := &ItemRequest{
		RequesterID: requesterID,
		Description: description,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	r.Replies = []Reply{}
	return r, nil
}

func (s *service) ListOwn(ctx context.Context, requesterID string) ([]*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.attachReplies(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *service) ListOthers(ctx context.Context, callerID string, from, size int) ([]*ItemRequest, int, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, 0, err
	}

	requests, total, err := s.repo.ListExcluding(ctx, callerID, from, size)
	if err != nil {
		return nil, 0, err
	}

	if err := s.attachReplies(ctx, requests); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (s *service) GetByID(ctx context.Context, callerID, id string) (*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		return nil, err
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachReplies(ctx, []*ItemRequest{r}); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) attachReplies(ctx context.Context, requests []*ItemRequest) error {
	for _, r := range requests {
		items, err := s.items.ListByRequest(ctx, r.ID)
		if err != nil {
			return err
		}
		r.Replies = make([]Reply, 0, len(items))
		for _, it := range items {
			r.Replies = append(r.Replies, Reply{
				ItemID:  it.ID,
				Name:    it.Name,
				OwnerID: it.OwnerID,
			})
		}
	}
	return nil
}
