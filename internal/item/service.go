package item

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/peershare/sharing-backend/internal/pkg/cache"
	"github.com/peershare/sharing-backend/internal/user"
)

const searchCachePrefix = "items:search:"

// OwnerDirectory resolves user ids. Satisfied by user.Service.
type OwnerDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type CreateRequest struct {
	OwnerID     string
	Name        string
	Description string
	Available   *bool
	RequestID   *string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Item, error)
	ListByRequest(ctx context.Context, requestID string) ([]*Item, error)
	Search(ctx context.Context, text string) ([]*Item, error)
	Update(ctx context.Context, id, callerID string, req UpdateRequest) (*Item, error)
}

type service struct {
	repo     Repository
	owners   OwnerDirectory
	cache    cache.Cache // nil disables search caching
	cacheTTL time.Duration
}

func NewService(repo Repository, owners OwnerDirectory, searchCache cache.Cache, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		owners:   owners,
		cache:    searchCache,
		cacheTTL: cacheTTL,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if _, err := s.owners.GetByID(ctx, req.OwnerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Available == nil {
		return nil, ErrAvailabilityMissing
	}

	it := &Item{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	s.invalidateSearchCache(ctx)
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*Item, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) ListByRequest(ctx context.Context, requestID string) ([]*Item, error) {
	return s.repo.ListByRequest(ctx, requestID)
}

// Search returns available items matching the text in name or description.
// A blank query yields an empty result, not all items.
func (s *service) Search(ctx context.Context, text string) ([]*Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*Item{}, nil
	}

	key := searchCachePrefix + strings.ToLower(text)
	if s.cache != nil {
		var cached []*Item
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("search cache read failed")
		}
	}

	items, err := s.repo.Search(ctx, text)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, key, items, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache write failed")
		}
	}

	return items, nil
}

func (s *service) Update(ctx context.Context, id, callerID string, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if it.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		it.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrDescriptionRequired
		}
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}

	s.invalidateSearchCache(ctx)
	return it, nil
}

func (s *service) invalidateSearchCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx, searchCachePrefix); err != nil {
		log.Warn().Err(err).Msg("search cache invalidation failed")
	}
}
