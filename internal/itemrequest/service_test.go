package itemrequest

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/sharing-backend/internal/item"
	"github.com/peershare/sharing-backend/internal/user"
)

type fakeRepo struct {
	requests map[string]*ItemRequest
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[string]*ItemRequest)}
}

func (r *fakeRepo) Create(_ context.Context, req *ItemRequest) error {
	r.nextID++
	req.ID = fmt.Sprintf("request-%d", r.nextID)
	req.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *fakeRepo) ListByRequester(_ context.Context, requesterID string) ([]*ItemRequest, error) {
	var out []*ItemRequest
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			clone := *req
			out = append(out, &clone)
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *fakeRepo) ListExcluding(_ context.Context, requesterID string, from, size int) ([]*ItemRequest, int, error) {
	var all []*ItemRequest
	for _, req := range r.requests {
		if req.RequesterID != requesterID {
			clone := *req
			all = append(all, &clone)
		}
	}
	sortByCreatedDesc(all)

	total := len(all)
	if from >= total {
		return []*ItemRequest{}, total, nil
	}
	end := from + size
	if end > total {
		end = total
	}
	return all[from:end], total, nil
}

func sortByCreatedDesc(requests []*ItemRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

type fakeUsers struct{ ids map[string]bool }

func (d *fakeUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if !d.ids[id] {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id}, nil
}

type fakeItems struct {
	byRequest map[string][]*item.Item
}

func (c *fakeItems) ListByRequest(_ context.Context, requestID string) ([]*item.Item, error) {
	return c.byRequest[requestID], nil
}

func newTestService(items map[string][]*item.Item) (Service, *fakeRepo) {
	repo := newFakeRepo()
	svc := NewService(
		repo,
		&fakeUsers{ids: map[string]bool{"alice": true, "bob": true}},
		&fakeItems{byRequest: items},
	)
	return svc, repo
}

func TestCreateItemRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("success with empty replies", func(t *testing.T) {
		svc, _ := newTestService(nil)

		r, err := svc.Create(ctx, "alice", "Need a drill for the weekend")
		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
		assert.NotNil(t, r.Replies)
		assert.Empty(t, r.Replies)
	})

	t.Run("unknown requester", func(t *testing.T) {
		svc, _ := newTestService(nil)

		_, err := svc.Create(ctx, "ghost", "Need a drill")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("blank description", func(t *testing.T) {
		svc, _ := newTestService(nil)

		_, err := svc.Create(ctx, "alice", "   ")
		assert.ErrorIs(t, err, ErrDescriptionRequired)
	})
}

func TestListOwnRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first with replies attached", func(t *testing.T) {
		items := map[string][]*item.Item{}
		svc, _ := newTestService(items)

		first, err := svc.Create(ctx, "alice", "Need a drill")
		require.NoError(t, err)
		second, err := svc.Create(ctx, "alice", "Need a ladder")
		require.NoError(t, err)
		_, err = svc.Create(ctx, "bob", "Need a tent")
		require.NoError(t, err)

		items[first.ID] = []*item.Item{
			{ID: "drill", Name: "Drill", OwnerID: "bob"},
		}

		own, err := svc.ListOwn(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, own, 2)

		assert.Equal(t, second.ID, own[0].ID)
		assert.Equal(t, first.ID, own[1].ID)

		require.Len(t, own[1].Replies, 1)
		assert.Equal(t, "Drill", own[1].Replies[0].Name)
		assert.Equal(t, "bob", own[1].Replies[0].OwnerID)
	})

	t.Run("unknown caller", func(t *testing.T) {
		svc, _ := newTestService(nil)

		_, err := svc.ListOwn(ctx, "ghost")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestListOthersRequests(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc Service) {
		t.Helper()
		for i := 0; i < 3; i++ {
			_, err := svc.Create(ctx, "bob", fmt.Sprintf("wish %d", i))
			require.NoError(t, err)
		}
		_, err := svc.Create(ctx, "alice", "own wish")
		require.NoError(t, err)
	}

	t.Run("excludes own requests", func(t *testing.T) {
		svc, _ := newTestService(nil)
		seed(t, svc)

		others, total, err := svc.ListOthers(ctx, "alice", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, others, 3)
		for _, r := range others {
			assert.Equal(t, "bob", r.RequesterID)
		}
	})

	t.Run("offset paging", func(t *testing.T) {
		svc, _ := newTestService(nil)
		seed(t, svc)

		page, total, err := svc.ListOthers(ctx, "alice", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, page, 1)

		past, total, err := svc.ListOthers(ctx, "alice", 10, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, past)
	})
}

func TestGetRequestByID(t *testing.T) {
	ctx := context.Background()

	items := map[string][]*item.Item{}
	svc, _ := newTestService(items)

	r, err := svc.Create(ctx, "alice", "Need a drill")
	require.NoError(t, err)
	items[r.ID] = []*item.Item{
		{ID: "drill", Name: "Drill", OwnerID: "bob"},
	}

	t.Run("any known user may read", func(t *testing.T) {
		got, err := svc.GetByID(ctx, "bob", r.ID)
		require.NoError(t, err)
		assert.Equal(t, r.ID, got.ID)
		assert.Len(t, got.Replies, 1)
	})

	t.Run("unknown caller", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "ghost", r.ID)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "alice", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
