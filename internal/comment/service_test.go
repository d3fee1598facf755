package comment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/sharing-backend/internal/item"
	"github.com/peershare/sharing-backend/internal/user"
)

type fakeRepo struct {
	comments []*Comment
	nextID   int
}

func (r *fakeRepo) Create(_ context.Context, c *Comment) error {
	r.nextID++
	c.ID = fmt.Sprintf("comment-%d", r.nextID)
	c.CreatedAt = time.Now()
	clone := *c
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *fakeRepo) ListByItem(_ context.Context, itemID string) ([]*Comment, error) {
	var out []*Comment
	for _, c := range r.comments {
		if c.ItemID == itemID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeItems struct{ ids map[string]bool }

func (c *fakeItems) GetByID(_ context.Context, id string) (*item.Item, error) {
	if !c.ids[id] {
		return nil, item.ErrNotFound
	}
	return &item.Item{ID: id, OwnerID: "owner"}, nil
}

type fakeUsers struct{ users map[string]*user.User }

func (d *fakeUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

// fakeLedger marks item/user pairs as having a completed booking.
type fakeLedger struct{ completed map[string]bool }

func (l *fakeLedger) HasCompletedBooking(_ context.Context, itemID, userID string, _ time.Time) (bool, error) {
	return l.completed[itemID+"/"+userID], nil
}

func newTestService(completed map[string]bool) (Service, *fakeRepo) {
	repo := &fakeRepo{}
	svc := NewService(
		repo,
		&fakeItems{ids: map[string]bool{"drill": true}},
		&fakeUsers{users: map[string]*user.User{
			"bob": {ID: "bob", Name: "Bob"},
		}},
		&fakeLedger{completed: completed},
	)
	return svc, repo
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("author with completed booking may comment", func(t *testing.T) {
		svc, _ := newTestService(map[string]bool{"drill/bob": true})

		c, err := svc.Add(ctx, "drill", "bob", "Great drill!")
		require.NoError(t, err)
		assert.Equal(t, "Bob", c.AuthorName)
		assert.NotEmpty(t, c.ID)
	})

	t.Run("no completed booking", func(t *testing.T) {
		svc, _ := newTestService(nil)

		_, err := svc.Add(ctx, "drill", "bob", "Great drill!")
		assert.ErrorIs(t, err, ErrNotBooked)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, _ := newTestService(nil)

		_, err := svc.Add(ctx, "ghost", "bob", "Great drill!")
		assert.ErrorIs(t, err, item.ErrNotFound)
	})

	t.Run("unknown author", func(t *testing.T) {
		svc, _ := newTestService(nil)

		_, err := svc.Add(ctx, "drill", "ghost", "Great drill!")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("blank text", func(t *testing.T) {
		svc, _ := newTestService(map[string]bool{"drill/bob": true})

		_, err := svc.Add(ctx, "drill", "bob", "   ")
		assert.ErrorIs(t, err, ErrTextRequired)
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(map[string]bool{"drill/bob": true})

	_, err := svc.Add(ctx, "drill", "bob", "first")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "drill", "bob", "second")
	require.NoError(t, err)

	comments, err := svc.ListByItem(ctx, "drill")
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}
