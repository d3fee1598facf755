package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users  map[string]*User
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (r *fakeRepo) Create(_ context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrEmailUsed
		}
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	u.CreatedAt = time.Now()
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) List(_ context.Context) ([]*User, error) {
	out := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	for _, existing := range r.users {
		if existing.Email == u.Email && existing.ID != u.ID {
			return ErrEmailUsed
		}
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		u, err := svc.Create(ctx, CreateRequest{Name: " Alice ", Email: " Alice@Example.COM "})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, "Alice", u.Name)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Create(ctx, CreateRequest{Name: "Alice", Email: "a@example.com"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{Name: "Alice Two", Email: "A@example.com"})
		assert.ErrorIs(t, err, ErrEmailUsed)
	})

	t.Run("missing email", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Create(ctx, CreateRequest{Name: "Alice"})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Create(ctx, CreateRequest{Email: "a@example.com"})
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc Service, name, email string) *User {
		t.Helper()
		u, err := svc.Create(ctx, CreateRequest{Name: name, Email: email})
		require.NoError(t, err)
		return u
	}

	t.Run("partial patch", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		u := seed(t, svc, "Alice", "a@example.com")

		updated, err := svc.Update(ctx, u.ID, UpdateRequest{Name: strPtr("Alicia")})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, "a@example.com", updated.Email)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		seed(t, svc, "Alice", "a@example.com")
		b := seed(t, svc, "Bob", "b@example.com")

		_, err := svc.Update(ctx, b.ID, UpdateRequest{Email: strPtr("a@example.com")})
		assert.ErrorIs(t, err, ErrEmailUsed)
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		u := seed(t, svc, "Alice", "a@example.com")

		updated, err := svc.Update(ctx, u.ID, UpdateRequest{Email: strPtr("A@Example.com")})
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", updated.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Update(ctx, "ghost", UpdateRequest{Name: strPtr("X")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	u, err := svc.Create(ctx, CreateRequest{Name: "Alice", Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))

	_, err = svc.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, u.ID), ErrNotFound)
}
