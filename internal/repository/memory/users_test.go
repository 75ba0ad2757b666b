package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/storefront-backend/internal/models"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

func TestUsersCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewUsers()

	u, err := r.Create(ctx, models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := r.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	u.Email = "ann2@x.com"
	u.Name = "Ann B"
	upd, err := r.Update(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "Ann B", upd.Name)
	assert.Equal(t, u.CreatedAt, upd.CreatedAt)

	_, err = r.GetByEmail(ctx, "ann@x.com")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, r.Delete(ctx, u.ID))
	assert.ErrorIs(t, r.Delete(ctx, u.ID), repo.ErrNotFound)
	_, err = r.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.Update(ctx, u)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUsersUpdateEmailConflict(t *testing.T) {
	ctx := context.Background()
	r := NewUsers()
	_, err := r.Create(ctx, models.User{Email: "a@x.com"})
	require.NoError(t, err)
	b, err := r.Create(ctx, models.User{Email: "b@x.com"})
	require.NoError(t, err)

	b.Email = "a@x.com"
	_, err = r.Update(ctx, b)
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)
}

func TestUsersConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUsers()

	const n = 32
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ok  int
		dup int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Create(ctx, models.User{Email: "race@x.com"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if err == repo.ErrDuplicateEmail {
				dup++
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
