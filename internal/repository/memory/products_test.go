package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/storefront-backend/internal/models"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

func TestProductsListNewestFirstWithPaging(t *testing.T) {
	ctx := context.Background()
	r := NewProducts()
	for _, name := range []string{"one", "two", "three"} {
		_, err := r.Create(ctx, models.Product{Name: name})
		require.NoError(t, err)
	}

	all, err := r.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "three", all[0].Name)
	assert.Equal(t, "one", all[2].Name)

	page, err := r.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "two", page[0].Name)

	empty, err := r.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProductsUpdateDelete(t *testing.T) {
	ctx := context.Background()
	r := NewProducts()
	p, err := r.Create(ctx, models.Product{Name: "Mouse", Price: 9.5})
	require.NoError(t, err)

	p.Price = 12
	upd, err := r.Update(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 12.0, upd.Price)

	require.NoError(t, r.Delete(ctx, p.ID))
	_, err = r.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, p.ID), repo.ErrNotFound)

	all, err := r.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}
