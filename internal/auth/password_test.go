package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/baharkarakas/storefront-backend/internal/worker"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, nil)
	ctx := context.Background()

	for _, p := range []string{"correct1", "pässwörd", "123456", strings.Repeat("x", 60)} {
		hash, err := h.Hash(ctx, p)
		require.NoError(t, err)
		assert.NotEqual(t, p, hash)
		assert.True(t, h.Verify(ctx, p, hash), p)
		assert.False(t, h.Verify(ctx, p+"!", hash), p)
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, nil)
	ctx := context.Background()

	a, err := h.Hash(ctx, "same-password")
	require.NoError(t, err)
	b, err := h.Hash(ctx, "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify(ctx, "same-password", a))
	assert.True(t, h.Verify(ctx, "same-password", b))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, nil)
	ctx := context.Background()

	assert.False(t, h.Verify(ctx, "anything", ""))
	assert.False(t, h.Verify(ctx, "anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify(ctx, "anything", "anything"))
}

func TestHashUnavailable(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, nil)
	h.generate = func([]byte, int) ([]byte, error) { return nil, errors.New("entropy source closed") }

	_, err := h.Hash(context.Background(), "secret1")
	assert.ErrorIs(t, err, ErrHashingUnavailable)
}

func TestHashTooLong(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, nil)
	_, err := h.Hash(context.Background(), strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestHasherCostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0, nil).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(99, nil).Cost())
	assert.Equal(t, 12, NewHasher(12, nil).Cost())
}

func TestHasherWithPool(t *testing.T) {
	p := worker.NewPool(2)
	defer p.Stop()
	h := NewHasher(bcrypt.MinCost, p)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "pooled1")
	require.NoError(t, err)
	assert.True(t, h.Verify(ctx, "pooled1", hash))
	h.VerifyDummy(ctx, "pooled1")
}

func TestDummyHashIsAlwaysUsable(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, nil)
	cost, err := bcrypt.Cost(h.dummy)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	broken := func([]byte, int) ([]byte, error) { return nil, errors.New("entropy exhausted") }
	fallback := dummyHash(broken, bcrypt.DefaultCost)
	cost, err = bcrypt.Cost(fallback)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.Error(t, bcrypt.CompareHashAndPassword(fallback, []byte("anything")))
}

func TestHasherAfterPoolStopped(t *testing.T) {
	p := worker.NewPool(1)
	h := NewHasher(bcrypt.MinCost, p)
	p.Stop()

	ctx := context.Background()
	_, err := h.Hash(ctx, "secret1")
	assert.ErrorIs(t, err, ErrHashingUnavailable)
	assert.ErrorIs(t, err, worker.ErrStopped)
	assert.False(t, h.Verify(ctx, "secret1", string(h.dummy)))
}
