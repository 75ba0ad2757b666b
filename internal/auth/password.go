package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/baharkarakas/storefront-backend/internal/worker"
)

// dummyPlaintext is hashed once per Hasher so lookups of unknown users cost
// the same as a real comparison.
const dummyPlaintext = "storefront-dummy-password"

// fallbackDummyHash is a well-formed cost-10 bcrypt hash, used only when the
// dummy cannot be generated.
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher wraps bcrypt. Salts come from bcrypt's own crypto/rand reads, so two
// hashes of the same plaintext never compare equal.
type Hasher struct {
	cost     int
	pool     *worker.Pool
	generate func(password []byte, cost int) ([]byte, error)

	dummy []byte
}

// NewHasher returns a bcrypt hasher. A nil pool runs hashing on the caller's
// goroutine.
func NewHasher(cost int, pool *worker.Pool) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{
		cost:     cost,
		pool:     pool,
		generate: bcrypt.GenerateFromPassword,
		dummy:    dummyHash(bcrypt.GenerateFromPassword, cost),
	}
}

func dummyHash(generate func([]byte, int) ([]byte, error), cost int) []byte {
	b, err := generate([]byte(dummyPlaintext), cost)
	if err != nil {
		return []byte(fallbackDummyHash)
	}
	return b
}

func (h *Hasher) Cost() int { return h.cost }

func (h *Hasher) Hash(ctx context.Context, plain string) (string, error) {
	var (
		b   []byte
		err error
	)
	if runErr := h.run(ctx, func() { b, err = h.generate([]byte(plain), h.cost) }); runErr != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingUnavailable, runErr)
	}
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashingUnavailable, err)
	}
	return string(b), nil
}

// Verify reports whether plain matches hash. Malformed hashes yield false.
func (h *Hasher) Verify(ctx context.Context, plain, hash string) bool {
	ok := false
	if err := h.run(ctx, func() {
		ok = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
	}); err != nil {
		return false
	}
	return ok
}

// VerifyDummy burns the same CPU as Verify against a real record. The result
// is always false.
func (h *Hasher) VerifyDummy(ctx context.Context, plain string) {
	_ = h.run(ctx, func() {
		_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
	})
}

func (h *Hasher) run(ctx context.Context, f func()) error {
	if h.pool == nil {
		f()
		return nil
	}
	return h.pool.Do(ctx, f)
}
