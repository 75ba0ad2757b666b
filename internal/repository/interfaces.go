package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/storefront-backend/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned by the store itself, so concurrent creates
	// with the same email cannot both succeed.
	ErrDuplicateEmail = errors.New("email already exists")
)

// Users persists credential records. Emails are expected to be normalized by
// the caller; implementations still compare them exactly and uniquely.
type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type Products interface {
	Create(ctx context.Context, p models.Product) (models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	List(ctx context.Context, limit, offset int) ([]models.Product, error)
	Update(ctx context.Context, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}

type Repositories struct {
	Users     Users
	Products  Products
	AuditLogs AuditLogs
}
