package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func NewRepositories(db DBTX) repo.Repositories {
	return repo.Repositories{
		Users:     &usersRepo{db},
		Products:  &productsRepo{db},
		AuditLogs: &auditLogsRepo{db},
	}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// validID reports whether id can be bound to a uuid column. Anything else
// cannot match a row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	return err
}
