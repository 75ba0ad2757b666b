package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/baharkarakas/storefront-backend/internal/models"
	"github.com/baharkarakas/storefront-backend/internal/repository"
)

type usersRepo struct{ db DBTX }

func NewUsers(db DBTX) repository.Users {
	return &usersRepo{db: db}
}

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var (
		u    models.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return models.User{}, err
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return models.User{}, fmt.Errorf("user %s: %w", u.ID, err)
	}
	u.Role = r
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	out, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users(id, name, email, password_hash, role) VALUES($1,$2,$3,$4,$5)
		 RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role.String(),
	))
	if isUniqueViolation(err) {
		return models.User{}, repository.ErrDuplicateEmail
	}
	return out, err
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	if !validID(id) {
		return models.User{}, repository.ErrNotFound
	}
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	return u, notFound(err)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email))
	return u, notFound(err)
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	out, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET name=$2, email=$3, password_hash=$4, role=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role.String(),
	))
	if isUniqueViolation(err) {
		return models.User{}, repository.ErrDuplicateEmail
	}
	return out, notFound(err)
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
