package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/baharkarakas/storefront-backend/internal/api/validate"
	"github.com/baharkarakas/storefront-backend/internal/models"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

type PasswordHasher interface {
	Hash(ctx context.Context, plain string) (string, error)
	Verify(ctx context.Context, plain, hash string) bool
	VerifyDummy(ctx context.Context, plain string)
}

type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// UserService is the credential store. Every write to PasswordHash goes
// through the hasher.
type UserService struct {
	r repo.Users
	h PasswordHasher
	auditor
}

func NewUserService(r repo.Users, h PasswordHasher, audit repo.AuditLogs) *UserService {
	return &UserService{r: r, h: h, auditor: auditor{audit}}
}

func (s *UserService) Create(ctx context.Context, in NewUser) (models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := models.NormalizeEmail(in.Email)

	var errs validate.Errs
	errs.Add(validate.Required("name", name), validate.Email("email", email), roleField(in.Role))
	if err := errs.Err(); err != nil {
		return models.User{}, err
	}
	hash, err := s.hashPassword(ctx, in.Password)
	if err != nil {
		return models.User{}, err
	}

	u, err := s.r.Create(ctx, models.User{Name: name, Email: email, PasswordHash: hash, Role: in.Role})
	if err != nil {
		return models.User{}, err
	}
	s.record(ctx, "user", u.ID, "created", map[string]any{"role": u.Role.String()})
	return u, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.r.GetByEmail(ctx, models.NormalizeEmail(email))
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	return s.r.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) { return s.r.List(ctx) }

// Update replaces the supplied fields. The stored hash is only replaced when
// a non-empty new password is given.
func (s *UserService) Update(ctx context.Context, id string, p models.UserPatch) (models.User, error) {
	u, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	var errs validate.Errs
	changed := []string{}
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
		errs.Add(validate.Required("name", u.Name))
		changed = append(changed, "name")
	}
	if p.Email != nil {
		u.Email = models.NormalizeEmail(*p.Email)
		errs.Add(validate.Email("email", u.Email))
		changed = append(changed, "email")
	}
	if p.Role != nil {
		u.Role = *p.Role
		errs.Add(roleField(u.Role))
		changed = append(changed, "role")
	}
	if err := errs.Err(); err != nil {
		return models.User{}, err
	}
	if p.Password != nil && *p.Password != "" {
		hash, err := s.hashPassword(ctx, *p.Password)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = hash
		changed = append(changed, "password")
	}

	out, err := s.r.Update(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	s.record(ctx, "user", out.ID, "updated", map[string]any{"fields": changed})
	return out, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, "user", id, "deleted", nil)
	return nil
}

// BootstrapAdmin replaces any account holding email with a fresh admin
// account. It is meant for first-run setup from a trusted process only.
func (s *UserService) BootstrapAdmin(ctx context.Context, name, email, password string) (models.User, error) {
	existing, err := s.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.r.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repo.ErrNotFound) {
			return models.User{}, fmt.Errorf("remove existing admin: %w", err)
		}
	case errors.Is(err, repo.ErrNotFound):
	default:
		return models.User{}, fmt.Errorf("lookup admin: %w", err)
	}
	return s.Create(ctx, NewUser{Name: name, Email: email, Password: password, Role: models.RoleAdmin})
}

func (s *UserService) hashPassword(ctx context.Context, plain string) (string, error) {
	if utf8.RuneCountInString(plain) < MinPasswordLen {
		return "", ErrWeakPassword
	}
	hash, err := s.h.Hash(ctx, plain)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func roleField(r models.Role) *validate.ErrField {
	if !r.Valid() {
		return &validate.ErrField{Field: "role", Msg: "must be user or admin"}
	}
	return nil
}
