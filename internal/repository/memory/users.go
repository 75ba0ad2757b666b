package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/baharkarakas/storefront-backend/internal/models"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

type Users struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string
}

func NewUsers() *Users {
	return &Users{byID: map[string]models.User{}, byEmail: map[string]string{}}
}

func (r *Users) Create(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return models.User{}, repo.ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	t := now()
	u.CreatedAt, u.UpdatedAt = t, t
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *Users) GetByID(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *Users) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	out := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Users) Update(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[u.ID]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	if u.Email != cur.Email {
		if _, taken := r.byEmail[u.Email]; taken {
			return models.User{}, repo.ErrDuplicateEmail
		}
		delete(r.byEmail, cur.Email)
		r.byEmail[u.Email] = u.ID
	}
	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = now()
	r.byID[u.ID] = u
	return u, nil
}

func (r *Users) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return repo.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}
