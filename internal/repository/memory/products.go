package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/baharkarakas/storefront-backend/internal/models"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

type Products struct {
	mu   sync.RWMutex
	byID map[string]models.Product
	seq  []string // insertion order, oldest first
}

func NewProducts() *Products { return &Products{byID: map[string]models.Product{}} }

func (r *Products) Create(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	t := now()
	p.CreatedAt, p.UpdatedAt = t, t
	r.byID[p.ID] = p
	r.seq = append(r.seq, p.ID)
	return p, nil
}

func (r *Products) GetByID(_ context.Context, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return models.Product{}, repo.ErrNotFound
	}
	return p, nil
}

// List returns newest first.
func (r *Products) List(_ context.Context, limit, offset int) ([]models.Product, error) {
	r.mu.RLock()
	all := make([]models.Product, 0, len(r.seq))
	for i := len(r.seq) - 1; i >= 0; i-- {
		all = append(all, r.byID[r.seq[i]])
	}
	r.mu.RUnlock()
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if offset >= len(all) {
		return []models.Product{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *Products) Update(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[p.ID]
	if !ok {
		return models.Product{}, repo.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = now()
	r.byID[p.ID] = p
	return p, nil
}

func (r *Products) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.seq {
		if v == id {
			r.seq = append(r.seq[:i], r.seq[i+1:]...)
			break
		}
	}
	return nil
}
