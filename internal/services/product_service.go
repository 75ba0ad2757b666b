package services

import (
	"context"
	"strings"

	"github.com/baharkarakas/storefront-backend/internal/api/validate"
	"github.com/baharkarakas/storefront-backend/internal/models"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// ListCache is optional; a nil cache disables caching. GetList returns the
// cache version it looked under, and SetList stores under that version.
type ListCache interface {
	GetList(ctx context.Context, limit, offset int) ([]models.Product, int64, bool)
	SetList(ctx context.Context, ver int64, limit, offset int, items []models.Product)
	Invalidate(ctx context.Context)
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

type ProductService struct {
	r     repo.Products
	cache ListCache
	auditor
}

func NewProductService(r repo.Products, c ListCache, audit repo.AuditLogs) *ProductService {
	return &ProductService{r: r, cache: c, auditor: auditor{audit}}
}

func (s *ProductService) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	var ver int64
	if s.cache != nil {
		cached, v, ok := s.cache.GetList(ctx, limit, offset)
		if ok {
			return cached, nil
		}
		ver = v
	}
	items, err := s.r.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, ver, limit, offset, items)
	}
	return items, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.r.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	p := models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	var errs validate.Errs
	errs.Add(
		validate.MinLen("name", p.Name, 3),
		validate.MinLen("description", p.Description, 10),
		validate.MinFloat("price", p.Price, 0.01),
		validate.Required("imageUrl", p.ImageURL),
	)
	if err := errs.Err(); err != nil {
		return models.Product{}, err
	}

	out, err := s.r.Create(ctx, p)
	if err != nil {
		return models.Product{}, err
	}
	s.changed(ctx, out.ID, "created")
	return out, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	p, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	var errs validate.Errs
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
		errs.Add(validate.MinLen("name", p.Name, 3))
	}
	if patch.Description != nil {
		p.Description = strings.TrimSpace(*patch.Description)
		errs.Add(validate.MinLen("description", p.Description, 10))
	}
	if patch.Price != nil {
		p.Price = *patch.Price
		errs.Add(validate.MinFloat("price", p.Price, 0.01))
	}
	if patch.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*patch.ImageURL)
		errs.Add(validate.Required("imageUrl", p.ImageURL))
	}
	if err := errs.Err(); err != nil {
		return models.Product{}, err
	}

	out, err := s.r.Update(ctx, p)
	if err != nil {
		return models.Product{}, err
	}
	s.changed(ctx, out.ID, "updated")
	return out, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.changed(ctx, id, "deleted")
	return nil
}

func (s *ProductService) changed(ctx context.Context, id, action string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.record(ctx, "product", id, action, nil)
}
