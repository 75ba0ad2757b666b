package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/baharkarakas/storefront-backend/internal/models"
	"github.com/baharkarakas/storefront-backend/internal/repository"
)

type productsRepo struct{ db DBTX }

const productColumns = `id, name, description, price, image_url, created_at, updated_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *productsRepo) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return scanProduct(r.db.QueryRow(ctx,
		`INSERT INTO products(id, name, description, price, image_url) VALUES($1,$2,$3,$4,$5)
		 RETURNING `+productColumns,
		p.ID, p.Name, p.Description, p.Price, p.ImageURL,
	))
}

func (r *productsRepo) GetByID(ctx context.Context, id string) (models.Product, error) {
	if !validID(id) {
		return models.Product{}, repository.ErrNotFound
	}
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id=$1`, id))
	return p, notFound(err)
}

func (r *productsRepo) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		   FROM products
		  ORDER BY created_at DESC
		  LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productsRepo) Update(ctx context.Context, p models.Product) (models.Product, error) {
	out, err := scanProduct(r.db.QueryRow(ctx,
		`UPDATE products SET name=$2, description=$3, price=$4, image_url=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING `+productColumns,
		p.ID, p.Name, p.Description, p.Price, p.ImageURL,
	))
	return out, notFound(err)
}

func (r *productsRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
