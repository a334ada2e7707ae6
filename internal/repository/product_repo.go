package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/BossEnterprises/chataru_api/internal/models"
	"github.com/BossEnterprises/chataru_api/internal/utils"
)

// ProductRepository handles data access for catalog products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Insert stores a new product.
func (r *ProductRepository) Insert(ctx context.Context, p *models.Product) error {
	const q = `
        INSERT INTO products (name, price, description, image)
        VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, q, p.Name, p.Price, p.Description, p.Image)
	return err
}

// List returns all products, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	const q = `
        SELECT id, name, price, description, image, created_at
        FROM products
        ORDER BY created_at DESC, id DESC`

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// Update overwrites name, price and description of a product. The image
// column is only touched when imagePath is non-nil; the prior path is kept
// otherwise. created_at is never modified. Returns ErrProductNotFound when
// no row matches id.
func (r *ProductRepository) Update(ctx context.Context, id int, name string, price int, description string, imagePath *string) error {
	var (
		res sql.Result
		err error
	)
	if imagePath != nil {
		const q = `
            UPDATE products
            SET name = $1, price = $2, description = $3, image = $4
            WHERE id = $5`
		res, err = r.db.ExecContext(ctx, q, name, price, description, *imagePath, id)
	} else {
		const q = `
            UPDATE products
            SET name = $1, price = $2, description = $3
            WHERE id = $4`
		res, err = r.db.ExecContext(ctx, q, name, price, description, id)
	}
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

// Delete removes a product by id. Returns ErrProductNotFound when no row
// matches.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM products WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}
