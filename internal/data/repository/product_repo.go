package repository

import (
	"context"
	"fmt"

	"wardrobe-rental/internal/data/entity"
	"wardrobe-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, name, sku, price, status, image_url, created_at, updated_at, deleted_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.Price,
		&p.Status,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, price, status, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.SKU,
		product.Price,
		product.Status,
		product.ImageURL,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("sku", product.SKU),
		)
		return fmt.Errorf("create product %s: %w", product.SKU, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND deleted_at IS NULL
	`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE sku = $1 AND deleted_at IS NULL
	`

	product, err := scanProduct(r.db.QueryRow(ctx, query, sku))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by SKU",
			zap.Error(err),
			zap.String("sku", sku),
		)
		return nil, fmt.Errorf("find product by SKU %s: %w", sku, err)
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		r.log.Error("Failed to list products",
			zap.Error(err),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM products
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%')
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, sku = $3, price = $4, status = $5, image_url = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.SKU,
		product.Price,
		product.Status,
		product.ImageURL,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", product.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *productRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	query := `UPDATE products SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update product status",
			zap.Error(err),
			zap.String("product_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update product %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *productRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
