package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, farmer_id, crop_name, price, quantity, upi_id, location, image_url, created_at, updated_at`

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES (:id, :farmer_id, :crop_name, :price, :quantity, :upi_id, :location, :image_url, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, productParams(product)); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert product")
	}

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var schema productSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.ProductNotFound, "product not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get product")
	}

	product := schema.toDomain()

	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET crop_name = :crop_name, price = :price, quantity = :quantity, upi_id = :upi_id,
		    location = :location, image_url = :image_url, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, productParams(product))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update product")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.ProductNotFound, "product not found")
	}

	return nil
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var schemas []productSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit, offset); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list products")
	}

	return productsToDomain(schemas), nil
}

func (r *ProductRepository) ListByFarmer(ctx context.Context, farmerID string) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE farmer_id = $1 ORDER BY created_at DESC`

	var schemas []productSchema
	if err := r.db.SelectContext(ctx, &schemas, query, farmerID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list farmer products")
	}

	return productsToDomain(schemas), nil
}

func productParams(product *entity.Product) map[string]any {
	var imageURL any
	if product.ImageURL != "" {
		imageURL = product.ImageURL
	}

	return map[string]any{
		"id":         product.ID,
		"farmer_id":  product.FarmerID,
		"crop_name":  product.CropName,
		"price":      product.Price,
		"quantity":   product.Quantity,
		"upi_id":     product.UpiID,
		"location":   product.Location,
		"image_url":  imageURL,
		"created_at": product.CreatedAt,
		"updated_at": product.UpdatedAt,
	}
}

func productsToDomain(schemas []productSchema) []entity.Product {
	products := make([]entity.Product, 0, len(schemas))
	for i := range schemas {
		products = append(products, schemas[i].toDomain())
	}

	return products
}
