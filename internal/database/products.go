package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/velora-store/velora/internal/models"
)

// ProductRepository reads the raw product rows the catalog normalizer
// consumes. Snake_case column values are passed through untouched; all
// coercion belongs to the normalizer.
type ProductRepository struct {
	db *DB
}

func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListActive returns every active product row in catalog order (newest
// first, as the storefront presents them by default).
func (r *ProductRepository) ListActive(ctx context.Context) ([]models.RawProduct, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, created_at, name, COALESCE(description, ''), price, category,
			slug, stock, brand, sensation, size_ml, size_floz, format,
			image, secondary_images, product_filter, usage_area, target_audience
		FROM products
		WHERE active = TRUE
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.RawProduct
	for rows.Next() {
		raw, err := scanRawProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, raw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}

	return products, nil
}

func scanRawProduct(rows *sql.Rows) (models.RawProduct, error) {
	var (
		raw             models.RawProduct
		brand           sql.NullString
		sensation       sql.NullString
		sizeML          sql.NullString
		sizeFlOz        sql.NullString
		format          sql.NullString
		image           sql.NullString
		secondaryImages sql.NullString
		productFilter   sql.NullString
		usageArea       sql.NullString
		targetAudience  sql.NullString
	)

	err := rows.Scan(
		&raw.ID, &raw.CreatedAt, &raw.Name, &raw.Description, &raw.Price,
		&raw.Category, &raw.Slug, &raw.Stock, &brand, &sensation,
		&sizeML, &sizeFlOz, &format, &image, &secondaryImages,
		&productFilter, &usageArea, &targetAudience,
	)
	if err != nil {
		return models.RawProduct{}, err
	}

	raw.Brand = nullable(brand)
	raw.Sensation = nullable(sensation)
	raw.SizeML = nullable(sizeML)
	raw.SizeFlOz = nullable(sizeFlOz)
	raw.Format = nullable(format)
	raw.Image = nullable(image)
	raw.ProductFilter = nullable(productFilter)
	raw.UsageArea = nullable(usageArea)
	raw.TargetAudience = nullable(targetAudience)

	if secondaryImages.Valid && secondaryImages.String != "" {
		// A malformed JSON column only costs the gallery, not the product.
		if err := json.Unmarshal([]byte(secondaryImages.String), &raw.SecondaryImages); err != nil {
			raw.SecondaryImages = nil
		}
	}

	return raw, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
