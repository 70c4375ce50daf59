package repositories

import (
	"context"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access. Every
// product returned carries its images in persisted order.
type ProductRepository interface {
	List(ctx context.Context, limit, offset int) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// FindByTitleOrSlug matches the title case-insensitively or the slug
	// exactly. When several rows match, any one of them is returned.
	FindByTitleOrSlug(ctx context.Context, term string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Update persists product in one transaction. With replaceImages set,
	// the stored images are deleted and product.Images inserted in their
	// place; on failure nothing of the write is kept.
	Update(ctx context.Context, product *models.Product, replaceImages bool) error
	Delete(ctx context.Context, product *models.Product) error
	DeleteAll(ctx context.Context) error
}
